package diagnostics_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mdxor/compiler/internal/diagnostics"
)

func TestRecorderRecordsEvents(t *testing.T) {
	rec := diagnostics.NewRecorder()
	require.True(t, rec.Empty())

	rec.Record("block", "malformed embedded element", 5)
	require.False(t, rec.Empty())
	require.Len(t, rec.Events, 1)
	require.Equal(t, "block", rec.Events[0].Stage)
	require.Equal(t, 5, rec.Events[0].Offset)
}

func TestRecorderEventsShareCorrelationID(t *testing.T) {
	rec := diagnostics.NewRecorder()
	rec.Record("block", "a", 0)
	rec.Record("inline", "b", 1)
	require.Equal(t, rec.Events[0].ID, rec.Events[1].ID)
}
