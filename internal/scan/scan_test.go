package scan

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestChRepeatMinMax(t *testing.T) {
	rest, n, ok := ChRepeatMinMax([]byte("###### foo"), '#', 1, 6)
	require.True(t, ok)
	require.Equal(t, 6, n)
	require.Equal(t, " foo", string(rest))

	_, _, ok = ChRepeatMinMax([]byte("####### foo"), '#', 1, 6)
	require.False(t, ok, "seven hashes exceed the ATX heading max level")
}

func TestSpacesEOL(t *testing.T) {
	rest, n, ok := SpacesEOL([]byte("   \nnext"))
	require.True(t, ok)
	require.Equal(t, 4, n)
	require.Equal(t, "next", string(rest))

	_, _, ok = SpacesEOL([]byte("  x\n"))
	require.False(t, ok)
}

func TestOneLine(t *testing.T) {
	withEOL, withoutEOL := OneLine([]byte("hello\r\nworld"))
	require.Equal(t, 7, withEOL)
	require.Equal(t, 5, withoutEOL)
}

func TestIsASCIIPunctuation(t *testing.T) {
	require.True(t, IsASCIIPunctuation('*'))
	require.True(t, IsASCIIPunctuation('_'))
	require.True(t, IsASCIIPunctuation('.'))
	require.False(t, IsASCIIPunctuation('a'))
	require.False(t, IsASCIIPunctuation(' '))
}

func TestIsPunctuationUnicode(t *testing.T) {
	require.True(t, IsPunctuation('“'))
	require.True(t, IsPunctuation('—'))
	require.False(t, IsPunctuation('字'))
}

func TestCursorForward(t *testing.T) {
	c := New([]byte("  foo"))
	n := c.ConsumeSpaces(4)
	require.Equal(t, 2, n)
	require.Equal(t, 2, c.Spaces)
	require.Equal(t, "foo", string(c.Bytes()))
	c.Forward(3)
	require.True(t, c.AtEOF())
	require.Equal(t, 0, c.Spaces)
}
