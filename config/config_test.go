package config_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mdxor/compiler/config"
)

func TestDefault(t *testing.T) {
	o := config.Default()
	require.Equal(t, "_jsxRuntime", o.RuntimeImport)
	require.Equal(t, 100, o.MaxDepth)
}

func TestApplyOptions(t *testing.T) {
	o := config.Apply(config.WithRuntimeImport("rt"), config.WithMaxDepth(10))
	require.Equal(t, "rt", o.RuntimeImport)
	require.Equal(t, 10, o.MaxDepth)
}

func TestApplyNoOptionsReturnsDefault(t *testing.T) {
	require.Equal(t, config.Default(), config.Apply())
}
