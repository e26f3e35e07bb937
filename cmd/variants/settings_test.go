package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefinitionsFromEnvironment(t *testing.T) {
	path := writeDefinitions(t, "axes.yaml", twoAxes)

	root := newRootCmd()
	root.SetArgs([]string{"axes"})
	t.Setenv("VARIANTS_DEFINITIONS", path)
	t.Setenv("VARIANTS_LOG_LEVEL", "error")
	t.Setenv("VARIANTS_LOG_FORMAT", "json")

	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)
	require.NoError(t, root.Execute())
	require.Contains(t, out.String(), "tone")
	require.NotContains(t, out.String(), "orientation")
}

func TestInvalidLogFormatIsRejected(t *testing.T) {
	t.Setenv("VARIANTS_LOG_FORMAT", "xml")

	root := newRootCmd()
	root.SetArgs([]string{"resolve"})
	out := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(out)

	err := root.Execute()
	require.Error(t, err)
	require.Contains(t, err.Error(), "loading settings")
}

func TestFlagLogLevelOverridesEnvironment(t *testing.T) {
	t.Setenv("VARIANTS_LOG_LEVEL", "error")
	t.Setenv("VARIANTS_LOG_FORMAT", "json")

	root := newRootCmd()
	root.SetArgs([]string{"--log-level", "debug", "resolve"})
	out := &bytes.Buffer{}
	root.SetOut(&bytes.Buffer{})
	root.SetErr(out)
	require.NoError(t, root.Execute())
	require.Contains(t, out.String(), `"component":"variant"`)
}
