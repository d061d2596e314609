package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunFonts(t *testing.T) {
	var buf bytes.Buffer
	runFonts(&buf)

	for _, want := range []string{"FONTS", "figure", "figlet4go", "slant", "larry3d", "yes"} {
		assert.Contains(t, buf.String(), want)
	}
}

func TestRunColors(t *testing.T) {
	var buf bytes.Buffer
	runColors(&buf)

	for _, want := range []string{"red", "green", "yellow", "blue", "magenta", "cyan", "white"} {
		assert.Contains(t, buf.String(), want)
	}
}

func TestRunCapacity(t *testing.T) {
	capacityWidth = 200
	t.Cleanup(func() { capacityWidth = 0 })

	var buf bytes.Buffer
	require.NoError(t, runCapacity(&buf))
	assert.Contains(t, buf.String(), "200 columns")
}

func TestRunCapacity_UnknownFont(t *testing.T) {
	capacityFont = "nope"
	t.Cleanup(func() { capacityFont = "" })

	assert.Error(t, runCapacity(&bytes.Buffer{}))
}

func TestRootCommand_Subcommands(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"fonts", "colors", "capacity", "version"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}
