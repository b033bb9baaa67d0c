package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArchiveRunsFlags(t *testing.T) {
	cmd := newArchiveRunsCmd()

	require.NoError(t, cmd.ParseFlags([]string{
		"--older-than", "14",
		"--limit", "100",
		"--compact",
		"--verbose-events", "token_stream,debug_log,trace_span",
		"--purge-older-than", "90",
	}))

	olderThan, err := cmd.Flags().GetInt("older-than")
	require.NoError(t, err)
	assert.Equal(t, 14, olderThan)

	compact, err := cmd.Flags().GetBool("compact")
	require.NoError(t, err)
	assert.True(t, compact)

	verbose, err := cmd.Flags().GetStringSlice("verbose-events")
	require.NoError(t, err)
	assert.Equal(t, []string{"token_stream", "debug_log", "trace_span"}, verbose)
}

func TestArchiveRunsFlagDefaults(t *testing.T) {
	cmd := newArchiveRunsCmd()
	require.NoError(t, cmd.ParseFlags(nil))

	olderThan, err := cmd.Flags().GetInt("older-than")
	require.NoError(t, err)
	assert.Equal(t, 7, olderThan)

	verbose, err := cmd.Flags().GetStringSlice("verbose-events")
	require.NoError(t, err)
	assert.Empty(t, verbose, "the retention config supplies the default list")
}
