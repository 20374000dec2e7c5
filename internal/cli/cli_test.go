package cli_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sidhantpanda/FoxGooseCorn/internal/cli"
)

func TestParse_Defaults(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := cli.Parse(nil, &out)
	require.NoError(t, err)
	require.False(t, exit)
	require.Empty(t, cfg.PuzzlePath)
	require.Equal(t, "text", cfg.OutputFormat)
	require.Equal(t, "warn", cfg.LogLevel)
}

func TestParse_PositionalPuzzleAndOverrides(t *testing.T) {
	var out bytes.Buffer
	cfg, _, err := cli.Parse([]string{"-start", "1010", "-format", "JSON", "puzzles/x.hcl"}, &out)
	require.NoError(t, err)
	require.Equal(t, "puzzles/x.hcl", cfg.PuzzlePath)
	require.Equal(t, "1010", cfg.Start)
	require.Equal(t, "json", cfg.OutputFormat)
}

func TestParse_Help(t *testing.T) {
	var out bytes.Buffer
	cfg, exit, err := cli.Parse([]string{"-h"}, &out)
	require.NoError(t, err)
	require.True(t, exit)
	require.Nil(t, cfg)
	require.Contains(t, out.String(), "river-crossing")
}

func TestParse_Invalid(t *testing.T) {
	for name, args := range map[string][]string{
		"unknown flag": {"-nope"},
		"bad format":   {"-format", "xml"},
		"bad level":    {"-log-level", "loud"},
		"bad log fmt":  {"-log-format", "yaml"},
		"two files":    {"a.hcl", "b.hcl"},
	} {
		t.Run(name, func(t *testing.T) {
			var out bytes.Buffer
			_, _, err := cli.Parse(args, &out)
			var exitErr *cli.ExitError
			require.ErrorAs(t, err, &exitErr)
			require.Equal(t, 2, exitErr.Code)
		})
	}
}
