package cmd_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/devantler-tech/valdedup/pkg/cli/cmd"
	fcolor "github.com/fatih/color"
	"github.com/gkampitakis/go-snaps/snaps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	// Disable colored output so assertions and snapshots are stable.
	fcolor.NoColor = true

	code := m.Run()

	snaps.Clean(m)
	os.Exit(code)
}

func TestNewRootCmd(t *testing.T) {
	t.Parallel()

	rootCmd := cmd.NewRootCmd("1.2.3", "abc123", "2026-08-25")

	assert.Equal(t, "valdedup", rootCmd.Use)
	assert.Equal(t, "1.2.3 (Built on 2026-08-25 from Git SHA abc123)", rootCmd.Version)

	subcommands := make([]string, 0, len(rootCmd.Commands()))
	for _, sub := range rootCmd.Commands() {
		subcommands = append(subcommands, sub.Name())
	}

	assert.Contains(t, subcommands, "diff")
	assert.Contains(t, subcommands, "dedupe")
}

func TestRootCommandShowsHelp(t *testing.T) {
	t.Parallel()

	rootCmd := cmd.NewRootCmd("dev", "none", "unknown")

	var out bytes.Buffer

	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs([]string{})

	err := rootCmd.Execute()

	require.NoError(t, err)
	snaps.MatchSnapshot(t, out.String())
}

func TestExecuteUnknownCommand(t *testing.T) {
	t.Parallel()

	rootCmd := cmd.NewRootCmd("dev", "none", "unknown")

	var out bytes.Buffer

	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"bogus"})

	err := cmd.Execute(rootCmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown command")
}

// writeValuesFile writes a YAML document into dir and returns its path.
func writeValuesFile(t *testing.T, dir, name, content string) string {
	t.Helper()

	path := filepath.Join(dir, name)

	err := os.WriteFile(path, []byte(content), 0o600)
	require.NoError(t, err)

	return path
}
