package cmd

import (
	"fmt"

	"github.com/devantler-tech/valdedup/pkg/cli/helpers"
	"github.com/devantler-tech/valdedup/pkg/cli/ui/errorhandler"
	runtime "github.com/devantler-tech/valdedup/pkg/di"
	"github.com/spf13/cobra"
)

// NewRootCmd creates and returns the root command with version info and subcommands.
func NewRootCmd(version, commit, date string) *cobra.Command {
	runtimeContainer := runtime.NewRuntime()

	cmd := &cobra.Command{
		Use:          "valdedup",
		Short:        "valdedup deduplicates YAML values files across deployment instances",
		Long: "valdedup computes structural diffs between YAML values files and derives a\n" +
			"quorum-based common base plus per-instance overrides, so that several mostly\n" +
			"identical configuration instances can share one baseline.",
		RunE:         handleRootRunE,
		SilenceUsage: true,
	}

	cmd.Version = fmt.Sprintf("%s (Built on %s from Git SHA %s)", version, date, commit)

	cmd.PersistentFlags().Bool(
		helpers.TimingFlagName,
		false,
		"Show per-activity timing output",
	)

	cmd.AddCommand(NewDiffCmd(runtimeContainer))
	cmd.AddCommand(NewDedupeCmd(runtimeContainer))

	return cmd
}

// Execute runs the provided root command and handles errors.
func Execute(cmd *cobra.Command) error {
	executor := errorhandler.NewExecutor()

	err := executor.Execute(cmd)
	if err != nil {
		return fmt.Errorf("command execution failed: %w", err)
	}

	return nil
}

// --- internals ---

// handleRootRunE handles the root command.
func handleRootRunE(cmd *cobra.Command, _ []string) error {
	// The err can safely be ignored, as it can never fail at runtime.
	_ = cmd.Help()

	return nil
}
