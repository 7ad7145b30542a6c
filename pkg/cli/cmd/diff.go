package cmd

import (
	"fmt"

	runtime "github.com/devantler-tech/valdedup/pkg/di"
	"github.com/devantler-tech/valdedup/pkg/diff"
	"github.com/devantler-tech/valdedup/pkg/io/valuesfile"
	"github.com/devantler-tech/valdedup/pkg/ui/notify"
	"github.com/devantler-tech/valdedup/pkg/yamlvalue"
	"github.com/spf13/cobra"
)

const diffLongDesc = `Compute the directed difference of a candidate values file against a baseline.

The diff contains only what the candidate changes: map keys present solely in
the baseline are ignored, and unchanged positions in equal-length arrays are
filled with null placeholders. If the files are structurally equal, no diff is
produced.

Examples:
  # Print the diff to stdout
  valdedup diff staging.yaml base.yaml

  # Write the diff to a file
  valdedup diff staging.yaml base.yaml --output staging.diff.yaml`

// NewDiffCmd creates the diff command.
func NewDiffCmd(runtimeContainer *runtime.Runtime) *cobra.Command {
	var (
		output string
		force  bool
	)

	cmd := &cobra.Command{
		Use:          "diff <candidate> <baseline>",
		Short:        "Diff a candidate values file against a baseline",
		Long:         diffLongDesc,
		Args:         cobra.ExactArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runtimeContainer.Invoke(func(injector runtime.Injector) error {
				factory, err := runtime.ResolveDiffFactory(injector)
				if err != nil {
					return err
				}

				deps := DiffDeps{Factory: factory, Output: output, Force: force}

				return HandleDiffRunE(cmd, args[0], args[1], deps)
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "-",
		"File to write the diff to, or '-' for stdout")
	cmd.Flags().BoolVar(&force, "force", false,
		"Overwrite the output file if it exists")

	return cmd
}

// DiffDeps captures dependencies needed for the diff command logic.
type DiffDeps struct {
	Factory diff.Factory
	Output  string
	Force   bool
}

// HandleDiffRunE handles the diff command.
// Exported for testing purposes.
func HandleDiffRunE(cmd *cobra.Command, candidatePath, baselinePath string, deps DiffDeps) error {
	candidate, err := valuesfile.Load(candidatePath)
	if err != nil {
		return err
	}

	baseline, err := valuesfile.Load(baselinePath)
	if err != nil {
		return err
	}

	result, err := deps.Factory.Differ().Diff(candidate, baseline)
	if err != nil {
		return fmt.Errorf("diff %s against %s: %w", candidatePath, baselinePath, err)
	}

	if result == nil {
		notify.Infof(cmd.OutOrStdout(), "%s matches %s: no diff", candidatePath, baselinePath)

		return nil
	}

	return writeDiffResult(cmd, result, deps)
}

func writeDiffResult(cmd *cobra.Command, result *yamlvalue.Value, deps DiffDeps) error {
	if deps.Output == "-" {
		data, err := yamlvalue.Encode(result)
		if err != nil {
			return fmt.Errorf("encode diff: %w", err)
		}

		_, err = cmd.OutOrStdout().Write(data)
		if err != nil {
			return fmt.Errorf("write diff to stdout: %w", err)
		}

		return nil
	}

	skipped, err := valuesfile.Write(result, deps.Output, deps.Force)
	if err != nil {
		return err
	}

	if skipped {
		notify.Warningf(cmd.OutOrStdout(), "%s already exists, skipping (use --force to overwrite)", deps.Output)

		return nil
	}

	notify.Generatef(cmd.OutOrStdout(), "wrote diff to %s", deps.Output)

	return nil
}
