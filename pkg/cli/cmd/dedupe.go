package cmd

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/devantler-tech/valdedup/pkg/cli/helpers"
	runtime "github.com/devantler-tech/valdedup/pkg/di"
	"github.com/devantler-tech/valdedup/pkg/diff"
	"github.com/devantler-tech/valdedup/pkg/io/configmanager"
	"github.com/devantler-tech/valdedup/pkg/io/valuesfile"
	"github.com/devantler-tech/valdedup/pkg/ui/notify"
	"github.com/devantler-tech/valdedup/pkg/ui/timer"
	"github.com/devantler-tech/valdedup/pkg/yamlvalue"
	"github.com/spf13/cobra"
)

const dedupeLongDesc = `Derive a quorum-based common base and per-file overrides from values files.

Each tree position where at least ceil(quorum × N) of the N input files agree
contributes to the common base; every file's deviations from that base are
written as a per-file override. Missing map keys participate as null, and
arrays are treated as atomic: they never enter the base, even when identical
everywhere.

The quorum and output directory can also be set in a valdedup.yaml config file
or through VALDEDUP_QUORUM and VALDEDUP_OUTPUT_DIR environment variables;
explicitly set flags win.

Examples:
  # Dedupe three instance values files with the default quorum
  valdedup dedupe staging.yaml prod-eu.yaml prod-us.yaml

  # Require agreement of all files, write into ./common
  valdedup dedupe --quorum 1.0 --output-dir common *.yaml`

// NewDedupeCmd creates the dedupe command.
func NewDedupeCmd(runtimeContainer *runtime.Runtime) *cobra.Command {
	var (
		force   bool
		verbose bool
	)

	cmd := &cobra.Command{
		Use:          "dedupe <values-file>...",
		Short:        "Derive a common base and per-file overrides",
		Long:         dedupeLongDesc,
		Args:         cobra.MinimumNArgs(2),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runtimeContainer.Invoke(func(injector runtime.Injector) error {
				handler := runtime.WithTimer(
					func(cmd *cobra.Command, injector runtime.Injector, tmr timer.Timer) error {
						factory, err := runtime.ResolveDiffFactory(injector)
						if err != nil {
							return err
						}

						deps := DedupeDeps{
							Factory: factory,
							Timer:   tmr,
							Force:   force,
							Verbose: verbose,
						}

						return HandleDedupeRunE(cmd, args, deps)
					},
				)

				return handler(cmd, injector)
			})
		},
	}

	cmd.Flags().Float64("quorum", configmanager.DefaultQuorum,
		"Fraction of files that must agree on a value for it to enter the base, in (0, 1]")
	cmd.Flags().String("output-dir", configmanager.DefaultOutputDir,
		"Directory to write base.yaml and per-file overrides to")
	cmd.Flags().BoolVar(&force, "force", false,
		"Overwrite existing output files")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false,
		"Report each processed key, quorum threshold, and kind mismatch")

	return cmd
}

// DedupeDeps captures dependencies needed for the dedupe command logic.
type DedupeDeps struct {
	Factory diff.Factory
	Timer   timer.Timer
	Force   bool
	Verbose bool

	// ConfigManager is optional; if nil, a manager searching the
	// working directory is used. This is primarily for testing.
	ConfigManager *configmanager.Manager
}

// HandleDedupeRunE handles the dedupe command.
// Exported for testing purposes.
func HandleDedupeRunE(cmd *cobra.Command, paths []string, deps DedupeDeps) error {
	if deps.Timer != nil {
		deps.Timer.Start()
	}

	config, err := resolveDedupeConfig(cmd, deps)
	if err != nil {
		return err
	}

	var opts []diff.Option
	if deps.Verbose {
		opts = append(opts, diff.WithObserver(notifyObserver{writer: cmd.OutOrStdout()}))
	}

	reducer, err := deps.Factory.Reducer(config.Quorum, opts...)
	if err != nil {
		return fmt.Errorf("invalid quorum %v: %w", config.Quorum, err)
	}

	values, err := valuesfile.LoadAll(paths)
	if err != nil {
		return err
	}

	notify.Activityf(cmd.OutOrStdout(),
		"reducing %d values files with quorum %.2f", len(values), config.Quorum)

	base, diffs, err := reducer.Reduce(values)
	if err != nil {
		return fmt.Errorf("reduce values files: %w", err)
	}

	err = writeDedupeResults(cmd, paths, base, diffs, config.OutputDir, deps.Force)
	if err != nil {
		return err
	}

	return reportDedupeSuccess(cmd, deps.Timer, len(paths))
}

// resolveDedupeConfig layers the quorum and output directory from
// config file, environment, and flags.
func resolveDedupeConfig(cmd *cobra.Command, deps DedupeDeps) (*configmanager.Config, error) {
	manager := deps.ConfigManager
	if manager == nil {
		manager = configmanager.NewManager()
	}

	err := manager.BindFlags(cmd.Flags())
	if err != nil {
		return nil, err
	}

	config, err := manager.Load()
	if err != nil {
		return nil, err
	}

	return config, nil
}

// writeDedupeResults writes base.yaml and one override file per
// deviating input into outputDir.
func writeDedupeResults(
	cmd *cobra.Command,
	paths []string,
	base *yamlvalue.Value,
	diffs []*yamlvalue.Value,
	outputDir string,
	force bool,
) error {
	out := cmd.OutOrStdout()

	if base == nil {
		notify.Warningf(out, "no value met the quorum; no base written")
	} else {
		err := writeResultFile(cmd, base, filepath.Join(outputDir, "base.yaml"), force, "common base")
		if err != nil {
			return err
		}
	}

	names := diffFileNames(paths)

	for i, diffValue := range diffs {
		if diffValue == nil {
			notify.Infof(out, "%s matches the base", paths[i])

			continue
		}

		path := filepath.Join(outputDir, names[i])

		err := writeResultFile(cmd, diffValue, path, force, "overrides for "+paths[i])
		if err != nil {
			return err
		}
	}

	return nil
}

func writeResultFile(
	cmd *cobra.Command,
	value *yamlvalue.Value,
	path string,
	force bool,
	description string,
) error {
	skipped, err := valuesfile.Write(value, path, force)
	if err != nil {
		return err
	}

	if skipped {
		notify.Warningf(cmd.OutOrStdout(),
			"%s already exists, skipping (use --force to overwrite)", path)

		return nil
	}

	notify.Generatef(cmd.OutOrStdout(), "wrote %s to %s", description, path)

	return nil
}

// diffFileNames derives one output file name per input path,
// disambiguating inputs that share a base name.
func diffFileNames(paths []string) []string {
	names := make([]string, len(paths))
	seen := map[string]struct{}{}

	for i, path := range paths {
		stem := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

		name := stem + ".diff.yaml"
		if _, taken := seen[name]; taken {
			name = fmt.Sprintf("%s-%d.diff.yaml", stem, i)
		}

		seen[name] = struct{}{}
		names[i] = name
	}

	return names
}

// reportDedupeSuccess prints the closing success line, with timing
// when the --timing flag is set.
func reportDedupeSuccess(cmd *cobra.Command, tmr timer.Timer, fileCount int) error {
	enabled, err := helpers.IsTimingEnabled(cmd)
	if err != nil {
		return err
	}

	if enabled && tmr != nil {
		notify.SuccessWithTimerf(cmd.OutOrStdout(), tmr, "deduplicated %d values files", fileCount)
	} else {
		notify.Successf(cmd.OutOrStdout(), "deduplicated %d values files", fileCount)
	}

	return nil
}
