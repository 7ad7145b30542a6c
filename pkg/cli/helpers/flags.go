package helpers

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// TimingFlagName is the name of the persistent flag that enables
// per-activity timing output.
const TimingFlagName = "timing"

// ErrNilCommand is returned when a nil command is passed to a flag lookup.
var ErrNilCommand = errors.New("command is nil")

// IsTimingEnabled reports whether the timing flag is set on the
// command's own, persistent, or inherited flag sets. A command
// without the flag reports false.
func IsTimingEnabled(cmd *cobra.Command) (bool, error) {
	if cmd == nil {
		return false, ErrNilCommand
	}

	flagSets := []*pflag.FlagSet{
		cmd.Flags(),
		cmd.PersistentFlags(),
		cmd.InheritedFlags(),
	}

	for _, flagSet := range flagSets {
		if flagSet.Lookup(TimingFlagName) == nil {
			continue
		}

		enabled, err := flagSet.GetBool(TimingFlagName)
		if err != nil {
			return false, fmt.Errorf("read %s flag: %w", TimingFlagName, err)
		}

		return enabled, nil
	}

	return false, nil
}
