package helpers_test

import (
	"testing"

	"github.com/devantler-tech/valdedup/pkg/cli/helpers"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTimingEnabled(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		setupCmd    func() *cobra.Command
		wantEnabled bool
		wantErr     bool
	}{
		{
			name: "returns error for nil command",
			setupCmd: func() *cobra.Command {
				return nil
			},
			wantErr: true,
		},
		{
			name: "returns false when flag is absent",
			setupCmd: func() *cobra.Command {
				return &cobra.Command{}
			},
			wantEnabled: false,
		},
		{
			name: "returns false when timing flag is false",
			setupCmd: func() *cobra.Command {
				cmd := &cobra.Command{}
				cmd.Flags().Bool(helpers.TimingFlagName, false, "")

				return cmd
			},
			wantEnabled: false,
		},
		{
			name: "returns true when timing flag is true",
			setupCmd: func() *cobra.Command {
				cmd := &cobra.Command{}
				cmd.Flags().Bool(helpers.TimingFlagName, true, "")

				return cmd
			},
			wantEnabled: true,
		},
		{
			name: "finds timing in persistent flags",
			setupCmd: func() *cobra.Command {
				cmd := &cobra.Command{}
				cmd.PersistentFlags().Bool(helpers.TimingFlagName, true, "")

				return cmd
			},
			wantEnabled: true,
		},
		{
			name: "finds timing in inherited flags from parent",
			setupCmd: func() *cobra.Command {
				parent := &cobra.Command{}
				parent.PersistentFlags().Bool(helpers.TimingFlagName, true, "")

				child := &cobra.Command{Use: "child"}
				parent.AddCommand(child)

				return child
			},
			wantEnabled: true,
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()

			enabled, err := helpers.IsTimingEnabled(testCase.setupCmd())

			if testCase.wantErr {
				require.Error(t, err)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, testCase.wantEnabled, enabled)
		})
	}
}
