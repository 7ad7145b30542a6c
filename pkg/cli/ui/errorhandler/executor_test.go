package errorhandler_test

import (
	"errors"
	"testing"

	"github.com/devantler-tech/valdedup/pkg/cli/ui/errorhandler"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errBoom = errors.New("boom")

func TestExecuteNilCommand(t *testing.T) {
	t.Parallel()

	require.NoError(t, errorhandler.NewExecutor().Execute(nil))
}

func TestExecuteSuccess(t *testing.T) {
	t.Parallel()

	cmd := &cobra.Command{
		Use:  "ok",
		RunE: func(*cobra.Command, []string) error { return nil },
	}

	require.NoError(t, errorhandler.NewExecutor().Execute(cmd))
}

func TestExecuteFailureWrapsCause(t *testing.T) {
	t.Parallel()

	cmd := &cobra.Command{
		Use:           "fail",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          func(*cobra.Command, []string) error { return errBoom },
	}

	err := errorhandler.NewExecutor().Execute(cmd)
	require.Error(t, err)
	require.ErrorIs(t, err, errBoom)

	var cmdErr *errorhandler.CommandError

	require.ErrorAs(t, err, &cmdErr)
	assert.Contains(t, cmdErr.Error(), "boom")
}

func TestExecuteStripsCobraErrorPrefix(t *testing.T) {
	t.Parallel()

	cmd := &cobra.Command{
		Use:          "fail",
		SilenceUsage: true,
		RunE:         func(*cobra.Command, []string) error { return errBoom },
	}

	err := errorhandler.NewExecutor().Execute(cmd)
	require.Error(t, err)
	assert.NotContains(t, err.Error(), "Error: ")
}
