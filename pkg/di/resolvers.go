package di

import (
	"fmt"

	"github.com/devantler-tech/valdedup/pkg/diff"
	"github.com/devantler-tech/valdedup/pkg/ui/timer"
	"github.com/samber/do/v2"
	"github.com/spf13/cobra"
)

// Dependency resolvers.

// ResolveTimer retrieves the timer dependency from the injector with
// consistent error handling.
func ResolveTimer(injector Injector) (timer.Timer, error) {
	tmr, err := do.Invoke[timer.Timer](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve timer dependency: %w", err)
	}

	return tmr, nil
}

// ResolveDiffFactory retrieves the diff factory dependency from the
// injector with consistent error handling.
func ResolveDiffFactory(injector Injector) (diff.Factory, error) {
	factory, err := do.Invoke[diff.Factory](injector)
	if err != nil {
		return nil, fmt.Errorf("resolve diff factory dependency: %w", err)
	}

	return factory, nil
}

// Handler decorators.

// WithTimer decorates a handler to automatically resolve the timer
// dependency. This higher-order function simplifies command handlers
// that need timer access.
func WithTimer(
	handler func(cmd *cobra.Command, injector Injector, tmr timer.Timer) error,
) func(cmd *cobra.Command, injector Injector) error {
	return func(cmd *cobra.Command, injector Injector) error {
		tmr, err := ResolveTimer(injector)
		if err != nil {
			return err
		}

		return handler(cmd, injector, tmr)
	}
}
