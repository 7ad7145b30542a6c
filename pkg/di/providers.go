package di

import (
	"github.com/devantler-tech/valdedup/pkg/diff"
	"github.com/devantler-tech/valdedup/pkg/ui/timer"
	"github.com/samber/do/v2"
)

// Dependency providers.

// NewRuntime constructs the shared runtime container used by the root
// command and tests. It registers default implementations for the
// timer and the diff factory.
func NewRuntime() *Runtime {
	return New(
		provideTimer,
		provideDiffFactory,
	)
}

// provideTimer registers the timer dependency with the injector.
func provideTimer(i Injector) error {
	do.Provide(i, func(Injector) (timer.Timer, error) {
		return timer.New(), nil
	})

	return nil
}

// provideDiffFactory registers the diff factory dependency.
func provideDiffFactory(i Injector) error {
	do.Provide(i, func(Injector) (diff.Factory, error) {
		return diff.DefaultFactory{}, nil
	})

	return nil
}
