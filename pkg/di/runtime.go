// Package di wires the shared runtime dependencies (timer, diff
// factory) through a samber/do injector so commands and tests resolve
// them the same way.
package di

import (
	"fmt"

	"github.com/samber/do/v2"
)

// Injector is the dependency injector commands resolve services from.
type Injector = do.Injector

// Provider registers a dependency with the injector.
type Provider func(Injector) error

// Runtime is the dependency container shared by the root command and tests.
type Runtime struct {
	injector Injector
}

// New constructs a runtime from the given providers. Provider
// registration cannot fail at runtime; a failing provider is a
// programming error and panics.
func New(providers ...Provider) *Runtime {
	injector := do.New()

	for _, provide := range providers {
		err := provide(injector)
		if err != nil {
			panic(fmt.Sprintf("di: provider registration failed: %v", err))
		}
	}

	return &Runtime{injector: injector}
}

// Invoke runs fn with the runtime's injector.
func (r *Runtime) Invoke(fn func(Injector) error) error {
	return fn(r.injector)
}
