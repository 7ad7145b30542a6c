// Package cli provides reusable helpers for command wiring and execution.
//
// This package is organized into subpackages for different functionality:
//
//   - cli/cmd: The valdedup command tree (root, diff, dedupe)
//   - cli/helpers: Flag handling utilities including timing detection
//   - cli/ui: User interface components (errorhandler)
//
// The utilities in this package follow dependency injection patterns and
// integrate with the valdedup runtime container for testability.
package cli
