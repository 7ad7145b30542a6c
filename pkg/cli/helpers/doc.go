// Package helpers provides small shared utilities for CLI command
// construction and flag handling.
package helpers
