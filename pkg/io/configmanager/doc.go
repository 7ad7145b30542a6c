// Package configmanager layers tool-level defaults for the dedupe
// command from a valdedup.yaml config file, VALDEDUP_* environment
// variables, and command-line flags, in that order of precedence.
package configmanager
