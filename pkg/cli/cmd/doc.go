// Package cmd assembles the valdedup command tree: the root command
// plus the diff and dedupe subcommands.
package cmd
