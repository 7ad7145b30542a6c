// Package fsutil provides filesystem helpers shared by the CLI
// commands, chiefly overwrite-aware file writing.
package fsutil
