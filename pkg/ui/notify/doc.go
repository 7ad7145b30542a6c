// Package notify renders styled user-facing messages (errors,
// warnings, activity, file generation, success) to an io.Writer.
package notify
