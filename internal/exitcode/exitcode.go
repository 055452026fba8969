// Package exitcode defines exit codes for the CLI.
//
// Failed commands exit non-zero after their single diagnostic line. The
// store is never touched on failure.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown or duplicate title,
	// unknown command, declined corruption prompt).
	UserError = 1

	// ConfigError indicates an unusable config directory or config.yaml.
	ConfigError = 2

	// StoreError indicates the data file could not be read or written.
	StoreError = 3
)
