// Package errors provides error handling conventions for the agentsync CLI.
//
// This package defines sentinel errors for the failure conditions of the
// sync engine, an ExitError type for CLI exit code handling, and exit code
// constants following standard Unix conventions. It re-exports the
// construction helpers from cockroachdb/errors so the rest of the codebase
// imports a single errors package.
//
// # Sentinel Errors
//
// Sentinel errors allow callers to check for specific error conditions
// using [Is]:
//
//	if errors.Is(err, syncerrors.ErrSourceMissing) {
//	    // abort before any target mutation
//	}
//
// # Exit Codes
//
//   - ExitSuccess (0): Command completed successfully
//   - ExitUser (1): User-related error (invalid input, configuration, etc.)
//   - ExitSystem (2): System-related error (I/O, permissions, etc.)
package errors
