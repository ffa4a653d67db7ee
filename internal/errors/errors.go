package errors

import (
	"fmt"

	crdberrors "github.com/cockroachdb/errors"
)

// Exit codes for CLI applications.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitUser indicates a user-related error (invalid input, configuration, etc.).
	ExitUser = 1

	// ExitSystem indicates a system-related error (I/O, network, permissions, etc.).
	ExitSystem = 2
)

// Sentinel errors for common failure conditions.
var (
	// ErrSourceMissing indicates the source document or directory does not exist.
	// Sync aborts before touching any target when this is returned.
	ErrSourceMissing = crdberrors.New("source not found")

	// ErrTargetPrerequisite indicates a destination directory or path the chosen
	// target requires was not provided.
	ErrTargetPrerequisite = crdberrors.New("target prerequisite missing")

	// ErrUnknownServer indicates a requested server name does not exist in the source.
	ErrUnknownServer = crdberrors.New("unknown server")

	// ErrUnknownSkill indicates a requested skill name does not exist in the source.
	ErrUnknownSkill = crdberrors.New("unknown skill")

	// ErrBackupFailed indicates the pre-write backup of an existing target file
	// could not be created. The target is left unmodified.
	ErrBackupFailed = crdberrors.New("backup failed")

	// ErrUnknownTarget indicates the target name is not registered.
	ErrUnknownTarget = crdberrors.New("unknown target")
)

// Construction and inspection helpers, re-exported from cockroachdb/errors so
// call sites import a single errors package.
var (
	New    = crdberrors.New
	Newf   = crdberrors.Newf
	Wrap   = crdberrors.Wrap
	Wrapf  = crdberrors.Wrapf
	Is     = crdberrors.Is
	As     = crdberrors.As
	Join   = crdberrors.Join
	Unwrap = crdberrors.Unwrap
)

// ExitError wraps an error with an exit code and optional suggestion for CLI applications.
// It implements the error interface and supports unwrapping via errors.Unwrap.
type ExitError struct {
	// Err is the underlying error that caused the exit.
	Err error

	// Code is the exit code to return to the operating system.
	Code int

	// Suggestion is an optional actionable suggestion for the user.
	Suggestion string
}

// NewExitError creates an ExitError with the given underlying error and exit code.
// If err is nil, the returned ExitError will have a nil Err field.
func NewExitError(err error, code int) *ExitError {
	return &ExitError{
		Err:  err,
		Code: code,
	}
}

// NewUserError creates an ExitError with ExitUser code and a suggestion.
func NewUserError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitUser,
		Suggestion: suggestion,
	}
}

// NewSystemError creates an ExitError with ExitSystem code and a suggestion.
func NewSystemError(err error, suggestion string) *ExitError {
	return &ExitError{
		Err:        err,
		Code:       ExitSystem,
		Suggestion: suggestion,
	}
}

// Error returns the error message from the underlying error.
// If the underlying error is nil, it returns a generic message with the exit code.
func (e *ExitError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit code %d", e.Code)
	}
	return e.Err.Error()
}

// Unwrap returns the underlying error, enabling errors.Is and errors.As
// to examine the error chain.
func (e *ExitError) Unwrap() error {
	return e.Err
}
