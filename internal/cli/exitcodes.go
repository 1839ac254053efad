package cli

import (
	"errors"

	"github.com/gobees/gobees/internal/database"
	"github.com/gobees/gobees/internal/datasource"
	"github.com/gobees/gobees/internal/models"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: Database errors, closed data source, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations,
	// unparseable dates.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: Apiary not found, hive not found, or a recording
	// range without any records.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: Malformed CSV input in record import.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Empty or overlong names, negative bee counts,
	// records without a timestamp.
	ExitValidation = 5
)

// CodedError attaches an exit code to an error
type CodedError struct {
	Code int
	Err  error
}

func (e *CodedError) Error() string {
	return e.Err.Error()
}

func (e *CodedError) Unwrap() error {
	return e.Err
}

// WithExitCode wraps err so ExitCode reports code for it
func WithExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &CodedError{Code: code, Err: err}
}

// ExitCode maps a command error to the process exit code
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}

	var coded *CodedError
	if errors.As(err, &coded) {
		return coded.Code
	}

	switch {
	case errors.Is(err, database.ErrNotFound), errors.Is(err, datasource.ErrDataNotAvailable):
		return ExitNotFound
	case errors.Is(err, models.ErrEmptyName),
		errors.Is(err, models.ErrNameTooLong),
		errors.Is(err, models.ErrMissingTimestamp),
		errors.Is(err, models.ErrNegativeBees):
		return ExitValidation
	default:
		return ExitError
	}
}
