package cli

import (
	"errors"
	"fmt"
)

// Sentinel errors for command-line handling.
var (
	// ErrUsage indicates invalid arguments; the command's usage is printed.
	ErrUsage = errors.New("invalid usage")

	// ErrOutputExists indicates the patch output exists and --force was not given.
	ErrOutputExists = fmt.Errorf("%w: output file exists", ErrUsage)
)

// reportedError marks an error whose message was already printed by the
// command, so Execute only adds the usage text.
type reportedError struct {
	err error
}

func (e *reportedError) Error() string { return e.err.Error() }

func (e *reportedError) Unwrap() error { return e.err }

// reported wraps err so Execute does not print it a second time.
func reported(err error) error {
	if err == nil {
		return nil
	}
	return &reportedError{err: err}
}
