package oneloop

import (
	"errors"
	"fmt"
)

// InputError reports a failure reading the input line.
// Reaching end of input is not an error.
type InputError struct {
	Err error
}

func (e *InputError) Error() string {
	return fmt.Sprintf("read input: %v", e.Err)
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// OutputError reports a failure writing to the output.
type OutputError struct {
	Err error
}

func (e *OutputError) Error() string {
	return fmt.Sprintf("write output: %v", e.Err)
}

func (e *OutputError) Unwrap() error {
	return e.Err
}

// IsInputError reports whether err is or wraps an InputError.
func IsInputError(err error) bool {
	var ie *InputError
	return errors.As(err, &ie)
}

// IsOutputError reports whether err is or wraps an OutputError.
func IsOutputError(err error) bool {
	var oe *OutputError
	return errors.As(err, &oe)
}
