package jsonlines

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrTrailingData indicates a line held more than one JSON value.
	ErrTrailingData = errors.New("jsonlines: trailing data after JSON value")

	// ErrLineTooLong indicates a line exceeds the configured maximum length.
	ErrLineTooLong = errors.New("jsonlines: line exceeds maximum length")
)

// DecodeError reports a line that could not be decoded into a value.
//
// It wraps the underlying cause, so errors.Is and errors.As see through
// it: a record cut off mid-value (including a blank line) matches
// io.ErrUnexpectedEOF, while complete but unusable JSON carries a
// *json.SyntaxError, a *json.UnmarshalTypeError, or ErrTrailingData.
//
// A DecodeError does not end a read sequence. The reader is already
// positioned at the start of the next line when it is returned.
type DecodeError struct {
	Line int64 // 1-based line number where the error occurred
	Err  error // the decode failure
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("jsonlines: line %d: %v", e.Line, e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}
