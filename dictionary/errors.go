package dictionary

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformedEntry is returned when a required field is missing or empty.
	ErrMalformedEntry = errors.New("malformed entry")
	// ErrInvalidAccentIndex is returned when an accent core is negative,
	// not a number, or beyond the mora count of the reading.
	ErrInvalidAccentIndex = errors.New("invalid accent index")
	// ErrEncoding is returned when a field cannot be written as UTF-8.
	ErrEncoding = errors.New("encoding error")
)

// EntryError identifies the record that aborted a conversion.
type EntryError struct {
	Err     error
	Line    int
	Surface string
	Detail  string
}

func (e *EntryError) Error() string {
	msg := e.Err.Error()
	if e.Detail != "" {
		msg = e.Detail + ": " + msg
	}
	if e.Surface != "" {
		msg = fmt.Sprintf("%s: surface %q", msg, e.Surface)
	}
	if e.Line > 0 {
		msg = fmt.Sprintf("%s at line %d", msg, e.Line)
	}
	return msg
}

func (e *EntryError) Unwrap() error {
	return e.Err
}

func malformed(line int, surface string, format string, args ...interface{}) error {
	return &EntryError{
		Err:     ErrMalformedEntry,
		Line:    line,
		Surface: surface,
		Detail:  fmt.Sprintf(format, args...),
	}
}

func invalidAccent(line int, surface string, format string, args ...interface{}) error {
	return &EntryError{
		Err:     ErrInvalidAccentIndex,
		Line:    line,
		Surface: surface,
		Detail:  fmt.Sprintf(format, args...),
	}
}
