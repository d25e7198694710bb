package app

import (
	"errors"
	"strconv"
)

var (
	// ErrNilOutput is returned by New when no output writer was wired.
	ErrNilOutput = errors.New("oopqa: nil output writer")

	// ErrEmptyMessage is returned by Config.Validate when the completion
	// message is empty.
	ErrEmptyMessage = errors.New("oopqa: empty completion message")
)

// WriteError is returned by Program.Run when the completion line could not be
// written in full.
type WriteError struct {
	// Written is the number of bytes the writer accepted.
	Written int
	Err     error
}

// Error implements the error interface.
func (e *WriteError) Error() string {
	msg := "oopqa: write completion line after " + strconv.Itoa(e.Written) + " bytes"
	if e.Err == nil {
		return msg
	}
	return msg + ": " + e.Err.Error()
}

// Unwrap returns the underlying writer error.
func (e *WriteError) Unwrap() error { return e.Err }
