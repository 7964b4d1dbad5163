// Package errors contains the error taxonomy of a sort run. Every failure of a run is fatal and is
// reported as an *Error carrying the Kind of failure and the file involved.
package errors

import (
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

type sortError string

func (e sortError) Error() string { return string(e) }

const (
	// ErrEmptyRow is returned for a row that has no field to take the sort key from.
	ErrEmptyRow sortError = "row has no fields to take the sort key from"
)

// Kind classifies a failure.
type Kind int

const (
	Unknown Kind = iota
	// InputAccess means the input file is absent or unreadable.
	InputAccess
	// MalformedRow means a row lacks the sort key or cannot be parsed.
	MalformedRow
	// OutputAccess means the output file cannot be created or written.
	OutputAccess
)

func (k Kind) String() string {
	switch k {
	case InputAccess:
		return "input access error"
	case MalformedRow:
		return "malformed row"
	case OutputAccess:
		return "output access error"
	default:
		return "unknown error"
	}
}

// Error is a fatal failure of a sort run. Line is the 1-based input line of a malformed row and is
// zero when unknown or not applicable.
type Error struct {
	Kind Kind
	Path string
	Line int
	Err  error
}

func (e *Error) Error() string {
	loc := e.Path
	if e.Line > 0 {
		loc = fmt.Sprintf("%s:%d", e.Path, e.Line)
	}
	switch {
	case loc == "" && e.Err == nil:
		return e.Kind.String()
	case loc == "":
		return fmt.Sprintf("%s: %v", e.Kind, e.Err)
	case e.Err == nil:
		return fmt.Sprintf("%s: %s", e.Kind, loc)
	}
	return fmt.Sprintf("%s: %s: %v", e.Kind, loc, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// Cause lets pkg/errors.Cause walk through an *Error.
func (e *Error) Cause() error { return e.Err }

// NewInputAccess reports that the input file at path could not be read.
func NewInputAccess(path string, err error) error {
	return &Error{Kind: InputAccess, Path: path, Err: pkgerrors.WithStack(err)}
}

// NewMalformedRow reports a row of path that cannot be sorted. line may be zero.
func NewMalformedRow(path string, line int, err error) error {
	return &Error{Kind: MalformedRow, Path: path, Line: line, Err: pkgerrors.WithStack(err)}
}

// NewOutputAccess reports that the output file at path could not be created or written.
func NewOutputAccess(path string, err error) error {
	return &Error{Kind: OutputAccess, Path: path, Err: pkgerrors.WithStack(err)}
}

// KindOf returns the Kind of the first *Error in err's chain, or Unknown.
func KindOf(err error) Kind {
	var e *Error
	if pkgerrors.As(err, &e) {
		return e.Kind
	}
	return Unknown
}
