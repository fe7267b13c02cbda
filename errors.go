package rbox

import (
	"errors"
	"fmt"
	"strings"
)

// Code classifies a structural error.
type Code string

// Error codes for the layout protocol.
const (
	// ErrCodePrecondition is a bad argument: malformed constraints or a
	// negative or NaN intrinsic query input.
	ErrCodePrecondition Code = "PRECONDITION"
	// ErrCodePostcondition is a layout result that breaks the protocol:
	// size unset, infinite, outside its constraints, or intrinsics that
	// contradict themselves.
	ErrCodePostcondition Code = "POSTCONDITION"
	// ErrCodeOwnership is a size read or adopted by a box that is not
	// entitled to it.
	ErrCodeOwnership Code = "OWNERSHIP"
	// ErrCodeProtocol is a box calling the engine out of phase, such as
	// setting its size from the wrong step or adding too many children.
	ErrCodeProtocol Code = "PROTOCOL"
)

// Error is a structural error raised by the layout engine. Structural
// errors point at a defect in a box implementation; the engine never
// retries them.
type Error struct {
	Code     Code     // Machine-readable class
	Message  string   // Human-readable summary
	Node     string   // Offending box
	Reader   string   // Box that tried to read a size (ownership errors)
	Failures []string // Every failing check, for aggregated reports
	Cause    error    // Underlying error (optional)
}

func (e *Error) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %s", e.Code, e.Message)
	if e.Node != "" {
		fmt.Fprintf(&b, " [node %s]", e.Node)
	}
	if e.Reader != "" {
		fmt.Fprintf(&b, " [reader %s]", e.Reader)
	}
	for _, f := range e.Failures {
		b.WriteString("\n * ")
		b.WriteString(f)
	}
	if e.Cause != nil {
		fmt.Fprintf(&b, ": %v", e.Cause)
	}
	return b.String()
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

func newError(code Code, node *Box, format string, args ...any) *Error {
	e := &Error{Code: code, Message: fmt.Sprintf(format, args...)}
	if node != nil {
		e.Node = node.String()
	}
	return e
}

// Is reports whether err has the given error code.
// It unwraps the error chain looking for an *Error with a matching code.
func Is(err error, code Code) bool {
	var e *Error
	if errors.As(err, &e) {
		return e.Code == code
	}
	return false
}

// GetCode extracts the error code from an error, if available.
// Returns empty string if the error is not an *Error.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}
