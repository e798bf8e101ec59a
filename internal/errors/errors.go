// Package errors defines the error codes shared by ngscaffold packages.
package errors

import (
	"errors"
	"fmt"
	"io"
)

// Code is a stable error code string.
type Code string

const (
	EUsage        Code = "E_USAGE"
	EInvalidInput Code = "E_INVALID_INPUT"
	EInternal     Code = "E_INTERNAL"

	// Splice
	EFileNotFound   Code = "E_FILE_NOT_FOUND"
	EFileUnreadable Code = "E_FILE_UNREADABLE"
	EMarkerNotFound Code = "E_MARKER_NOT_FOUND"
	EWriteFailure   Code = "E_WRITE_FAILURE"

	// Generation
	ETemplateNotFound Code = "E_TEMPLATE_NOT_FOUND"
	ETemplateRender   Code = "E_TEMPLATE_RENDER"
	EInvalidConfig    Code = "E_INVALID_CONFIG"
	EPromptAborted    Code = "E_PROMPT_ABORTED"
)

// Error is the structured error returned by ngscaffold packages.
type Error struct {
	Code  Code
	Msg   string
	Path  string // file the error refers to, if any
	Cause error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %s", e.Code, e.Msg, e.Path)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Msg)
}

// Unwrap returns the underlying cause for errors.Is/As compatibility.
func (e *Error) Unwrap() error {
	return e.Cause
}

// New creates an Error with the given code and message.
func New(code Code, msg string) error {
	return &Error{Code: code, Msg: msg}
}

// NewPath creates an Error that names the file it refers to.
func NewPath(code Code, msg, path string) error {
	return &Error{Code: code, Msg: msg, Path: path}
}

// Wrap creates an Error wrapping an underlying error.
func Wrap(code Code, msg string, err error) error {
	return &Error{Code: code, Msg: msg, Cause: err}
}

// WrapPath creates an Error wrapping err and naming the file it refers to.
func WrapPath(code Code, msg, path string, err error) error {
	return &Error{Code: code, Msg: msg, Path: path, Cause: err}
}

// GetCode extracts the error code from err, or "" if err carries none.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// HasCode reports whether err carries one of the given codes.
func HasCode(err error, codes ...Code) bool {
	got := GetCode(err)
	if got == "" {
		return false
	}
	for _, c := range codes {
		if got == c {
			return true
		}
	}
	return false
}

// IsMissingReference reports whether err means the target file or its marker
// was absent. Callers treat these as warnings and keep going.
func IsMissingReference(err error) bool {
	return HasCode(err, EFileNotFound, EMarkerNotFound)
}

// ExitCode returns the process exit code for err.
// 0 for nil, 2 for E_USAGE, 1 for everything else.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	if GetCode(err) == EUsage {
		return 2
	}
	return 1
}

// Print writes err to w in the stable stderr format:
//
//	error_code: <CODE>
//	<message>
func Print(w io.Writer, err error) {
	if err == nil {
		return
	}
	var e *Error
	if errors.As(err, &e) {
		fmt.Fprintf(w, "error_code: %s\n", e.Code)
		if e.Path != "" {
			fmt.Fprintf(w, "%s: %s\n", e.Msg, e.Path)
		} else {
			fmt.Fprintln(w, e.Msg)
		}
		if e.Cause != nil {
			fmt.Fprintf(w, "cause: %v\n", e.Cause)
		}
		return
	}
	fmt.Fprintln(w, err.Error())
}
