package errdef

import (
	"errors"
	"fmt"
	"strings"
)

// Code classifies a failure so the CLI can tell a bad option apart from a
// tree that no longer matches the template.
type Code string

const (
	CodeUnknown    Code = "unknown"
	CodeConfig     Code = "config"
	CodeValidation Code = "validation"
	CodeFilesystem Code = "filesystem"
	CodeTelemetry  Code = "telemetry"
)

type Error struct {
	Code    Code
	Message string
	Err     error
}

// Error renders as "code: message: cause", skipping empty parts.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	parts := make([]string, 0, 3)
	parts = append(parts, string(e.Code))
	if e.Message != "" {
		parts = append(parts, e.Message)
	}
	if e.Err != nil {
		parts = append(parts, e.Err.Error())
	}
	return strings.Join(parts, ": ")
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// Wrap tags err with code. A nil err stays nil so call sites can wrap
// unconditionally.
func Wrap(code Code, err error, format string, args ...any) error {
	if err == nil {
		return nil
	}
	return &Error{Code: orUnknown(code), Message: sprintf(format, args), Err: err}
}

func New(code Code, format string, args ...any) error {
	return &Error{Code: orUnknown(code), Message: sprintf(format, args)}
}

// CodeOf returns the code of the outermost coded error in the chain.
func CodeOf(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return CodeUnknown
}

// Is reports whether any coded error in the chain carries code.
func Is(err error, code Code) bool {
	for err != nil {
		var e *Error
		if !errors.As(err, &e) {
			return false
		}
		if e.Code == code {
			return true
		}
		err = e.Err
	}
	return false
}

func sprintf(format string, args []any) string {
	if len(args) == 0 {
		return format
	}
	return fmt.Sprintf(format, args...)
}

func orUnknown(code Code) Code {
	if code == "" {
		return CodeUnknown
	}
	return code
}
