// Package errors is the error type every layer returns: a stable code for
// machines, a message safe to show callers, and a cause that stays in the process.
// Import it as perr.
package errors

import (
	stderrs "errors"
	"fmt"
	"net/http"
)

// ErrorCode values are on the wire; append only
type ErrorCode uint16

const (
	ErrorCodeUnknown ErrorCode = iota
	ErrorCodePanic
	ErrorCodeUnavailable
	ErrorCodeConflict
	ErrorCodeUnauthorized
	ErrorCodeForbidden
	ErrorCodeInvalidArgument
	ErrorCodeValidation
	ErrorCodeJSON
	ErrorCodeNotFound
	ErrorCodeDuplicateKey
	ErrorCodeDB
)

var codeInfo = map[ErrorCode]struct {
	name   string
	status int
}{
	ErrorCodeUnknown:         {"unknown", http.StatusInternalServerError},
	ErrorCodePanic:           {"panic", http.StatusInternalServerError},
	ErrorCodeUnavailable:     {"unavailable", http.StatusServiceUnavailable},
	ErrorCodeConflict:        {"conflict", http.StatusConflict},
	ErrorCodeUnauthorized:    {"unauthorized", http.StatusUnauthorized},
	ErrorCodeForbidden:       {"forbidden", http.StatusForbidden},
	ErrorCodeInvalidArgument: {"invalid_argument", http.StatusBadRequest},
	ErrorCodeValidation:      {"validation", http.StatusBadRequest},
	ErrorCodeJSON:            {"json", http.StatusBadRequest},
	ErrorCodeNotFound:        {"not_found", http.StatusNotFound},
	ErrorCodeDuplicateKey:    {"duplicate_key", http.StatusConflict},
	ErrorCodeDB:              {"db", http.StatusInternalServerError},
}

func (c ErrorCode) String() string {
	if i, ok := codeInfo[c]; ok {
		return i.name
	}
	return fmt.Sprintf("code(%d)", uint16(c))
}

// Status is the HTTP status for c; codes it does not know are 500
func (c ErrorCode) Status() int {
	if i, ok := codeInfo[c]; ok {
		return i.status
	}
	return http.StatusInternalServerError
}

// ErrNotFound is what store helpers return for an empty result or a write that touched nothing
var ErrNotFound = New(ErrorCodeNotFound, "not found")

// Error carries a code, a public message, an optional field and op label, and the cause
type Error struct {
	code  ErrorCode
	msg   string
	field string
	op    string
	cause error
}

func (e *Error) Error() string {
	if e.cause == nil {
		return e.msg
	}
	return e.msg + ": " + e.cause.Error()
}

func (e *Error) Unwrap() error   { return e.cause }
func (e *Error) Code() ErrorCode { return e.code }
func (e *Error) Field() string   { return e.field }
func (e *Error) Op() string      { return e.op }
func (e *Error) Message() string { return e.msg }

// As finds the first *Error in err's chain
func As(err error) (*Error, bool) {
	var e *Error
	ok := stderrs.As(err, &e)
	return e, ok
}

// CodeOf is Unknown for nil and for errors that are not ours
func CodeOf(err error) ErrorCode {
	if e, ok := As(err); ok {
		return e.code
	}
	return ErrorCodeUnknown
}

func IsCode(err error, code ErrorCode) bool { return err != nil && CodeOf(err) == code }

// IsInfrastructure is true for failures the caller did not cause:
// store, verifier, panics and anything unclassified
func IsInfrastructure(err error) bool {
	if err == nil {
		return false
	}
	switch CodeOf(err) {
	case ErrorCodeDB, ErrorCodeUnavailable, ErrorCodeUnknown, ErrorCodePanic:
		return true
	}
	return false
}

// Public is the part of an error a client may see
type Public struct {
	Status  int
	Code    ErrorCode
	Message string
	Field   string
}

// Describe reduces err to its Public form; foreign errors become a bare 500
func Describe(err error) Public {
	e, ok := As(err)
	if !ok {
		return Public{Status: http.StatusInternalServerError, Code: ErrorCodeUnknown, Message: "internal error"}
	}
	return Public{Status: e.code.Status(), Code: e.code, Message: e.msg, Field: e.field}
}

// WithOp returns a copy of err tagged with op; foreign errors pass through
func WithOp(err error, op string) error {
	e, ok := As(err)
	if !ok {
		return err
	}
	c := *e
	c.op = op
	return &c
}

// Recode puts a new code and message in front of err, keeping err as the cause
func Recode(err error, code ErrorCode, msg string) error {
	if err == nil {
		return nil
	}
	return &Error{code: code, msg: msg, cause: err}
}

func New(code ErrorCode, msg string) error { return &Error{code: code, msg: msg} }

func Wrap(cause error, code ErrorCode, msg string) error {
	return &Error{code: code, msg: msg, cause: cause}
}

func newf(code ErrorCode, format string, a []any) error {
	return &Error{code: code, msg: fmt.Sprintf(format, a...)}
}

// Validationf reports bad input on field
func Validationf(field, format string, a ...any) error {
	return &Error{code: ErrorCodeValidation, msg: fmt.Sprintf(format, a...), field: field}
}

func NotFoundf(format string, a ...any) error     { return newf(ErrorCodeNotFound, format, a) }
func InvalidArgf(format string, a ...any) error   { return newf(ErrorCodeInvalidArgument, format, a) }
func DBf(format string, a ...any) error           { return newf(ErrorCodeDB, format, a) }
func JSONErrf(format string, a ...any) error      { return newf(ErrorCodeJSON, format, a) }
func PanicErrf(format string, a ...any) error     { return newf(ErrorCodePanic, format, a) }
func Unauthorizedf(format string, a ...any) error { return newf(ErrorCodeUnauthorized, format, a) }
func Forbiddenf(format string, a ...any) error    { return newf(ErrorCodeForbidden, format, a) }
func Unavailablef(format string, a ...any) error  { return newf(ErrorCodeUnavailable, format, a) }
