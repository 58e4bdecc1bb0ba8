package tabular

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
)

// Kind classifies failures of dataset operations.
type Kind int

const (
	KindConfiguration Kind = iota + 1
	KindNotFound
	KindInvalidColumn
	KindRemoteAccess
	KindValidation
	KindWriteConflict
	KindConflict
)

func (k Kind) String() string {
	switch k {
	case KindConfiguration:
		return "configuration"
	case KindNotFound:
		return "not found"
	case KindInvalidColumn:
		return "invalid column"
	case KindRemoteAccess:
		return "remote access"
	case KindValidation:
		return "validation"
	case KindWriteConflict:
		return "write conflict"
	case KindConflict:
		return "conflict"
	default:
		return "unknown"
	}
}

// Sentinels usable with errors.Is; any *Error of the same kind matches.
var (
	ErrConfiguration = &Error{Kind: KindConfiguration}
	ErrNotFound      = &Error{Kind: KindNotFound}
	ErrInvalidColumn = &Error{Kind: KindInvalidColumn}
	ErrRemoteAccess  = &Error{Kind: KindRemoteAccess}
	ErrValidation    = &Error{Kind: KindValidation}
	ErrWriteConflict = &Error{Kind: KindWriteConflict}
	ErrConflict      = &Error{Kind: KindConflict}
)

// Error is a classified failure with a message safe to return to clients.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Msg != "" && e.Err != nil:
		return e.Msg + ": " + e.Err.Error()
	case e.Msg != "":
		return e.Msg
	case e.Err != nil:
		return e.Err.Error()
	default:
		return e.Kind.String()
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error of the same kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}

	return t.Kind == e.Kind
}

// StatusCode is the HTTP status the error translates to at the boundary.
func (e *Error) StatusCode() int {
	switch e.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindInvalidColumn:
		return http.StatusBadRequest
	case KindValidation:
		return http.StatusUnprocessableEntity
	case KindWriteConflict, KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// KindOf returns the kind of the first *Error in err's chain, or zero.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}

	return 0
}

func NotFound(format string, args ...interface{}) error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

func InvalidColumn(column string, available []string) error {
	return &Error{
		Kind: KindInvalidColumn,
		Msg:  fmt.Sprintf("invalid column %q, available: [%s]", column, strings.Join(available, ", ")),
	}
}

func RemoteAccess(err error, format string, args ...interface{}) error {
	return &Error{Kind: KindRemoteAccess, Msg: fmt.Sprintf(format, args...), Err: err}
}

func Validation(format string, args ...interface{}) error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

func WriteConflict(err error, format string, args ...interface{}) error {
	return &Error{Kind: KindWriteConflict, Msg: fmt.Sprintf(format, args...), Err: err}
}

func Conflict(format string, args ...interface{}) error {
	return &Error{Kind: KindConflict, Msg: fmt.Sprintf(format, args...)}
}

func Configuration(missing ...string) error {
	return &Error{
		Kind: KindConfiguration,
		Msg:  "missing required configuration: " + strings.Join(missing, ", "),
	}
}
