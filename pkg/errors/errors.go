package errors

import (
	"errors"
	"fmt"
)

// Kind classifies a failure for the single recovery point in the router.
type Kind string

const (
	KindUnknown      Kind = ""
	KindAuth         Kind = "auth"
	KindNotFound     Kind = "not_found"
	KindAccessDenied Kind = "access_denied"
	KindStorage      Kind = "storage"
	KindRemote       Kind = "remote"
)

// Sentinels for errors.Is checks; every *Error of a kind matches its sentinel.
var (
	ErrAuth         = errors.New("session unusable")
	ErrNotFound     = errors.New("not found")
	ErrAccessDenied = errors.New("access denied")
	ErrStorage      = errors.New("local storage failure")
	ErrRemote       = errors.New("remote platform failure")
)

var sentinels = map[Kind]error{
	KindAuth:         ErrAuth,
	KindNotFound:     ErrNotFound,
	KindAccessDenied: ErrAccessDenied,
	KindStorage:      ErrStorage,
	KindRemote:       ErrRemote,
}

// Error represents a classified error
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

// Error returns the error message
func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

// Unwrap returns the wrapped error
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches the sentinel of the error's kind.
func (e *Error) Is(target error) bool {
	sentinel, ok := sentinels[e.Kind]
	return ok && sentinel == target
}

// New creates a classified error without a cause.
func New(kind Kind, message string) error {
	return &Error{
		Kind:    kind,
		Message: message,
	}
}

// Wrap classifies err. A nil err stays nil.
func Wrap(err error, kind Kind, message string) error {
	if err == nil {
		return nil
	}
	return &Error{
		Kind:    kind,
		Message: message,
		Err:     err,
	}
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}

// KindOf returns the outermost kind found in err's chain.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	for kind, sentinel := range sentinels {
		if errors.Is(err, sentinel) {
			return kind
		}
	}
	return KindUnknown
}

func IsAuth(err error) bool {
	return errors.Is(err, ErrAuth)
}

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsAccessDenied(err error) bool {
	return errors.Is(err, ErrAccessDenied)
}

func IsStorage(err error) bool {
	return errors.Is(err, ErrStorage)
}

func IsRemote(err error) bool {
	return errors.Is(err, ErrRemote)
}
