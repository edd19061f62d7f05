package errs

import (
	"errors"
	"fmt"
)

// Kind classifies an application error so the transport layer can map it
// to a status code without inspecting message text.
type Kind int

const (
	KindValidation Kind = iota + 1
	KindAuthentication
	KindNotFound
	KindDelivery
)

// Error is a typed application error raised by the service layer.
type Error struct {
	Kind    Kind
	Message string
	cause   error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.cause
}

// Validation reports malformed or conflicting input, caught before any
// state-changing side effect.
func Validation(msg string) error {
	return &Error{Kind: KindValidation, Message: msg}
}

// Authentication reports an identity or credential failure. Messages are
// deliberately generic where specificity would aid an attacker.
func Authentication(msg string) error {
	return &Error{Kind: KindAuthentication, Message: msg}
}

// NotFound reports a missing resource, or one that exists but is not owned
// by the caller.
func NotFound(resource string, key interface{}) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf("%s %v not found", resource, key)}
}

// Delivery reports a notifier failure. The wrapped cause is preserved for
// logging but never exposed in the message.
func Delivery(msg string, cause error) error {
	return &Error{Kind: KindDelivery, Message: msg, cause: cause}
}

func isKind(err error, k Kind) bool {
	var e *Error
	return errors.As(err, &e) && e.Kind == k
}

func IsValidation(err error) bool     { return isKind(err, KindValidation) }
func IsAuthentication(err error) bool { return isKind(err, KindAuthentication) }
func IsNotFound(err error) bool       { return isKind(err, KindNotFound) }
func IsDelivery(err error) bool       { return isKind(err, KindDelivery) }
