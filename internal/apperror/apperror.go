package apperror

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// Kind classifies request-scoped failures so the HTTP layer can map them
// to status codes without string matching.
type Kind int

const (
	KindUnknown Kind = iota
	KindNotFound
	KindAlreadyFixed
	KindStaleOffset
	KindUpstream
	KindValidation
	KindUnauthorized
)

type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NotFound(format string, args ...interface{}) error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func AlreadyFixed(format string, args ...interface{}) error {
	return &Error{Kind: KindAlreadyFixed, Message: fmt.Sprintf(format, args...)}
}

// StaleOffset reports that an issue's recorded span no longer fits inside its
// revision's current content. Surfaced as a conflict, never as an index fault.
func StaleOffset(format string, args ...interface{}) error {
	return &Error{Kind: KindStaleOffset, Message: fmt.Sprintf(format, args...)}
}

func Upstream(err error, format string, args ...interface{}) error {
	return &Error{Kind: KindUpstream, Message: fmt.Sprintf(format, args...), Err: err}
}

func Validation(format string, args ...interface{}) error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func Unauthorized(format string, args ...interface{}) error {
	return &Error{Kind: KindUnauthorized, Message: fmt.Sprintf(format, args...)}
}

func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}

// StatusCode maps an error kind to the HTTP status the central error handler
// responds with.
func StatusCode(err error) int {
	switch KindOf(err) {
	case KindNotFound:
		return fiber.StatusNotFound
	case KindAlreadyFixed, KindValidation:
		return fiber.StatusBadRequest
	case KindStaleOffset:
		return fiber.StatusConflict
	case KindUpstream:
		return fiber.StatusBadGateway
	case KindUnauthorized:
		return fiber.StatusUnauthorized
	default:
		return fiber.StatusInternalServerError
	}
}
