package productservice

import (
	"errors"
	"net/http"
)

// Kind identifies why a store operation was rejected.
type Kind int

const (
	KindInvalidPayload Kind = iota + 1
	KindNegativePrice
	KindNotFound
	KindIDImmutable
	KindUnsupported
)

func (k Kind) String() string {
	switch k {
	case KindInvalidPayload:
		return "invalid payload"
	case KindNegativePrice:
		return "negative price"
	case KindNotFound:
		return "not found"
	case KindIDImmutable:
		return "id immutable"
	case KindUnsupported:
		return "unsupported"
	default:
		return "unknown"
	}
}

// StatusCode returns the HTTP status the product API reports for this kind. IDImmutable and
// Unsupported share 404 with NotFound; that is the documented contract.
func (k Kind) StatusCode() int {
	switch k {
	case KindInvalidPayload, KindNegativePrice:
		return http.StatusBadRequest
	case KindNotFound, KindIDImmutable, KindUnsupported:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// Error is returned by Store operations and by payload decoding. Nothing has been changed in the
// store when one is returned.
type Error struct {
	Kind    Kind
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// StatusCode returns the HTTP status code for this error.
func (e *Error) StatusCode() int {
	return e.Kind.StatusCode()
}

var (
	errUnknownProduct = &Error{Kind: KindNotFound, Message: "product unknown"}
	errInvalidJSON    = &Error{Kind: KindInvalidPayload, Message: "invalid json"}
	errNegativePrice  = &Error{Kind: KindNegativePrice, Message: "price cannot be negative"}
	errIDImmutable    = &Error{Kind: KindIDImmutable, Message: "id cannot be patched"}
	errUnsupported    = &Error{Kind: KindUnsupported, Message: "method not allowed"}
)

// KindOf returns the Kind of err, or 0 if err is not an *Error.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return 0
}
