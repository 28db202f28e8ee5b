package client

import (
	"errors"
	"fmt"
	"net/http"

	"gin-user-rpc/pkg/contract"
)

// StatusError means the service answered with a non-success status.
// Body holds the decoded error body when the service sent one.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       contract.ErrorBody
}

func (e *StatusError) Error() string {
	msg := e.Body.Error
	if msg == "" {
		msg = http.StatusText(e.StatusCode)
	}
	return fmt.Sprintf("%s %s: %d %s", e.Method, e.Path, e.StatusCode, msg)
}

// TransportError means no usable response came back: the request could not
// be sent, the connection failed, or the body could not be decoded.
type TransportError struct {
	Method string
	Path   string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Path, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// IsNotFound reports whether err is a 404 from the service.
func IsNotFound(err error) bool { return hasStatus(err, http.StatusNotFound) }

// IsValidation reports whether the service rejected the input shape.
func IsValidation(err error) bool { return hasStatus(err, http.StatusBadRequest) }

// IsTransport reports whether err never got a usable answer from the service.
func IsTransport(err error) bool {
	var te *TransportError
	return errors.As(err, &te)
}

func hasStatus(err error, code int) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == code
}
