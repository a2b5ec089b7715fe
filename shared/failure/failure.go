package failure

import (
	"errors"
	"net/http"
)

// Failure is an error that carries the HTTP status it should be answered with.
// Services return failures for every rejected precondition; anything else
// reaching the transport is an internal error.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var (
	InvalidFromParam = &Failure{Code: http.StatusBadRequest, Message: "from must not be negative"}
	InvalidSizeParam = &Failure{Code: http.StatusBadRequest, Message: "size must be positive"}
	InvalidAPIKey    = &Failure{Code: http.StatusForbidden, Message: "invalid api key"}
)

func (e *Failure) Error() string {
	return e.Message
}

// BadRequest wraps err as a 400. A nil err stays nil.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// Unauthorized is used when no actor can be resolved from the request.
func Unauthorized(msg string) error {
	return &Failure{
		Code:    http.StatusUnauthorized,
		Message: msg,
	}
}

func NotFound(msg string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: msg,
	}
}

// NotAllowed rejects an actor that may not act on the resource, or a booking
// whose status does not allow the requested transition.
func NotAllowed(msg string) error {
	return &Failure{
		Code:    http.StatusForbidden,
		Message: msg,
	}
}

// GetCode returns the status of the first Failure in the chain, or 500.
func GetCode(err error) int {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}
