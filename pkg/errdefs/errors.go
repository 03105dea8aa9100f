package errdefs

import (
	"errors"
	"net/http"
)

var (
	// ErrNotFound signals that a referenced file or object does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidParameter signals a malformed input: a bad builder argument,
	// recipe or pattern.
	ErrInvalidParameter = errors.New("invalid parameter")

	// ErrUnsupported signals a request for a format or feature rxkit does not
	// provide.
	ErrUnsupported = errors.New("unsupported")
)

// HTTPStatus maps err to the HTTP status code reported by the service.
// Errors outside the categories above are internal errors.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrInvalidParameter):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnsupported):
		return http.StatusNotImplemented
	}
	return http.StatusInternalServerError
}
