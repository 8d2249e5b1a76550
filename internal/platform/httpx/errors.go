package httpx

import (
	"errors"
	"net/http"
)

// Sentinel errors for the domain layer.
var (
	ErrNotFound   = errors.New("resource not found")
	ErrValidation = errors.New("validation failed")
)

// apiError is the inner object of the uniform error envelope.
type apiError struct {
	Message string `json:"message"`
	Status  int    `json:"status"`
}

// errorEnvelope is the fixed-shape failure body:
// {"error":{"message":...,"status":...},"message":...}.
type errorEnvelope struct {
	Error   apiError `json:"error"`
	Message string   `json:"message"`
}

// RespondError serializes any failure into the error envelope. Identifier
// lookup misses map to 404; everything else, including constraint and
// validation failures, defaults to 500 with the underlying message.
func RespondError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, ErrNotFound) {
		status = http.StatusNotFound
	}
	JSON(w, status, errorEnvelope{
		Error:   apiError{Message: err.Error(), Status: status},
		Message: err.Error(),
	})
}
