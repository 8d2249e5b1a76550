// Package httpx provides HTTP response utilities shared by all handlers.
package httpx

import (
	"encoding/json"
	"net/http"
)

// StatusResponse is the body returned by delete endpoints.
type StatusResponse struct {
	Status string `json:"status"`
}

// JSON sends a JSON response with the given status code.
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

// DecodeJSON decodes JSON request body into the target struct.
func DecodeJSON(r *http.Request, target any) error {
	return json.NewDecoder(r.Body).Decode(target)
}
