package httpx

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type envelope struct {
	Error struct {
		Message string `json:"message"`
		Status  int    `json:"status"`
	} `json:"error"`
	Message string `json:"message"`
}

func TestRespondErrorNotFound(t *testing.T) {
	rr := httptest.NewRecorder()
	RespondError(rr, fmt.Errorf("company apple: %w", ErrNotFound))

	require.Equal(t, 404, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))

	var body envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, 404, body.Error.Status)
	assert.Equal(t, "company apple: resource not found", body.Error.Message)
	assert.Equal(t, body.Error.Message, body.Message)
}

func TestRespondErrorDefaultsToInternal(t *testing.T) {
	rr := httptest.NewRecorder()
	RespondError(rr, errors.New("duplicate key value violates unique constraint"))

	require.Equal(t, 500, rr.Code)

	var body envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, 500, body.Error.Status)
	assert.Equal(t, "duplicate key value violates unique constraint", body.Message)
}

func TestRespondErrorValidationIsInternal(t *testing.T) {
	rr := httptest.NewRecorder()
	RespondError(rr, fmt.Errorf("%w: missing name", ErrValidation))

	// Validation failures are deliberately not downgraded to 400.
	require.Equal(t, 500, rr.Code)
}
