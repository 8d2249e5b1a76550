package invoices

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAmountAcceptsNumber(t *testing.T) {
	var req CreateInvoiceRequest
	require.NoError(t, json.Unmarshal([]byte(`{"comp_code":"apple","amt":100}`), &req))
	require.NotNil(t, req.Amt)
	assert.Equal(t, Amount(100), *req.Amt)
}

func TestAmountAcceptsNumericString(t *testing.T) {
	var req UpdateInvoiceRequest
	require.NoError(t, json.Unmarshal([]byte(`{"amt":"5000","paid":true}`), &req))
	require.NotNil(t, req.Amt)
	assert.Equal(t, Amount(5000), *req.Amt)
	assert.True(t, req.Paid)
}

func TestAmountRejectsNonNumericString(t *testing.T) {
	var req UpdateInvoiceRequest
	err := json.Unmarshal([]byte(`{"amt":"lots"}`), &req)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not numeric")
}

func TestAmountRejectsOtherTypes(t *testing.T) {
	var req CreateInvoiceRequest
	require.Error(t, json.Unmarshal([]byte(`{"comp_code":"apple","amt":[1]}`), &req))
}
