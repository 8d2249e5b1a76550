package companies

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/biztime/biztime/internal/platform/httpx"
)

type stubCompanyService struct {
	companies []Company
	detail    *CompanyDetail
	invoices  []CompanyInvoice
	company   *Company
	err       error

	lastUpdateCode string
}

func (s *stubCompanyService) List(ctx context.Context) ([]Company, error) {
	return s.companies, s.err
}

func (s *stubCompanyService) Get(ctx context.Context, code string) (*CompanyDetail, []CompanyInvoice, error) {
	if s.err != nil {
		return nil, nil, s.err
	}
	return s.detail, s.invoices, nil
}

func (s *stubCompanyService) Create(ctx context.Context, req CreateCompanyRequest) (*Company, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &Company{Code: req.Code, Name: req.Name, Description: req.Description}, nil
}

func (s *stubCompanyService) Update(ctx context.Context, code string, req UpdateCompanyRequest) (*Company, error) {
	s.lastUpdateCode = code
	if s.err != nil {
		return nil, s.err
	}
	return &Company{Code: code, Name: req.Name, Description: req.Description}, nil
}

func (s *stubCompanyService) Delete(ctx context.Context, code string) error {
	return s.err
}

func newTestRouter(t *testing.T, service CompanyService) http.Handler {
	t.Helper()
	handler := NewHandler(slog.New(slog.NewTextHandler(io.Discard, nil)), service)
	r := chi.NewRouter()
	handler.MountRoutes(r)
	return r
}

func TestListCompaniesEnvelope(t *testing.T) {
	service := &stubCompanyService{companies: []Company{{Code: "apple", Name: "Apple Computer", Description: strptr("Maker of OSX.")}}}
	router := newTestRouter(t, service)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/companies", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	var body ListCompaniesResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	require.Len(t, body.Companies, 1)
	assert.Equal(t, "apple", body.Companies[0].Code)
}

func TestShowCompanyEnvelope(t *testing.T) {
	service := &stubCompanyService{
		detail:   &CompanyDetail{Code: "apple", Name: "Apple Computer", Description: strptr("Maker of OSX.")},
		invoices: []CompanyInvoice{{ID: 1, CompCode: "apple", Amt: 100}},
	}
	router := newTestRouter(t, service)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/companies/apple", nil))

	require.Equal(t, http.StatusOK, rr.Code)

	body := rr.Body.String()
	// The detail envelope keeps the plural key and the double-nested
	// invoices array of the wire contract.
	assert.Contains(t, body, `"companies":{`)
	assert.Contains(t, body, `"invoices":[[`)
	assert.Contains(t, body, `"industry":null`)

	var decoded CompanyDetailResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &decoded))
	require.Len(t, decoded.Invoices, 1)
	require.Len(t, decoded.Invoices[0], 1)
	assert.Equal(t, "apple", decoded.Invoices[0][0].CompCode)
}

func TestShowCompanyNotFound(t *testing.T) {
	service := &stubCompanyService{err: httpx.ErrNotFound}
	router := newTestRouter(t, service)

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/companies/nope", nil))

	require.Equal(t, http.StatusNotFound, rr.Code)

	var body struct {
		Error struct {
			Message string `json:"message"`
			Status  int    `json:"status"`
		} `json:"error"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, http.StatusNotFound, body.Error.Status)
	assert.NotEmpty(t, body.Message)
}

func TestCreateCompanyEnvelope(t *testing.T) {
	router := newTestRouter(t, &stubCompanyService{})

	req := httptest.NewRequest(http.MethodPost, "/companies",
		strings.NewReader(`{"code":"micr","name":"Microsoft","description":"Developed Windows OS"}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusCreated, rr.Code)

	var body CreateCompanyResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "micr", body.Company.Code)
	assert.Equal(t, "Microsoft", body.Company.Name)
}

func TestCreateCompanyConflictIsInternal(t *testing.T) {
	service := &stubCompanyService{err: assert.AnError}
	router := newTestRouter(t, service)

	req := httptest.NewRequest(http.MethodPost, "/companies", strings.NewReader(`{"code":"apple","name":"Apple"}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusInternalServerError, rr.Code)
}

func TestUpdateCompanyReturnsBareRow(t *testing.T) {
	service := &stubCompanyService{}
	router := newTestRouter(t, service)

	req := httptest.NewRequest(http.MethodPut, "/companies/apple",
		strings.NewReader(`{"name":"Apple Computer","description":"Developer of OSX - Success"}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "apple", service.lastUpdateCode)

	var body Company
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "apple", body.Code)
	assert.Equal(t, "Apple Computer", body.Name)
	// No envelope key around the row.
	assert.NotContains(t, rr.Body.String(), `"company"`)
}

func TestDeleteCompanyStatus(t *testing.T) {
	router := newTestRouter(t, &stubCompanyService{})

	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodDelete, "/companies/apple", nil))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":"deleted"}`, rr.Body.String())
}
