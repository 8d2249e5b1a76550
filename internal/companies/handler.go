package companies

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/biztime/biztime/internal/platform/httpx"
)

// CompanyService is the service surface the handler depends on.
type CompanyService interface {
	List(ctx context.Context) ([]Company, error)
	Get(ctx context.Context, code string) (*CompanyDetail, []CompanyInvoice, error)
	Create(ctx context.Context, req CreateCompanyRequest) (*Company, error)
	Update(ctx context.Context, code string, req UpdateCompanyRequest) (*Company, error)
	Delete(ctx context.Context, code string) error
}

type Handler struct {
	logger  *slog.Logger
	service CompanyService
}

func NewHandler(logger *slog.Logger, service CompanyService) *Handler {
	return &Handler{logger: logger, service: service}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	companies, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list companies failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, ListCompaniesResponse{Companies: companies})
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	detail, invoices, err := h.service.Get(r.Context(), code)
	if err != nil {
		h.logger.Error("get company failed", slog.Any("error", err), slog.String("code", code))
		httpx.RespondError(w, err)
		return
	}
	if invoices == nil {
		invoices = []CompanyInvoice{}
	}
	httpx.JSON(w, http.StatusOK, CompanyDetailResponse{
		Companies: *detail,
		Invoices:  [][]CompanyInvoice{invoices},
	})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateCompanyRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}

	company, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.logger.Error("create company failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, CreateCompanyResponse{Company: *company})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	var req UpdateCompanyRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}

	company, err := h.service.Update(r.Context(), code, req)
	if err != nil {
		h.logger.Error("update company failed", slog.Any("error", err), slog.String("code", code))
		httpx.RespondError(w, err)
		return
	}
	// The update response is the bare row, not an envelope.
	httpx.JSON(w, http.StatusOK, company)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	code := chi.URLParam(r, "code")

	if err := h.service.Delete(r.Context(), code); err != nil {
		h.logger.Error("delete company failed", slog.Any("error", err), slog.String("code", code))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, httpx.StatusResponse{Status: "deleted"})
}
