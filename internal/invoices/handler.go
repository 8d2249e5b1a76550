package invoices

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/biztime/biztime/internal/platform/httpx"
)

// InvoiceService is the service surface the handler depends on.
type InvoiceService interface {
	List(ctx context.Context) ([]Invoice, error)
	Get(ctx context.Context, id int64) (*InvoiceDetail, error)
	Create(ctx context.Context, req CreateInvoiceRequest) (*Invoice, error)
	Update(ctx context.Context, id int64, req UpdateInvoiceRequest) (*Invoice, error)
	Delete(ctx context.Context, id int64) error
}

type Handler struct {
	logger  *slog.Logger
	service InvoiceService
}

func NewHandler(logger *slog.Logger, service InvoiceService) *Handler {
	return &Handler{logger: logger, service: service}
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	invoices, err := h.service.List(r.Context())
	if err != nil {
		h.logger.Error("list invoices failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, ListInvoicesResponse{Invoices: invoices})
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	id, err := invoiceID(r)
	if err != nil {
		httpx.RespondError(w, httpx.ErrNotFound)
		return
	}

	detail, err := h.service.Get(r.Context(), id)
	if err != nil {
		h.logger.Error("get invoice failed", slog.Any("error", err), slog.Int64("id", id))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, InvoiceDetailResponse{Invoice: *detail})
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateInvoiceRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}

	inv, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.logger.Error("create invoice failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, InvoiceResponse{Invoice: *inv})
}

func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := invoiceID(r)
	if err != nil {
		httpx.RespondError(w, httpx.ErrNotFound)
		return
	}

	var req UpdateInvoiceRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}

	inv, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		h.logger.Error("update invoice failed", slog.Any("error", err), slog.Int64("id", id))
		httpx.RespondError(w, err)
		return
	}
	// Updates respond 201; existing clients expect it.
	httpx.JSON(w, http.StatusCreated, InvoiceResponse{Invoice: *inv})
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := invoiceID(r)
	if err != nil {
		httpx.RespondError(w, httpx.ErrNotFound)
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		h.logger.Error("delete invoice failed", slog.Any("error", err), slog.Int64("id", id))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, httpx.StatusResponse{Status: "deleted"})
}

// invoiceID parses the id route parameter. A non-numeric id can never match
// an invoice, so callers report it as a lookup miss.
func invoiceID(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
