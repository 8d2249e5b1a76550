package industries

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/biztime/biztime/internal/platform/httpx"
)

// IndustryService is the service surface the handler depends on.
type IndustryService interface {
	List(ctx context.Context) ([]IndustryCompanies, error)
	Create(ctx context.Context, req CreateIndustryRequest) (*Industry, error)
}

type Handler struct {
	logger  *slog.Logger
	service IndustryService
}

func NewHandler(logger *slog.Logger, service IndustryService) *Handler {
	return &Handler{logger: logger, service: service}
}

// List responds with the bare grouped array, not an envelope.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	v, err, _ := singleflightList(r.Context(), "industries", func(ctx context.Context) (interface{}, error) {
		return h.service.List(ctx)
	})
	if err != nil {
		h.logger.Error("list industries failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, v.([]IndustryCompanies))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateIndustryRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.RespondError(w, err)
		return
	}

	ind, err := h.service.Create(r.Context(), req)
	if err != nil {
		h.logger.Error("create industry failed", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, CreateIndustryResponse{Industry: *ind})
}
