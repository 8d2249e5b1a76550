package invoices

import (
	"context"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/biztime/biztime/internal/platform/httpx"
)

var validate = validator.New()

// Service implements the invoice operations on top of the repository.
type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

func (s *Service) List(ctx context.Context) ([]Invoice, error) {
	return s.repo.List(ctx)
}

// Get returns the invoice with the owning company embedded. A dangling
// comp_code is treated as a lookup miss.
func (s *Service) Get(ctx context.Context, id int64) (*InvoiceDetail, error) {
	inv, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get invoice: %w", err)
	}

	company, err := s.repo.GetCompany(ctx, inv.CompCode)
	if err != nil {
		return nil, fmt.Errorf("get invoice company: %w", err)
	}

	return &InvoiceDetail{
		ID:       inv.ID,
		Amt:      inv.Amt,
		Paid:     inv.Paid,
		AddDate:  inv.AddDate,
		PaidDate: inv.PaidDate,
		Company:  *company,
	}, nil
}

// Create inserts the invoice unpaid with a store-assigned add_date.
func (s *Service) Create(ctx context.Context, req CreateInvoiceRequest) (*Invoice, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", httpx.ErrValidation, err)
	}
	inv, err := s.repo.Create(ctx, req.CompCode, float64(*req.Amt))
	if err != nil {
		return nil, fmt.Errorf("create invoice: %w", err)
	}
	return inv, nil
}

// Update replaces amt and paid after confirming the invoice exists. A true
// paid always re-stamps paid_date to now, not only on the false-to-true
// transition; a false paid clears it.
func (s *Service) Update(ctx context.Context, id int64, req UpdateInvoiceRequest) (*Invoice, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", httpx.ErrValidation, err)
	}

	if _, err := s.repo.Get(ctx, id); err != nil {
		return nil, fmt.Errorf("get invoice: %w", err)
	}

	var paidDate *time.Time
	if req.Paid {
		now := s.now()
		paidDate = &now
	}

	inv, err := s.repo.Update(ctx, id, float64(*req.Amt), req.Paid, paidDate)
	if err != nil {
		return nil, fmt.Errorf("update invoice: %w", err)
	}
	return inv, nil
}

// Delete verifies existence before deleting.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return fmt.Errorf("get invoice: %w", err)
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete invoice: %w", err)
	}
	return nil
}
