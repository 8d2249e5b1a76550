package companies

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"

	"github.com/biztime/biztime/internal/platform/httpx"
)

var validate = validator.New()

// Service implements the company operations on top of the repository.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]Company, error) {
	return s.repo.List(ctx)
}

// Get returns the company joined with its industry name plus the ordered
// sequence of the company's invoices.
func (s *Service) Get(ctx context.Context, code string) (*CompanyDetail, []CompanyInvoice, error) {
	detail, err := s.repo.GetDetail(ctx, code)
	if err != nil {
		return nil, nil, fmt.Errorf("get company: %w", err)
	}

	invoices, err := s.repo.ListInvoices(ctx, code)
	if err != nil {
		return nil, nil, fmt.Errorf("list company invoices: %w", err)
	}
	return detail, invoices, nil
}

// Create inserts the company as given. A duplicate code is not pre-checked;
// the constraint violation propagates from the store.
func (s *Service) Create(ctx context.Context, req CreateCompanyRequest) (*Company, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", httpx.ErrValidation, err)
	}
	company, err := s.repo.Create(ctx, req.Code, req.Name, req.Description)
	if err != nil {
		return nil, fmt.Errorf("create company: %w", err)
	}
	return company, nil
}

// Update normalizes the path code through the slugifier before lookup, then
// replaces name and description. The slug pass is a no-op unless the caller's
// code deviates from slug form.
func (s *Service) Update(ctx context.Context, code string, req UpdateCompanyRequest) (*Company, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%w: %v", httpx.ErrValidation, err)
	}

	code = Slugify(code)
	if _, err := s.repo.Get(ctx, code); err != nil {
		return nil, fmt.Errorf("get company: %w", err)
	}

	company, err := s.repo.Update(ctx, code, req.Name, req.Description)
	if err != nil {
		return nil, fmt.Errorf("update company: %w", err)
	}
	return company, nil
}

// Delete verifies existence before deleting. The check and the delete are not
// atomic; a concurrent delete surfaces as a generic persistence error.
func (s *Service) Delete(ctx context.Context, code string) error {
	if _, err := s.repo.Get(ctx, code); err != nil {
		return fmt.Errorf("get company: %w", err)
	}
	if err := s.repo.Delete(ctx, code); err != nil {
		return fmt.Errorf("delete company: %w", err)
	}
	return nil
}
