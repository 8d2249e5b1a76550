package industries

import (
	"context"
	"fmt"

	"github.com/biztime/biztime/internal/platform/httpx"
)

// Service implements the industry operations on top of the repository.
type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// List groups the flat join result by industry name in a single pass,
// preserving first-seen order. A NULL comp_code marks an industry without
// links and is excluded from the codes, leaving an empty slice. An empty
// industry set is a lookup miss.
func (s *Service) List(ctx context.Context) ([]IndustryCompanies, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list industries: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("list industries: %w", httpx.ErrNotFound)
	}

	grouped := make([]IndustryCompanies, 0)
	index := make(map[string]int)
	for _, row := range rows {
		i, ok := index[row.Industry]
		if !ok {
			i = len(grouped)
			index[row.Industry] = i
			grouped = append(grouped, IndustryCompanies{Industry: row.Industry, CompCodes: []string{}})
		}
		if row.CompCode != nil {
			grouped[i].CompCodes = append(grouped[i].CompCodes, *row.CompCode)
		}
	}
	return grouped, nil
}

// Create inserts the industry as given. Constraint violations, including a
// missing code, propagate unmodified from the store.
func (s *Service) Create(ctx context.Context, req CreateIndustryRequest) (*Industry, error) {
	ind, err := s.repo.Create(ctx, req.Industry, req.Code)
	if err != nil {
		return nil, fmt.Errorf("create industry: %w", err)
	}
	return ind, nil
}
