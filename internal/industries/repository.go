package industries

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repository defines the persistence gateway for industries.
type Repository interface {
	List(ctx context.Context) ([]IndustryCompanyRow, error)
	Create(ctx context.Context, industry, code *string) (*Industry, error)
}

type dbtx interface {
	Exec(context.Context, string, ...interface{}) (pgconn.CommandTag, error)
	Query(context.Context, string, ...interface{}) (pgx.Rows, error)
	QueryRow(context.Context, string, ...interface{}) pgx.Row
}

type repository struct {
	db dbtx
}

// NewRepository builds a Repository backed by the given connection pool.
func NewRepository(pool *pgxpool.Pool) Repository {
	return &repository{db: pool}
}

// List returns the flat industry/company-code pairs. The left join keeps
// industries without links, with a NULL comp_code.
func (r *repository) List(ctx context.Context) ([]IndustryCompanyRow, error) {
	rows, err := r.db.Query(ctx, `
		SELECT i.industry, ci.comp_code
		FROM industries AS i
		LEFT JOIN companies_industries AS ci ON i.code = ci.industry_code
		ORDER BY i.code, ci.comp_code
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make([]IndustryCompanyRow, 0)
	for rows.Next() {
		var row IndustryCompanyRow
		if err := rows.Scan(&row.Industry, &row.CompCode); err != nil {
			return nil, err
		}
		result = append(result, row)
	}
	return result, rows.Err()
}

// Create passes the fields through as given; a missing field becomes NULL
// and the store's constraints decide.
func (r *repository) Create(ctx context.Context, industry, code *string) (*Industry, error) {
	var ind Industry
	err := r.db.QueryRow(ctx, `
		INSERT INTO industries (industry, code)
		VALUES ($1, $2)
		RETURNING industry, code
	`, industry, code).Scan(&ind.Industry, &ind.Code)
	if err != nil {
		return nil, err
	}
	return &ind, nil
}
