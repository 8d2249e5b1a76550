package companies

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/biztime/biztime/internal/platform/httpx"
)

// Repository defines the persistence gateway for companies.
type Repository interface {
	List(ctx context.Context) ([]Company, error)
	Get(ctx context.Context, code string) (*Company, error)
	GetDetail(ctx context.Context, code string) (*CompanyDetail, error)
	ListInvoices(ctx context.Context, code string) ([]CompanyInvoice, error)
	Create(ctx context.Context, code, name string, description *string) (*Company, error)
	Update(ctx context.Context, code, name string, description *string) (*Company, error)
	Delete(ctx context.Context, code string) error
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

func (r *repository) List(ctx context.Context) ([]Company, error) {
	rows, err := r.db.Query(ctx, `
		SELECT code, name, description
		FROM companies
		ORDER BY code
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	companies := make([]Company, 0)
	for rows.Next() {
		var c Company
		if err := rows.Scan(&c.Code, &c.Name, &c.Description); err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

func (r *repository) Get(ctx context.Context, code string) (*Company, error) {
	var c Company
	err := r.db.QueryRow(ctx, `
		SELECT code, name, description
		FROM companies
		WHERE code = $1
	`, code).Scan(&c.Code, &c.Name, &c.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, httpx.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

// GetDetail joins the company with its linked industries. When a company
// carries several links the first industry in code order wins; no link
// leaves Industry nil.
func (r *repository) GetDetail(ctx context.Context, code string) (*CompanyDetail, error) {
	var d CompanyDetail
	err := r.db.QueryRow(ctx, `
		SELECT c.code, c.name, c.description, i.industry
		FROM companies AS c
		LEFT JOIN companies_industries AS ci ON c.code = ci.comp_code
		LEFT JOIN industries AS i ON ci.industry_code = i.code
		WHERE c.code = $1
		ORDER BY i.code
		LIMIT 1
	`, code).Scan(&d.Code, &d.Name, &d.Description, &d.Industry)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, httpx.ErrNotFound
		}
		return nil, err
	}
	return &d, nil
}

func (r *repository) ListInvoices(ctx context.Context, code string) ([]CompanyInvoice, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, comp_code, amt, paid, add_date, paid_date
		FROM invoices
		WHERE comp_code = $1
		ORDER BY id
	`, code)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invoices := make([]CompanyInvoice, 0)
	for rows.Next() {
		var inv CompanyInvoice
		if err := rows.Scan(&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.AddDate, &inv.PaidDate); err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}

func (r *repository) Create(ctx context.Context, code, name string, description *string) (*Company, error) {
	var c Company
	err := r.db.QueryRow(ctx, `
		INSERT INTO companies (code, name, description)
		VALUES ($1, $2, $3)
		RETURNING code, name, description
	`, code, name, description).Scan(&c.Code, &c.Name, &c.Description)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *repository) Update(ctx context.Context, code, name string, description *string) (*Company, error) {
	var c Company
	err := r.db.QueryRow(ctx, `
		UPDATE companies
		SET name = $1, description = $2
		WHERE code = $3
		RETURNING code, name, description
	`, name, description, code).Scan(&c.Code, &c.Name, &c.Description)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, httpx.ErrNotFound
		}
		return nil, err
	}
	return &c, nil
}

func (r *repository) Delete(ctx context.Context, code string) error {
	_, err := r.db.Exec(ctx, `DELETE FROM companies WHERE code = $1`, code)
	return err
}
