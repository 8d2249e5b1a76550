package invoices

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/biztime/biztime/internal/platform/httpx"
)

// Repository defines the persistence gateway for invoices.
type Repository interface {
	List(ctx context.Context) ([]Invoice, error)
	Get(ctx context.Context, id int64) (*Invoice, error)
	GetCompany(ctx context.Context, code string) (*InvoiceCompany, error)
	Create(ctx context.Context, compCode string, amt float64) (*Invoice, error)
	Update(ctx context.Context, id int64, amt float64, paid bool, paidDate *time.Time) (*Invoice, error)
	Delete(ctx context.Context, id int64) error
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

func (r *repository) List(ctx context.Context) ([]Invoice, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, comp_code, amt, paid, add_date, paid_date
		FROM invoices
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invoices := make([]Invoice, 0)
	for rows.Next() {
		var inv Invoice
		if err := rows.Scan(&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.AddDate, &inv.PaidDate); err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}

func (r *repository) Get(ctx context.Context, id int64) (*Invoice, error) {
	var inv Invoice
	err := r.db.QueryRow(ctx, `
		SELECT id, comp_code, amt, paid, add_date, paid_date
		FROM invoices
		WHERE id = $1
	`, id).Scan(&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.AddDate, &inv.PaidDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, httpx.ErrNotFound
		}
		return nil, err
	}
	return &inv, nil
}

func (r *repository) GetCompany(ctx context.Context, code string) (*InvoiceCompany, error) {
	var c InvoiceCompany
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

// Create relies on the store defaults for paid, add_date and paid_date. A
// comp_code that violates the foreign key propagates unmodified.
func (r *repository) Create(ctx context.Context, compCode string, amt float64) (*Invoice, error) {
	var inv Invoice
	err := r.db.QueryRow(ctx, `
		INSERT INTO invoices (comp_code, amt)
		VALUES ($1, $2)
		RETURNING id, comp_code, amt, paid, add_date, paid_date
	`, compCode, amt).Scan(&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.AddDate, &inv.PaidDate)
	if err != nil {
		return nil, err
	}
	return &inv, nil
}

func (r *repository) Update(ctx context.Context, id int64, amt float64, paid bool, paidDate *time.Time) (*Invoice, error) {
	var inv Invoice
	err := r.db.QueryRow(ctx, `
		UPDATE invoices
		SET amt = $1, paid = $2, paid_date = $3
		WHERE id = $4
		RETURNING id, comp_code, amt, paid, add_date, paid_date
	`, amt, paid, paidDate, id).Scan(&inv.ID, &inv.CompCode, &inv.Amt, &inv.Paid, &inv.AddDate, &inv.PaidDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, httpx.ErrNotFound
		}
		return nil, err
	}
	return &inv, nil
}

func (r *repository) Delete(ctx context.Context, id int64) error {
	_, err := r.db.Exec(ctx, `DELETE FROM invoices WHERE id = $1`, id)
	return err
}
