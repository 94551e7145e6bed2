package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	"shiphub/internal/apperr"
	"shiphub/internal/domain"
)

// CompanyRepo represents company repository.
type CompanyRepo struct{ db *pgxpool.Pool }

// NewCompanyRepo creates a new CompanyRepo.
func NewCompanyRepo(db *pgxpool.Pool) *CompanyRepo { return &CompanyRepo{db: db} }

const companyColumns = `id, name, phone, status, rate::text`

func scanCompany(row pgx.Row) (*domain.Company, error) {
	var (
		c    domain.Company
		rate string
	)
	if err := row.Scan(&c.ID, &c.Name, &c.Phone, &c.Status, &rate); err != nil {
		return nil, err
	}
	d, err := decimal.NewFromString(rate)
	if err != nil {
		return nil, fmt.Errorf("company %s rate %q: %w", c.ID, rate, err)
	}
	c.Rate = d
	return &c, nil
}

// Get returns the company by id, or nil when it does not exist.
func (r *CompanyRepo) Get(ctx context.Context, id string) (*domain.Company, error) {
	c, err := scanCompany(r.db.QueryRow(ctx,
		`SELECT `+companyColumns+` FROM companies WHERE id = $1`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get company %s: %w", id, err)
	}
	return c, nil
}

// List returns companies ordered by name. If limit/offset are nil, returns the full list.
func (r *CompanyRepo) List(ctx context.Context, limit, offset *int) ([]domain.Company, error) {
	q, args := paginate(`SELECT `+companyColumns+` FROM companies ORDER BY name, id`, nil, limit, offset)

	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list companies: %w", err)
	}
	defer rows.Close()

	capacity := 0
	if limit != nil && *limit > 0 {
		capacity = *limit
	}
	out := make([]domain.Company, 0, capacity)
	for rows.Next() {
		c, err := scanCompany(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *c)
	}
	return out, rows.Err()
}

// Create inserts a company under a fresh id and returns it.
func (r *CompanyRepo) Create(ctx context.Context, c *domain.Company) (string, error) {
	id := uuid.NewString()
	_, err := r.db.Exec(ctx,
		`INSERT INTO companies (id, name, phone, status, rate) VALUES ($1, $2, $3, $4, $5::text::numeric)`,
		id, c.Name, c.Phone, string(c.Status), c.Rate.String())
	if err != nil {
		if IsDuplicate(err) {
			return "", apperr.ErrConflict
		}
		return "", fmt.Errorf("create company: %w", err)
	}
	return id, nil
}

// UpdatePartial applies a partial update and reports whether a row was affected.
func (r *CompanyRepo) UpdatePartial(ctx context.Context, u domain.PartialCompanyUpdate) (bool, error) {
	var status, rate *string
	if u.Status != nil {
		s := string(*u.Status)
		status = &s
	}
	if u.Rate != nil {
		s := u.Rate.String()
		rate = &s
	}

	ct, err := r.db.Exec(ctx, `
        UPDATE companies
        SET
            name       = COALESCE($2, name),
            phone      = COALESCE($3, phone),
            status     = COALESCE($4, status),
            rate       = COALESCE($5::text::numeric, rate),
            updated_at = now()
        WHERE id = $1
    `, u.ID, u.Name, u.Phone, status, rate)
	if err != nil {
		if IsDuplicate(err) {
			return false, apperr.ErrConflict
		}
		return false, fmt.Errorf("update company %s: %w", u.ID, err)
	}
	return ct.RowsAffected() > 0, nil
}
