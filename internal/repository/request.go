package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"shiphub/internal/apperr"
	"shiphub/internal/domain"
	"shiphub/internal/ports/requesttx"
)

// RequestRepo stores shipping requests as JSONB documents.
type RequestRepo struct {
	db *pgxpool.Pool
}

// NewRequestRepo creates a new RequestRepo.
func NewRequestRepo(db *pgxpool.Pool) *RequestRepo {
	return &RequestRepo{db: db}
}

func scanRequest(row pgx.Row) (*domain.ShippingRequest, error) {
	var (
		raw     []byte
		version int64
	)
	if err := row.Scan(&raw, &version); err != nil {
		return nil, err
	}
	var req domain.ShippingRequest
	if err := json.Unmarshal(raw, &req); err != nil {
		return nil, fmt.Errorf("decode request document: %w", err)
	}
	req.Version = version
	return &req, nil
}

func rejectedIDs(r *domain.ShippingRequest) []string {
	if r.RejectedByCompanies == nil {
		return []string{}
	}
	return r.RejectedByCompanies
}

// Create inserts a new request document with version 1.
func (r *RequestRepo) Create(ctx context.Context, req *domain.ShippingRequest) error {
	req.Version = 1
	doc, err := json.Marshal(req)
	if err != nil {
		return fmt.Errorf("encode request %s: %w", req.ID, err)
	}

	_, err = r.db.Exec(ctx, `
        INSERT INTO shipping_requests (
            id, user_id, request_status, delivery_status, assigned_company_id,
            rejected_by_companies, document, version, created_at, updated_at
        ) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
    `, req.ID, req.UserID, string(req.RequestStatus), string(req.DeliveryStatus),
		nullable(req.AssignedCompanyID()), rejectedIDs(req), doc, req.Version, req.CreatedAt, req.UpdatedAt)
	if err != nil {
		if IsDuplicate(err) {
			return apperr.ErrConflict
		}
		return fmt.Errorf("create request %s: %w", req.ID, err)
	}
	return nil
}

// Get returns the request by id, or nil when it does not exist.
func (r *RequestRepo) Get(ctx context.Context, id string) (*domain.ShippingRequest, error) {
	req, err := scanRequest(r.db.QueryRow(ctx,
		`SELECT document, version FROM shipping_requests WHERE id = $1`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get request %s: %w", id, err)
	}
	return req, nil
}

// List returns requests newest first, narrowed by the filter.
func (r *RequestRepo) List(ctx context.Context, f domain.RequestFilter) ([]domain.ShippingRequest, error) {
	q := `SELECT document, version FROM shipping_requests WHERE TRUE`
	args := make([]any, 0, 4)
	if f.UserID != "" {
		args = append(args, f.UserID)
		q += fmt.Sprintf(" AND user_id = $%d", len(args))
	}
	if f.RequestStatus != "" {
		args = append(args, string(f.RequestStatus))
		q += fmt.Sprintf(" AND request_status = $%d", len(args))
	}
	q += ` ORDER BY created_at DESC, id`
	q, args = paginate(q, args, f.Limit, f.Offset)

	return r.query(ctx, q, args...)
}

// ListVisible returns the requests companyID may act on: open for offers,
// unassigned or assigned to it, and not declined by it.
func (r *RequestRepo) ListVisible(ctx context.Context, companyID string, limit, offset *int) ([]domain.ShippingRequest, error) {
	statuses := make([]string, 0, 2)
	for _, s := range domain.VisibleStatuses() {
		statuses = append(statuses, string(s))
	}
	q := `
        SELECT document, version
        FROM shipping_requests
        WHERE request_status = ANY($1)
          AND (assigned_company_id IS NULL OR assigned_company_id = $2)
          AND NOT ($2 = ANY(rejected_by_companies))
        ORDER BY created_at DESC, id`
	q, args := paginate(q, []any{statuses, companyID}, limit, offset)

	return r.query(ctx, q, args...)
}

func paginate(q string, args []any, limit, offset *int) (string, []any) {
	if limit != nil {
		args = append(args, *limit)
		q += fmt.Sprintf(" LIMIT $%d", len(args))
	}
	if offset != nil {
		args = append(args, *offset)
		q += fmt.Sprintf(" OFFSET $%d", len(args))
	}
	return q, args
}

func (r *RequestRepo) query(ctx context.Context, q string, args ...any) ([]domain.ShippingRequest, error) {
	rows, err := r.db.Query(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list requests: %w", err)
	}
	defer rows.Close()

	out := make([]domain.ShippingRequest, 0)
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *req)
	}
	return out, rows.Err()
}

// AppendActivity pushes entry onto the request's activity history in a single
// statement and returns the updated document, or nil when the id is unknown.
func (r *RequestRepo) AppendActivity(ctx context.Context, id string, entry domain.ActivityEntry) (*domain.ShippingRequest, error) {
	raw, err := json.Marshal(entry)
	if err != nil {
		return nil, fmt.Errorf("encode activity entry: %w", err)
	}
	req, err := scanRequest(r.db.QueryRow(ctx, `
        UPDATE shipping_requests
        SET document = jsonb_set(
                jsonb_set(
                    document,
                    '{activityHistory}',
                    COALESCE(document->'activityHistory', '[]'::jsonb) || jsonb_build_array($2::jsonb)
                ),
                '{updatedAt}',
                to_jsonb($3::timestamptz)
            ),
            version = version + 1,
            updated_at = $3
        WHERE id = $1
        RETURNING document, version
    `, id, raw, entry.Timestamp))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("append activity to request %s: %w", id, err)
	}
	return req, nil
}

// WithTx opens a transaction and executes fn within it.
func (r *RequestRepo) WithTx(ctx context.Context, fn func(tx requesttx.Repository) error) (err error) {
	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback(ctx)
			panic(p)
		}
	}()

	if err := fn(&TxRepo{tx: tx}); err != nil {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			return fmt.Errorf("rollback tx: %w (original error: %s)", rbErr, err.Error())
		}
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

// TxRepo is the request store bound to an open transaction.
type TxRepo struct {
	tx pgx.Tx
}

// GetForUpdate loads the request and holds a row lock on it.
func (r *TxRepo) GetForUpdate(ctx context.Context, id string) (*domain.ShippingRequest, error) {
	req, err := scanRequest(r.tx.QueryRow(ctx,
		`SELECT document, version FROM shipping_requests WHERE id = $1 FOR UPDATE`, id))
	if err != nil {
		if IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("lock request %s: %w", id, err)
	}
	return req, nil
}

// Save writes req if its version still matches the stored one.
func (r *TxRepo) Save(ctx context.Context, req *domain.ShippingRequest) error {
	next := *req
	next.Version = req.Version + 1
	doc, err := json.Marshal(&next)
	if err != nil {
		return fmt.Errorf("encode request %s: %w", req.ID, err)
	}

	updatedAt := req.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}
	ct, err := r.tx.Exec(ctx, `
        UPDATE shipping_requests
        SET request_status        = $2,
            delivery_status       = $3,
            assigned_company_id   = $4,
            rejected_by_companies = $5,
            document              = $6,
            version               = version + 1,
            updated_at            = $7
        WHERE id = $1 AND version = $8
    `, req.ID, string(req.RequestStatus), string(req.DeliveryStatus), nullable(req.AssignedCompanyID()),
		rejectedIDs(req), doc, updatedAt, req.Version)
	if err != nil {
		return fmt.Errorf("save request %s: %w", req.ID, err)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("request %s changed since version %d: %w", req.ID, req.Version, apperr.ErrConflict)
	}
	req.Version = next.Version
	return nil
}
