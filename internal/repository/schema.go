package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema is the DDL of the request and company stores. Requests are kept as
// one JSONB document; the columns beside it mirror the fields the visibility
// filter and listings query on.
const Schema = `
CREATE TABLE IF NOT EXISTS companies (
    id         TEXT PRIMARY KEY,
    name       TEXT NOT NULL,
    phone      TEXT NOT NULL UNIQUE,
    status     TEXT NOT NULL,
    rate       NUMERIC(12, 2) NOT NULL DEFAULT 0,
    created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS shipping_requests (
    id                    TEXT PRIMARY KEY,
    user_id               TEXT NOT NULL,
    request_status        TEXT NOT NULL,
    delivery_status       TEXT NOT NULL,
    assigned_company_id   TEXT,
    rejected_by_companies TEXT[] NOT NULL DEFAULT '{}',
    document              JSONB NOT NULL,
    version               BIGINT NOT NULL DEFAULT 1,
    created_at            TIMESTAMPTZ NOT NULL,
    updated_at            TIMESTAMPTZ NOT NULL
);

CREATE INDEX IF NOT EXISTS shipping_requests_user_idx ON shipping_requests (user_id, created_at);
CREATE INDEX IF NOT EXISTS shipping_requests_status_idx ON shipping_requests (request_status);
`

// EnsureSchema applies Schema. Every statement is idempotent.
func EnsureSchema(ctx context.Context, db *pgxpool.Pool) error {
	if _, err := db.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
