package requesttx

import (
	"context"

	"shiphub/internal/domain"
)

// Repository is the view of the request store available inside a transaction.
type Repository interface {
	// GetForUpdate loads the request and locks it until the transaction ends.
	// It returns nil, nil when the id does not resolve.
	GetForUpdate(ctx context.Context, id string) (*domain.ShippingRequest, error)
	// Save writes the request back. It fails with apperr.ErrConflict when the
	// stored version no longer matches r.Version, and bumps r.Version on success.
	Save(ctx context.Context, r *domain.ShippingRequest) error
}

// Runner is a transaction runner
type Runner interface {
	WithTx(ctx context.Context, fn func(tx Repository) error) error
}
