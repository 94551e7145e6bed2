//go:generate mockgen -source=contracts.go -destination=mocks_test.go -package=shipping_test

package shipping

import (
	"context"

	"shiphub/internal/domain"
	"shiphub/internal/ports/requesttx"
)

type requestRepository interface {
	requesttx.Runner
	Create(ctx context.Context, r *domain.ShippingRequest) error
	Get(ctx context.Context, id string) (*domain.ShippingRequest, error)
	List(ctx context.Context, f domain.RequestFilter) ([]domain.ShippingRequest, error)
	ListVisible(ctx context.Context, companyID string, limit, offset *int) ([]domain.ShippingRequest, error)
	AppendActivity(ctx context.Context, id string, entry domain.ActivityEntry) (*domain.ShippingRequest, error)
}

type companyLookup interface {
	Get(ctx context.Context, id string) (*domain.Company, error)
}

type eventPublisher interface {
	Publish(ctx context.Context, ev domain.RequestEvent) error
}
