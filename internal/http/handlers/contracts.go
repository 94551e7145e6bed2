package handlers

import (
	"context"

	"shiphub/internal/domain"
)

type shippingUsecase interface {
	Create(ctx context.Context, in domain.NewRequest) (*domain.ShippingRequest, error)
	Get(ctx context.Context, id string) (*domain.ShippingRequest, error)
	List(ctx context.Context, f domain.RequestFilter) ([]domain.ShippingRequest, error)
	UpdateStatus(ctx context.Context, requestID string, ch domain.StatusChange) (*domain.ShippingRequest, error)
	AddOffer(ctx context.Context, in domain.OfferInput) (domain.OfferOutcome, error)
	RejectRequest(ctx context.Context, requestID, companyID string) (bool, error)
	AcceptOffer(ctx context.Context, requestID, offerRef string) (*domain.ShippingRequest, error)
	ListVisible(ctx context.Context, companyID string, limit, offset *int) ([]domain.ShippingRequest, error)
	AssignWarehouses(ctx context.Context, requestID, source, destination string) (*domain.ShippingRequest, error)
	AppendActivity(ctx context.Context, requestID string, e domain.ActivityEntry) (*domain.ShippingRequest, error)
	History(ctx context.Context, requestID string) ([]domain.ActivityEntry, error)
}

type companyUsecase interface {
	Get(ctx context.Context, id string) (*domain.Company, error)
	List(ctx context.Context, limit, offset *int) ([]domain.Company, error)
	Create(ctx context.Context, c *domain.Company) (string, error)
	UpdatePartial(ctx context.Context, u domain.PartialCompanyUpdate) (bool, error)
}
