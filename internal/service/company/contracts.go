package company

import (
	"context"

	"shiphub/internal/domain"
)

// companyRepository defines storage operations required by the business layer.
type companyRepository interface {
	Get(ctx context.Context, id string) (*domain.Company, error)
	List(ctx context.Context, limit, offset *int) ([]domain.Company, error)
	Create(ctx context.Context, c *domain.Company) (string, error)
	UpdatePartial(ctx context.Context, u domain.PartialCompanyUpdate) (bool, error)
}
