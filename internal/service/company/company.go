package company

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"shiphub/internal/apperr"
	"shiphub/internal/domain"
	"shiphub/internal/logx"
)

// Service manages the shipping company directory.
type Service struct {
	repo             companyRepository
	operationTimeout time.Duration
	logger           logx.Logger
}

// NewService creates and configures a company Service.
func NewService(r companyRepository, timeout time.Duration, logger logx.Logger) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{repo: r, operationTimeout: timeout, logger: logger}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

// rateLimit bounds rates to what the companies.rate column (NUMERIC(12,2)) holds.
var rateLimit = decimal.New(1, 10)

func validateRate(rate decimal.Decimal) error {
	switch {
	case rate.IsNegative():
		return fmt.Errorf("rate must not be negative: %w", apperr.ErrInvalid)
	case rate.GreaterThanOrEqual(rateLimit):
		return fmt.Errorf("rate must be below %s: %w", rateLimit, apperr.ErrInvalid)
	case !rate.Equal(rate.Round(2)):
		return fmt.Errorf("rate %s has more than 2 decimal places: %w", rate, apperr.ErrInvalid)
	}
	return nil
}

// validateCreate validates a company for creation. An empty status defaults to active.
func validateCreate(c *domain.Company) error {
	if c == nil {
		return apperr.ErrInvalid
	}
	c.Name = strings.TrimSpace(c.Name)
	if c.Name == "" {
		return fmt.Errorf("name is required: %w", apperr.ErrInvalid)
	}
	if !domain.ValidatePhone(c.Phone) {
		return fmt.Errorf("phone %q: %w", c.Phone, apperr.ErrInvalid)
	}
	if c.Status == "" {
		c.Status = domain.CompanyActive
	}
	if !c.Status.Valid() {
		return fmt.Errorf("status %q: %w", c.Status, apperr.ErrInvalid)
	}
	return validateRate(c.Rate)
}

func validateUpdate(u *domain.PartialCompanyUpdate) error {
	u.ID = strings.TrimSpace(u.ID)
	if u.ID == "" {
		return apperr.ErrInvalid
	}
	if u.Name == nil && u.Phone == nil && u.Status == nil && u.Rate == nil {
		return apperr.ErrInvalid
	}
	if u.Name != nil {
		name := strings.TrimSpace(*u.Name)
		if name == "" {
			return apperr.ErrInvalid
		}
		u.Name = &name
	}
	if u.Phone != nil && !domain.ValidatePhone(*u.Phone) {
		return apperr.ErrInvalid
	}
	if u.Status != nil && !u.Status.Valid() {
		return apperr.ErrInvalid
	}
	if u.Rate != nil {
		return validateRate(*u.Rate)
	}
	return nil
}

// Get retrieves a company by its ID.
func (s *Service) Get(ctx context.Context, id string) (*domain.Company, error) {
	if strings.TrimSpace(id) == "" {
		return nil, apperr.ErrInvalid
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	c, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, apperr.ErrNotFound
	}
	return c, nil
}

// List returns companies with optional pagination
func (s *Service) List(ctx context.Context, limit, offset *int) ([]domain.Company, error) {
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx, limit, offset)
}

// Create persists a new company and returns its generated ID.
func (s *Service) Create(ctx context.Context, c *domain.Company) (string, error) {
	if err := validateCreate(c); err != nil {
		return "", err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	id, err := s.repo.Create(ctx, c)
	if err != nil {
		return "", err
	}
	s.logger.Info("company registered",
		logx.String("event", "company_registered"),
		logx.String("company_id", id),
		logx.String("status", string(c.Status)),
	)
	return id, nil
}

// UpdatePartial applies a partial update to a company.
func (s *Service) UpdatePartial(ctx context.Context, u domain.PartialCompanyUpdate) (bool, error) {
	if err := validateUpdate(&u); err != nil {
		return false, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	ok, err := s.repo.UpdatePartial(ctx, u)
	if err != nil {
		return false, err
	}
	if !ok {
		return false, apperr.ErrNotFound
	}
	if u.Status != nil {
		s.logger.Info("company status changed",
			logx.String("event", "company_status_changed"),
			logx.String("company_id", u.ID),
			logx.String("status", string(*u.Status)),
		)
	}
	return true, nil
}
