package shipping

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"shiphub/internal/apperr"
	"shiphub/internal/domain"
	"shiphub/internal/logx"
	"shiphub/internal/ports/requesttx"
)

// Transition kinds counted by the transitions metric.
const (
	KindStatus      = "status"
	KindOffer       = "offer"
	KindAutoAdvance = "offer_received"
	KindRejection   = "rejection"
	KindAcceptance  = "acceptance"
	KindWarehouses  = "warehouses"
)

// Service runs the request lifecycle: status changes, company offers,
// acceptance and the activity log.
type Service struct {
	repo             requestRepository
	companies        companyLookup
	events           eventPublisher
	transitions      *prometheus.CounterVec
	operationTimeout time.Duration
	logger           logx.Logger
	now              func() time.Time
}

// NewService creates a shipping Service. transitions may be nil.
func NewService(
	r requestRepository,
	c companyLookup,
	p eventPublisher,
	transitions *prometheus.CounterVec,
	timeout time.Duration,
	logger logx.Logger,
) *Service {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}
	if logger == nil {
		logger = logx.Nop()
	}
	return &Service{
		repo:             r,
		companies:        c,
		events:           p,
		transitions:      transitions,
		operationTimeout: timeout,
		logger:           logger,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (s *Service) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, s.operationTimeout)
}

func (s *Service) count(kind string) {
	if s.transitions != nil {
		s.transitions.WithLabelValues(kind).Inc()
	}
}

// publish runs after commit. A failed publish never fails the operation.
func (s *Service) publish(ctx context.Context, ev domain.RequestEvent) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, ev); err != nil {
		s.logger.Warn("request event not published",
			logx.String("request_id", ev.RequestID),
			logx.String("kind", ev.Kind),
			logx.Err(err),
		)
	}
}

// mutate loads the request under lock, hands it to fn and saves it when fn
// reports a change.
func (s *Service) mutate(ctx context.Context, id string, fn func(r *domain.ShippingRequest) (bool, error)) (*domain.ShippingRequest, bool, error) {
	var (
		out     *domain.ShippingRequest
		changed bool
	)
	err := s.repo.WithTx(ctx, func(tx requesttx.Repository) error {
		r, err := tx.GetForUpdate(ctx, id)
		if err != nil {
			return err
		}
		if r == nil {
			return fmt.Errorf("request %s: %w", id, apperr.ErrNotFound)
		}
		changed, err = fn(r)
		if err != nil {
			return err
		}
		if changed {
			if err := tx.Save(ctx, r); err != nil {
				return err
			}
		}
		out = r
		return nil
	})
	if err != nil {
		return nil, false, err
	}
	return out, changed, nil
}

func (s *Service) company(ctx context.Context, id string) (*domain.Company, error) {
	c, err := s.companies.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if c == nil {
		return nil, fmt.Errorf("company %s: %w", id, apperr.ErrNotFound)
	}
	return c, nil
}

// Create validates and stores a new Pending request.
func (s *Service) Create(ctx context.Context, in domain.NewRequest) (*domain.ShippingRequest, error) {
	if err := validateNewRequest(&in); err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	now := s.now()
	r := domain.NewShippingRequest(in, now)
	if err := s.repo.Create(ctx, r); err != nil {
		return nil, err
	}

	s.logger.Info("request created",
		logx.String("event", "request_created"),
		logx.String("request_id", r.ID),
		logx.String("user_id", r.UserID),
		logx.Int("items", len(r.Items)),
	)
	s.publish(ctx, domain.EventFor(r, domain.EventRequestCreated, "", now))
	return r, nil
}

// Get returns a request by id.
func (s *Service) Get(ctx context.Context, id string) (*domain.ShippingRequest, error) {
	id, err := requireID("request id", id)
	if err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	r, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, fmt.Errorf("request %s: %w", id, apperr.ErrNotFound)
	}
	return r, nil
}

// List returns requests matching f, newest first.
func (s *Service) List(ctx context.Context, f domain.RequestFilter) ([]domain.ShippingRequest, error) {
	if f.RequestStatus != "" && !f.RequestStatus.Valid() {
		return nil, invalid("unknown request status %q", f.RequestStatus)
	}
	f.UserID = strings.TrimSpace(f.UserID)
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	return s.repo.List(ctx, f)
}

// UpdateStatus applies an operator status change. Values equal to the stored
// ones are ignored; the current document is returned either way.
func (s *Service) UpdateStatus(ctx context.Context, requestID string, ch domain.StatusChange) (*domain.ShippingRequest, error) {
	requestID, err := requireID("request id", requestID)
	if err != nil {
		return nil, err
	}
	if err := validateStatusChange(ch); err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	now := s.now()
	r, changed, err := s.mutate(ctx, requestID, func(r *domain.ShippingRequest) (bool, error) {
		return r.ApplyStatus(ch, now), nil
	})
	if err != nil {
		return nil, err
	}
	if !changed {
		return r, nil
	}

	s.count(KindStatus)
	s.logger.Info("request status changed",
		logx.String("event", "status_changed"),
		logx.String("request_id", r.ID),
		logx.String("request_status", string(r.RequestStatus)),
		logx.String("delivery_status", string(r.DeliveryStatus)),
	)
	s.publish(ctx, domain.EventFor(r, domain.EventStatusChanged, r.AssignedCompanyID(), now))
	return r, nil
}

// AdvanceDelivery moves the delivery status forward to next. Reports that
// would move it backwards, repeat the current status, or arrive after a
// terminal status are ignored and return false.
func (s *Service) AdvanceDelivery(ctx context.Context, requestID string, next domain.DeliveryStatus, note string) (bool, error) {
	requestID, err := requireID("request id", requestID)
	if err != nil {
		return false, err
	}
	if !next.Valid() {
		return false, invalid("unknown delivery status %q", next)
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	now := s.now()
	r, applied, err := s.mutate(ctx, requestID, func(r *domain.ShippingRequest) (bool, error) {
		if !r.DeliveryStatus.Advances(next) {
			return false, nil
		}
		return r.ApplyStatus(domain.StatusChange{DeliveryStatus: &next, Note: note}, now), nil
	})
	if err != nil || !applied {
		return false, err
	}

	s.count(KindStatus)
	s.logger.Info("delivery progressed",
		logx.String("event", "delivery_progressed"),
		logx.String("request_id", r.ID),
		logx.String("delivery_status", string(r.DeliveryStatus)),
	)
	s.publish(ctx, domain.EventFor(r, domain.EventStatusChanged, r.AssignedCompanyID(), now))
	return true, nil
}

// AddOffer records or replaces a company's offer on a request the company
// can currently see.
func (s *Service) AddOffer(ctx context.Context, in domain.OfferInput) (domain.OfferOutcome, error) {
	requestID, err := requireID("request id", in.RequestID)
	if err != nil {
		return domain.OfferOutcome{}, err
	}
	companyID, err := requireID("company id", in.CompanyID)
	if err != nil {
		return domain.OfferOutcome{}, err
	}
	if !in.Cost.IsPositive() {
		return domain.OfferOutcome{}, invalid("cost must be a positive number")
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	c, err := s.company(ctx, companyID)
	if err != nil {
		return domain.OfferOutcome{}, err
	}
	if c.Status != domain.CompanyActive {
		return domain.OfferOutcome{}, fmt.Errorf("company %s is %s: %w", c.ID, c.Status, apperr.ErrConflict)
	}

	now := s.now()
	var out domain.OfferOutcome
	r, _, err := s.mutate(ctx, requestID, func(r *domain.ShippingRequest) (bool, error) {
		if !r.VisibleTo(c.ID) {
			return false, fmt.Errorf("request %s is not open to company %s: %w", r.ID, c.ID, apperr.ErrConflict)
		}
		out = r.UpsertOffer(*c, in.Cost, strings.TrimSpace(in.Comment), now)
		return true, nil
	})
	if err != nil {
		return domain.OfferOutcome{}, err
	}

	s.count(KindOffer)
	if out.StatusAdvanced {
		s.count(KindAutoAdvance)
	}
	kind := domain.EventOfferSubmitted
	if out.Updated {
		kind = domain.EventOfferUpdated
	}
	s.logger.Info("offer recorded",
		logx.String("event", strings.ToLower(kind)),
		logx.String("request_id", r.ID),
		logx.String("company_id", c.ID),
		logx.String("offer_id", out.Offer.ID),
		logx.String("cost", out.Offer.Cost.String()),
		logx.Bool("status_advanced", out.StatusAdvanced),
	)
	s.publish(ctx, domain.EventFor(r, kind, c.ID, now))
	return out, nil
}

// RejectRequest marks the request as declined by the company. Repeated calls
// are accepted and change nothing. It reports whether the company was newly
// added to the rejection list.
func (s *Service) RejectRequest(ctx context.Context, requestID, companyID string) (bool, error) {
	requestID, err := requireID("request id", requestID)
	if err != nil {
		return false, err
	}
	companyID, err = requireID("company id", companyID)
	if err != nil {
		return false, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	c, err := s.company(ctx, companyID)
	if err != nil {
		return false, err
	}

	now := s.now()
	r, added, err := s.mutate(ctx, requestID, func(r *domain.ShippingRequest) (bool, error) {
		return r.RejectBy(*c, now), nil
	})
	if err != nil {
		return false, err
	}
	if !added {
		return false, nil
	}

	s.count(KindRejection)
	s.logger.Info("request rejected by company",
		logx.String("event", "request_rejected_by_company"),
		logx.String("request_id", r.ID),
		logx.String("company_id", c.ID),
	)
	s.publish(ctx, domain.EventFor(r, domain.EventRejectedByCompany, c.ID, now))
	return true, nil
}

// AcceptOffer assigns the request to the company behind offerRef, which may
// be an offer id or a company id. A request that is already assigned refuses
// a second acceptance with apperr.ErrConflict.
func (s *Service) AcceptOffer(ctx context.Context, requestID, offerRef string) (*domain.ShippingRequest, error) {
	requestID, err := requireID("request id", requestID)
	if err != nil {
		return nil, err
	}
	offerRef, err = requireID("offer id", offerRef)
	if err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	now := s.now()
	var won domain.CostOffer
	r, _, err := s.mutate(ctx, requestID, func(r *domain.ShippingRequest) (bool, error) {
		o, err := r.AcceptOffer(offerRef, now)
		if err != nil {
			return false, err
		}
		won = o
		return true, nil
	})
	if err != nil {
		return nil, err
	}

	s.count(KindAcceptance)
	s.logger.Info("offer accepted",
		logx.String("event", "offer_accepted"),
		logx.String("request_id", r.ID),
		logx.String("company_id", won.Company.ID),
		logx.String("offer_id", won.ID),
		logx.String("cost", won.Cost.String()),
	)
	s.publish(ctx, domain.EventFor(r, domain.EventOfferAccepted, won.Company.ID, now))
	return r, nil
}

// ListVisible returns the requests the company may act on.
func (s *Service) ListVisible(ctx context.Context, companyID string, limit, offset *int) ([]domain.ShippingRequest, error) {
	companyID, err := requireID("company id", companyID)
	if err != nil {
		return nil, err
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()
	if _, err := s.company(ctx, companyID); err != nil {
		return nil, err
	}
	return s.repo.ListVisible(ctx, companyID, limit, offset)
}

// AssignWarehouses sets the source and destination warehouse references.
// At least one must be given.
func (s *Service) AssignWarehouses(ctx context.Context, requestID, source, destination string) (*domain.ShippingRequest, error) {
	requestID, err := requireID("request id", requestID)
	if err != nil {
		return nil, err
	}
	source, destination = strings.TrimSpace(source), strings.TrimSpace(destination)
	if source == "" && destination == "" {
		return nil, invalid("sourceWarehouseId or destinationWarehouseId is required")
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	now := s.now()
	r, changed, err := s.mutate(ctx, requestID, func(r *domain.ShippingRequest) (bool, error) {
		return r.AssignWarehouses(source, destination, now), nil
	})
	if err != nil {
		return nil, err
	}
	if changed {
		s.count(KindWarehouses)
		s.logger.Info("warehouses assigned",
			logx.String("event", "warehouses_assigned"),
			logx.String("request_id", r.ID),
			logx.String("source_warehouse_id", r.SourceWarehouseID),
			logx.String("destination_warehouse_id", r.DestinationWarehouseID),
		)
		s.publish(ctx, domain.EventFor(r, domain.EventWarehousesAssigned, r.AssignedCompanyID(), now))
	}
	return r, nil
}

// AppendActivity pushes a caller-built entry onto the activity log and
// returns the updated request.
func (s *Service) AppendActivity(ctx context.Context, requestID string, e domain.ActivityEntry) (*domain.ShippingRequest, error) {
	requestID, err := requireID("request id", requestID)
	if err != nil {
		return nil, err
	}
	e.Action = strings.TrimSpace(e.Action)
	if e.Action == "" {
		e.Action = domain.ActionNoteAdded
	}
	if strings.TrimSpace(e.Description) == "" {
		return nil, invalid("description is required")
	}
	ctx, cancel := s.withTimeout(ctx)
	defer cancel()

	e = domain.PrepareEntry(e, s.now())
	r, err := s.repo.AppendActivity(ctx, requestID, e)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, fmt.Errorf("request %s: %w", requestID, apperr.ErrNotFound)
	}
	s.logger.Debug("activity appended",
		logx.String("request_id", requestID),
		logx.String("action", e.Action),
	)
	s.publish(ctx, domain.EventFor(r, e.Action, "", e.Timestamp))
	return r, nil
}

// History returns the activity log of a request in append order.
func (s *Service) History(ctx context.Context, requestID string) ([]domain.ActivityEntry, error) {
	r, err := s.Get(ctx, requestID)
	if err != nil {
		return nil, err
	}
	return r.ActivityHistory, nil
}
