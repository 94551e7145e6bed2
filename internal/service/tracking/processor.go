package tracking

import (
	"context"
	"errors"
	"strings"

	"github.com/prometheus/client_golang/prometheus"

	"shiphub/internal/apperr"
	"shiphub/internal/domain"
	"shiphub/internal/logx"
)

// Outcomes of a processed delivery event.
const (
	OutcomeApplied        = "applied"
	OutcomeStale          = "stale"
	OutcomeUnknownStatus  = "unknown_status"
	OutcomeUnknownRequest = "unknown_request"
)

// Processor applies delivery progress events to requests.
type Processor struct {
	delivery DeliveryPort
	outcomes *prometheus.CounterVec
	logger   logx.Logger
}

// NewProcessor creates a Processor. outcomes may be nil.
func NewProcessor(d DeliveryPort, outcomes *prometheus.CounterVec, logger logx.Logger) *Processor {
	if logger == nil {
		logger = logx.Nop()
	}
	return &Processor{delivery: d, outcomes: outcomes, logger: logger}
}

func (p *Processor) count(outcome string) {
	if p.outcomes != nil {
		p.outcomes.WithLabelValues(outcome).Inc()
	}
}

// Handle applies one event. Events that cannot ever succeed are dropped with
// a nil error; only store failures are returned so the message is retried.
func (p *Processor) Handle(ctx context.Context, e domain.DeliveryEvent) error {
	status := normalizeStatus(e.Status)
	if !status.Valid() {
		p.count(OutcomeUnknownStatus)
		p.logger.Debug("delivery event ignored",
			logx.String("request_id", e.RequestID),
			logx.String("status", string(e.Status)),
		)
		return nil
	}

	note := ""
	if e.DriverID != "" {
		note = "reported by driver " + e.DriverID
	}

	applied, err := p.delivery.AdvanceDelivery(ctx, e.RequestID, status, note)
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		p.count(OutcomeUnknownRequest)
		p.logger.Warn("delivery event for unknown request",
			logx.String("request_id", e.RequestID),
			logx.String("status", string(status)),
		)
		return nil
	case errors.Is(err, apperr.ErrInvalid):
		p.count(OutcomeUnknownStatus)
		return nil
	case err != nil:
		return err
	}

	if !applied {
		p.count(OutcomeStale)
		return nil
	}
	p.count(OutcomeApplied)
	return nil
}

// normalizeStatus matches drivers' status strings case-insensitively.
func normalizeStatus(s domain.DeliveryStatus) domain.DeliveryStatus {
	want := strings.TrimSpace(string(s))
	for _, known := range domain.DeliveryStatuses() {
		if strings.EqualFold(want, string(known)) {
			return known
		}
	}
	return s
}
