package kafka

import (
	"strings"
	"time"

	"shiphub/internal/domain"
)

// DeliveryEventDTO is the wire form of a driver progress report.
type DeliveryEventDTO struct {
	RequestID  string    `json:"request_id"`
	Status     string    `json:"status"`
	DriverID   string    `json:"driver_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// ToDomain converts DeliveryEventDTO to domain.DeliveryEvent
func ToDomain(dto DeliveryEventDTO) domain.DeliveryEvent {
	return domain.DeliveryEvent{
		RequestID:  strings.TrimSpace(dto.RequestID),
		Status:     domain.DeliveryStatus(strings.TrimSpace(dto.Status)),
		DriverID:   strings.TrimSpace(dto.DriverID),
		OccurredAt: dto.OccurredAt,
	}
}

// RequestEventDTO is the wire form of a published request change.
type RequestEventDTO struct {
	RequestID      string    `json:"request_id"`
	Kind           string    `json:"kind"`
	RequestStatus  string    `json:"request_status"`
	DeliveryStatus string    `json:"delivery_status"`
	CompanyID      string    `json:"company_id,omitempty"`
	At             time.Time `json:"at"`
}

// FromDomain converts domain.RequestEvent to its wire form.
func FromDomain(ev domain.RequestEvent) RequestEventDTO {
	return RequestEventDTO{
		RequestID:      ev.RequestID,
		Kind:           ev.Kind,
		RequestStatus:  string(ev.RequestStatus),
		DeliveryStatus: string(ev.DeliveryStatus),
		CompanyID:      ev.CompanyID,
		At:             ev.At.UTC(),
	}
}
