package domain

import "time"

// Request event kinds published after a committed change.
const (
	EventRequestCreated     = "REQUEST_CREATED"
	EventStatusChanged      = ActionStatusChanged
	EventOfferSubmitted     = ActionOfferSubmitted
	EventOfferUpdated       = ActionOfferUpdated
	EventRejectedByCompany  = ActionRejectedByCompany
	EventOfferAccepted      = ActionOfferAccepted
	EventWarehousesAssigned = ActionWarehousesAssigned
	EventNoteAdded          = ActionNoteAdded
)

// RequestEvent is the outbound notification about a request change.
type RequestEvent struct {
	RequestID      string
	Kind           string
	RequestStatus  RequestStatus
	DeliveryStatus DeliveryStatus
	CompanyID      string
	At             time.Time
}

// EventFor builds an event describing the current state of r.
func EventFor(r *ShippingRequest, kind, companyID string, at time.Time) RequestEvent {
	return RequestEvent{
		RequestID:      r.ID,
		Kind:           kind,
		RequestStatus:  r.RequestStatus,
		DeliveryStatus: r.DeliveryStatus,
		CompanyID:      companyID,
		At:             at,
	}
}

// DeliveryEvent is a progress report from the field about a request.
type DeliveryEvent struct {
	RequestID  string
	Status     DeliveryStatus
	DriverID   string
	OccurredAt time.Time
}
