package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Money and rates travel as JSON numbers, the same form clients send them in.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Address is a snapshot of a pickup or drop-off location taken at submission.
type Address struct {
	Name       string   `json:"name"`
	Phone      string   `json:"phone,omitempty"`
	Line       string   `json:"line"`
	City       string   `json:"city"`
	Country    string   `json:"country"`
	PostalCode string   `json:"postalCode,omitempty"`
	Lat        *float64 `json:"lat,omitempty"`
	Lng        *float64 `json:"lng,omitempty"`
}

// Item is one line of the shipment.
type Item struct {
	Name        string  `json:"name"`
	Quantity    int     `json:"quantity"`
	WeightKg    float64 `json:"weightKg"`
	Description string  `json:"description,omitempty"`
}

// CompanySnapshot identifies a shipping company as it was when referenced.
type CompanySnapshot struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CostOffer is a company's price for fulfilling a request.
type CostOffer struct {
	ID        string          `json:"id"`
	Company   CompanySnapshot `json:"company"`
	Cost      decimal.Decimal `json:"cost"`
	Comment   string          `json:"comment,omitempty"`
	Selected  bool            `json:"selected"`
	Status    OfferStatus     `json:"status"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// ActivityEntry is one record of the request's append-only activity log.
type ActivityEntry struct {
	ID          string           `json:"id"`
	Action      string           `json:"action"`
	Timestamp   time.Time        `json:"timestamp"`
	Description string           `json:"description"`
	CompanyName string           `json:"companyName,omitempty"`
	CompanyRate *decimal.Decimal `json:"companyRate,omitempty"`
	Cost        *decimal.Decimal `json:"cost,omitempty"`
	Details     map[string]any   `json:"details,omitempty"`
}

// StatusHistoryEntry records a requestStatus change.
type StatusHistoryEntry struct {
	Status    RequestStatus `json:"status"`
	ChangedAt time.Time     `json:"changedAt"`
	Note      string        `json:"note,omitempty"`
}

// FlowMarker marks a milestone in the commercial flow of a request.
type FlowMarker struct {
	Step string    `json:"step"`
	At   time.Time `json:"at"`
}

// Order flow steps.
const (
	FlowOfferReceived   = "offer_received"
	FlowCompanyAssigned = "company_assigned"
)

// ShippingRequest is the request document.
type ShippingRequest struct {
	ID                     string               `json:"id"`
	UserID                 string               `json:"userId"`
	Source                 Address              `json:"source"`
	Destination            Address              `json:"destination"`
	Items                  []Item               `json:"items"`
	RequestStatus          RequestStatus        `json:"requestStatus"`
	DeliveryStatus         DeliveryStatus       `json:"deliveryStatus"`
	CostOffers             []CostOffer          `json:"costOffers"`
	ActivityHistory        []ActivityEntry      `json:"activityHistory"`
	StatusHistory          []StatusHistoryEntry `json:"statusHistory"`
	OrderFlow              []FlowMarker         `json:"orderFlow"`
	AssignedCompany        *CompanySnapshot     `json:"assignedCompany,omitempty"`
	SourceWarehouseID      string               `json:"sourceWarehouseId,omitempty"`
	DestinationWarehouseID string               `json:"destinationWarehouseId,omitempty"`
	RejectedByCompanies    []string             `json:"rejectedByCompanies"`
	Version                int64                `json:"version"`
	CreatedAt              time.Time            `json:"createdAt"`
	UpdatedAt              time.Time            `json:"updatedAt"`
}

// AssignedCompanyID returns the id of the assigned company or "".
func (r *ShippingRequest) AssignedCompanyID() string {
	if r.AssignedCompany == nil {
		return ""
	}
	return r.AssignedCompany.ID
}

// NewRequest carries a client submission.
type NewRequest struct {
	UserID      string
	Source      Address
	Destination Address
	Items       []Item
}

// RequestFilter narrows request listings. Zero values mean "any".
type RequestFilter struct {
	UserID        string
	RequestStatus RequestStatus
	Limit         *int
	Offset        *int
}

// StatusChange carries the optional targets of a status update.
// A nil field means "do not change" that attribute.
type StatusChange struct {
	RequestStatus  *RequestStatus
	DeliveryStatus *DeliveryStatus
	Note           string
}

// OfferInput is a company's add-offer submission.
type OfferInput struct {
	RequestID string
	CompanyID string
	Cost      decimal.Decimal
	Comment   string
}
