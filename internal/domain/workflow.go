package domain

import (
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"shiphub/internal/apperr"
)

// Activity action tags.
const (
	ActionStatusChanged      = "STATUS_CHANGED"
	ActionOfferSubmitted     = "OFFER_SUBMITTED"
	ActionOfferUpdated       = "OFFER_UPDATED"
	ActionRejectedByCompany  = "REQUEST_REJECTED_BY_COMPANY"
	ActionOfferAccepted      = "OFFER_ACCEPTED"
	ActionWarehousesAssigned = "WAREHOUSES_ASSIGNED"
	ActionNoteAdded          = "NOTE_ADDED"
)

// NewShippingRequest builds a Pending request from a client submission.
// The activity history starts empty; the initial status is recorded in
// StatusHistory only.
func NewShippingRequest(in NewRequest, now time.Time) *ShippingRequest {
	return &ShippingRequest{
		ID:                  uuid.NewString(),
		UserID:              in.UserID,
		Source:              in.Source,
		Destination:         in.Destination,
		Items:               append([]Item(nil), in.Items...),
		RequestStatus:       RequestPending,
		DeliveryStatus:      DeliveryPending,
		CostOffers:          []CostOffer{},
		ActivityHistory:     []ActivityEntry{},
		StatusHistory:       []StatusHistoryEntry{{Status: RequestPending, ChangedAt: now}},
		OrderFlow:           []FlowMarker{},
		RejectedByCompanies: []string{},
		CreatedAt:           now,
		UpdatedAt:           now,
	}
}

// PrepareEntry fills the id and timestamp of a caller-built entry.
func PrepareEntry(e ActivityEntry, now time.Time) ActivityEntry {
	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = now
	}
	return e
}

func newEntry(action, description string, now time.Time) ActivityEntry {
	return ActivityEntry{
		ID:          uuid.NewString(),
		Action:      action,
		Timestamp:   now,
		Description: description,
	}
}

// ApplyStatus moves the request to the requested statuses. Fields equal to
// the stored value are left alone; when nothing differs it returns false and
// the request is untouched. Otherwise it stamps UpdatedAt and appends one
// STATUS_CHANGED entry covering every changed field.
//
// Transitions are not checked against the current state: any known status
// may follow any other. Reopening a request for offers (Accepted or Action
// needed) releases its assigned company and puts every offer back to pending,
// so AssignedCompany is set only while some offer is selected.
func (r *ShippingRequest) ApplyStatus(ch StatusChange, now time.Time) bool {
	var parts []string
	details := map[string]any{}

	if ch.RequestStatus != nil && *ch.RequestStatus != r.RequestStatus {
		from := r.RequestStatus
		r.RequestStatus = *ch.RequestStatus
		r.StatusHistory = append(r.StatusHistory, StatusHistoryEntry{
			Status:    r.RequestStatus,
			ChangedAt: now,
			Note:      ch.Note,
		})
		details["requestStatus"] = map[string]any{"from": string(from), "to": string(r.RequestStatus)}
		parts = append(parts, fmt.Sprintf("Request status changed from %s to %s", from, r.RequestStatus))

		if r.RequestStatus.OpenForOffers() && r.AssignedCompany != nil {
			details["unassignedCompany"] = r.AssignedCompany.ID
			parts = append(parts, fmt.Sprintf("Assignment to %s released", r.AssignedCompany.Name))
			r.AssignedCompany = nil
			for i := range r.CostOffers {
				o := &r.CostOffers[i]
				o.Selected = false
				o.Status = OfferPending
				o.UpdatedAt = now
			}
		}
	}
	if ch.DeliveryStatus != nil && *ch.DeliveryStatus != r.DeliveryStatus {
		from := r.DeliveryStatus
		r.DeliveryStatus = *ch.DeliveryStatus
		details["deliveryStatus"] = map[string]any{"from": string(from), "to": string(r.DeliveryStatus)}
		parts = append(parts, fmt.Sprintf("Delivery status changed from %s to %s", from, r.DeliveryStatus))
	}
	if len(parts) == 0 {
		return false
	}
	if ch.Note != "" {
		details["note"] = ch.Note
	}

	entry := newEntry(ActionStatusChanged, strings.Join(parts, "; "), now)
	entry.Details = details
	r.ActivityHistory = append(r.ActivityHistory, entry)
	r.UpdatedAt = now
	return true
}

// OfferOutcome describes what UpsertOffer did.
type OfferOutcome struct {
	Offer          CostOffer
	Updated        bool
	StatusAdvanced bool
}

// UpsertOffer records a company's offer. An existing offer from the same
// company is overwritten in place, so a request never holds two offers from
// one company. A request in Accepted moves to Action needed.
func (r *ShippingRequest) UpsertOffer(c Company, cost decimal.Decimal, comment string, now time.Time) OfferOutcome {
	var out OfferOutcome

	if idx := r.offerIndexByCompany(c.ID); idx >= 0 {
		o := &r.CostOffers[idx]
		o.Company = c.Snapshot()
		o.Cost = cost
		o.Comment = comment
		o.Status = OfferPending
		o.Selected = false
		o.UpdatedAt = now
		out.Offer = *o
		out.Updated = true
	} else {
		o := CostOffer{
			ID:        uuid.NewString(),
			Company:   c.Snapshot(),
			Cost:      cost,
			Comment:   comment,
			Status:    OfferPending,
			CreatedAt: now,
			UpdatedAt: now,
		}
		r.CostOffers = append(r.CostOffers, o)
		out.Offer = o
	}

	action, verb := ActionOfferSubmitted, "submitted"
	if out.Updated {
		action, verb = ActionOfferUpdated, "updated"
	}
	entry := newEntry(action, fmt.Sprintf("%s %s an offer of %s", c.Name, verb, cost.String()), now)
	rate := c.Rate
	entry.CompanyName = c.Name
	entry.CompanyRate = &rate
	entry.Cost = &cost
	entry.Details = map[string]any{"companyId": c.ID, "offerId": out.Offer.ID}
	if comment != "" {
		entry.Details["comment"] = comment
	}
	r.ActivityHistory = append(r.ActivityHistory, entry)

	if r.RequestStatus == RequestAccepted {
		r.RequestStatus = RequestActionNeeded
		r.StatusHistory = append(r.StatusHistory, StatusHistoryEntry{
			Status:    RequestActionNeeded,
			ChangedAt: now,
			Note:      "offer received from " + c.Name,
		})
		r.OrderFlow = append(r.OrderFlow, FlowMarker{Step: FlowOfferReceived, At: now})
		out.StatusAdvanced = true
	}

	r.UpdatedAt = now
	return out
}

// RejectBy adds the company to RejectedByCompanies. It reports false and
// changes nothing when the company already declined.
func (r *ShippingRequest) RejectBy(c Company, now time.Time) bool {
	if slices.Contains(r.RejectedByCompanies, c.ID) {
		return false
	}
	r.RejectedByCompanies = append(r.RejectedByCompanies, c.ID)

	entry := newEntry(ActionRejectedByCompany, c.Name+" declined the request", now)
	entry.CompanyName = c.Name
	entry.Details = map[string]any{"companyId": c.ID}
	r.ActivityHistory = append(r.ActivityHistory, entry)
	r.UpdatedAt = now
	return true
}

// AcceptOffer assigns the request to the company behind ref. ref is matched
// against offer ids first, then against company ids. Exactly one offer ends
// up selected. A request that is not open for offers, including one that is
// already assigned, is refused with apperr.ErrConflict.
func (r *ShippingRequest) AcceptOffer(ref string, now time.Time) (CostOffer, error) {
	if !r.RequestStatus.OpenForOffers() {
		if r.RequestStatus == RequestAssignedToCompany {
			return CostOffer{}, fmt.Errorf("request %s already assigned to company %s: %w",
				r.ID, r.AssignedCompanyID(), apperr.ErrConflict)
		}
		return CostOffer{}, fmt.Errorf("request %s is %s: %w", r.ID, r.RequestStatus, apperr.ErrConflict)
	}
	idx := r.resolveOffer(ref)
	if idx < 0 {
		return CostOffer{}, fmt.Errorf("offer %q on request %s: %w", ref, r.ID, apperr.ErrNotFound)
	}

	for i := range r.CostOffers {
		o := &r.CostOffers[i]
		o.Selected = i == idx
		if o.Selected {
			o.Status = OfferAccepted
		} else {
			o.Status = OfferRejected
		}
		o.UpdatedAt = now
	}
	won := r.CostOffers[idx]
	company := won.Company
	r.AssignedCompany = &company
	r.RequestStatus = RequestAssignedToCompany
	r.StatusHistory = append(r.StatusHistory, StatusHistoryEntry{
		Status:    RequestAssignedToCompany,
		ChangedAt: now,
		Note:      "offer accepted from " + company.Name,
	})
	r.OrderFlow = append(r.OrderFlow, FlowMarker{Step: FlowCompanyAssigned, At: now})

	cost := won.Cost
	entry := newEntry(ActionOfferAccepted,
		fmt.Sprintf("Offer from %s accepted at %s", company.Name, cost.String()), now)
	entry.CompanyName = company.Name
	entry.Cost = &cost
	entry.Details = map[string]any{"companyId": company.ID, "offerId": won.ID}
	r.ActivityHistory = append(r.ActivityHistory, entry)
	r.UpdatedAt = now
	return won, nil
}

// AssignWarehouses sets the warehouse references. Empty arguments keep the
// current value. It reports whether anything changed.
func (r *ShippingRequest) AssignWarehouses(source, destination string, now time.Time) bool {
	details := map[string]any{}
	if source != "" && source != r.SourceWarehouseID {
		details["sourceWarehouseId"] = map[string]any{"from": r.SourceWarehouseID, "to": source}
		r.SourceWarehouseID = source
	}
	if destination != "" && destination != r.DestinationWarehouseID {
		details["destinationWarehouseId"] = map[string]any{"from": r.DestinationWarehouseID, "to": destination}
		r.DestinationWarehouseID = destination
	}
	if len(details) == 0 {
		return false
	}
	entry := newEntry(ActionWarehousesAssigned, "Warehouses assigned", now)
	entry.Details = details
	r.ActivityHistory = append(r.ActivityHistory, entry)
	r.UpdatedAt = now
	return true
}

// FindOffer returns the offer matching ref (offer id, then company id).
func (r *ShippingRequest) FindOffer(ref string) (CostOffer, bool) {
	idx := r.resolveOffer(ref)
	if idx < 0 {
		return CostOffer{}, false
	}
	return r.CostOffers[idx], true
}

func (r *ShippingRequest) resolveOffer(ref string) int {
	for i, o := range r.CostOffers {
		if o.ID == ref {
			return i
		}
	}
	return r.offerIndexByCompany(ref)
}

func (r *ShippingRequest) offerIndexByCompany(companyID string) int {
	for i, o := range r.CostOffers {
		if o.Company.ID == companyID {
			return i
		}
	}
	return -1
}
