package domain

import "slices"

// VisibleTo reports whether companyID may see and act on the request: the
// request is open for offers, it is unassigned or assigned to that company,
// and the company has not declined it.
func (r *ShippingRequest) VisibleTo(companyID string) bool {
	if !r.RequestStatus.OpenForOffers() {
		return false
	}
	if assigned := r.AssignedCompanyID(); assigned != "" && assigned != companyID {
		return false
	}
	return !slices.Contains(r.RejectedByCompanies, companyID)
}

// VisibleStatuses lists the request statuses the visibility filter admits.
func VisibleStatuses() []RequestStatus {
	return []RequestStatus{RequestAccepted, RequestActionNeeded}
}
