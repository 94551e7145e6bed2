package domain

type (
	// RequestStatus is the triage/commercial state of a shipping request.
	RequestStatus string
	// DeliveryStatus is the physical progress of a shipment.
	DeliveryStatus string
	// OfferStatus is the state of a company cost offer.
	OfferStatus string
)

// Request statuses.
const (
	RequestPending           RequestStatus = "Pending"
	RequestAccepted          RequestStatus = "Accepted"
	RequestActionNeeded      RequestStatus = "Action needed"
	RequestAssignedToCompany RequestStatus = "Assigned to Company"
	RequestRejected          RequestStatus = "Rejected"
	RequestInProgress        RequestStatus = "In Progress"
	RequestCompleted         RequestStatus = "Completed"
	RequestCancelled         RequestStatus = "Cancelled"
)

// Delivery statuses, in the order a shipment normally moves through them.
const (
	DeliveryPending                      DeliveryStatus = "Pending"
	DeliveryPickedUpSource               DeliveryStatus = "Picked Up Source"
	DeliveryWarehouseSourceReceived      DeliveryStatus = "Warehouse Source Received"
	DeliveryInTransit                    DeliveryStatus = "In Transit"
	DeliveryWarehouseDestinationReceived DeliveryStatus = "Warehouse Destination Received"
	DeliveryShipmentDeliver              DeliveryStatus = "Shipment Deliver"
	DeliveryDelivered                    DeliveryStatus = "Delivered"
	DeliveryFailed                       DeliveryStatus = "Failed"
)

// Offer statuses.
const (
	OfferPending  OfferStatus = "pending"
	OfferAccepted OfferStatus = "accepted"
	OfferRejected OfferStatus = "rejected"
)

var allowedRequestStatuses = [...]RequestStatus{
	RequestPending, RequestAccepted, RequestActionNeeded, RequestAssignedToCompany,
	RequestRejected, RequestInProgress, RequestCompleted, RequestCancelled,
}

// deliverySequence is the linear path; Failed sits outside it.
var deliverySequence = [...]DeliveryStatus{
	DeliveryPending,
	DeliveryPickedUpSource,
	DeliveryWarehouseSourceReceived,
	DeliveryInTransit,
	DeliveryWarehouseDestinationReceived,
	DeliveryShipmentDeliver,
	DeliveryDelivered,
}

// Valid checks if the RequestStatus is one of the known values.
func (s RequestStatus) Valid() bool {
	for _, v := range allowedRequestStatuses {
		if s == v {
			return true
		}
	}
	return false
}

// Valid checks if the DeliveryStatus is one of the known values.
func (s DeliveryStatus) Valid() bool {
	return s == DeliveryFailed || s.Rank() >= 0
}

// Rank returns the position of s in the delivery sequence, or -1 for Failed
// and unknown values.
func (s DeliveryStatus) Rank() int {
	for i, v := range deliverySequence {
		if s == v {
			return i
		}
	}
	return -1
}

// Terminal reports whether no further delivery progress is expected.
func (s DeliveryStatus) Terminal() bool {
	return s == DeliveryDelivered || s == DeliveryFailed
}

// OpenForOffers reports whether companies may still see and price the request.
func (s RequestStatus) OpenForOffers() bool {
	return s == RequestAccepted || s == RequestActionNeeded
}

// Advances reports whether moving from s to next is forward progress: next is
// later in the sequence, or Failed, and s is not terminal yet.
func (s DeliveryStatus) Advances(next DeliveryStatus) bool {
	if s.Terminal() || !next.Valid() {
		return false
	}
	return next == DeliveryFailed || next.Rank() > s.Rank()
}

// DeliveryStatuses lists every delivery status, Failed last.
func DeliveryStatuses() []DeliveryStatus {
	out := make([]DeliveryStatus, 0, len(deliverySequence)+1)
	out = append(out, deliverySequence[:]...)
	return append(out, DeliveryFailed)
}
