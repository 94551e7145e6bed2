package handlers

import (
	"github.com/shopspring/decimal"

	"shiphub/internal/domain"
)

type addressDTO struct {
	Name       string   `json:"name" validate:"required"`
	Phone      string   `json:"phone,omitempty"`
	Line       string   `json:"line" validate:"required"`
	City       string   `json:"city" validate:"required"`
	Country    string   `json:"country" validate:"required"`
	PostalCode string   `json:"postalCode,omitempty"`
	Lat        *float64 `json:"lat,omitempty" validate:"omitempty,min=-90,max=90"`
	Lng        *float64 `json:"lng,omitempty" validate:"omitempty,min=-180,max=180"`
}

type itemDTO struct {
	Name        string  `json:"name" validate:"required"`
	Quantity    int     `json:"quantity" validate:"gt=0"`
	WeightKg    float64 `json:"weightKg" validate:"gte=0"`
	Description string  `json:"description,omitempty"`
}

type createRequestBody struct {
	UserID      string     `json:"userId" validate:"required"`
	Source      addressDTO `json:"source"`
	Destination addressDTO `json:"destination"`
	Items       []itemDTO  `json:"items" validate:"required,min=1,dive"`
}

type statusUpdateBody struct {
	RequestID      string                 `json:"requestId" validate:"required"`
	RequestStatus  *domain.RequestStatus  `json:"requestStatus,omitempty" validate:"required_without=DeliveryStatus"`
	DeliveryStatus *domain.DeliveryStatus `json:"deliveryStatus,omitempty"`
	Note           string                 `json:"note,omitempty"`
}

// Company actions accepted by POST /company/requests.
const (
	actionAddOffer      = "add-offer"
	actionRejectRequest = "reject-request"
)

type offerDTO struct {
	Cost    decimal.Decimal `json:"cost"`
	Comment string          `json:"comment,omitempty"`
}

type companyActionBody struct {
	Action    string    `json:"action" validate:"required,oneof=add-offer reject-request"`
	RequestID string    `json:"requestId" validate:"required"`
	CompanyID string    `json:"companyId" validate:"required"`
	Offer     *offerDTO `json:"offer,omitempty" validate:"required_if=Action add-offer"`
}

type submitOfferBody struct {
	OfferID string `json:"offerId" validate:"required"`
}

type warehousesBody struct {
	SourceWarehouseID      string `json:"sourceWarehouseId,omitempty"`
	DestinationWarehouseID string `json:"destinationWarehouseId,omitempty" validate:"required_without=SourceWarehouseID"`
}

type activityBody struct {
	Action      string           `json:"action,omitempty"`
	Description string           `json:"description" validate:"required"`
	CompanyName string           `json:"companyName,omitempty"`
	CompanyRate *decimal.Decimal `json:"companyRate,omitempty"`
	Cost        *decimal.Decimal `json:"cost,omitempty"`
	Details     map[string]any   `json:"details,omitempty"`
}

type createCompanyBody struct {
	Name   string               `json:"name" validate:"required"`
	Phone  string               `json:"phone" validate:"required"`
	Status domain.CompanyStatus `json:"status,omitempty" validate:"omitempty,oneof=active suspended"`
	Rate   decimal.Decimal      `json:"rate"`
}

type updateCompanyBody struct {
	Name   *string               `json:"name,omitempty"`
	Phone  *string               `json:"phone,omitempty"`
	Status *domain.CompanyStatus `json:"status,omitempty" validate:"omitempty,oneof=active suspended"`
	Rate   *decimal.Decimal      `json:"rate,omitempty"`
}

type successResponse struct {
	Success bool                    `json:"success"`
	Message string                  `json:"message,omitempty"`
	Request *domain.ShippingRequest `json:"request,omitempty"`
}

type activityResponse struct {
	RequestID       string                 `json:"requestId"`
	ActivityHistory []domain.ActivityEntry `json:"activityHistory"`
}
