package handlers

import (
	"strings"

	"shiphub/internal/domain"
)

func (a addressDTO) toModel() domain.Address {
	return domain.Address{
		Name:       strings.TrimSpace(a.Name),
		Phone:      strings.TrimSpace(a.Phone),
		Line:       strings.TrimSpace(a.Line),
		City:       strings.TrimSpace(a.City),
		Country:    strings.TrimSpace(a.Country),
		PostalCode: strings.TrimSpace(a.PostalCode),
		Lat:        a.Lat,
		Lng:        a.Lng,
	}
}

func (b createRequestBody) toModel() domain.NewRequest {
	items := make([]domain.Item, 0, len(b.Items))
	for _, it := range b.Items {
		items = append(items, domain.Item{
			Name:        strings.TrimSpace(it.Name),
			Quantity:    it.Quantity,
			WeightKg:    it.WeightKg,
			Description: it.Description,
		})
	}
	return domain.NewRequest{
		UserID:      b.UserID,
		Source:      b.Source.toModel(),
		Destination: b.Destination.toModel(),
		Items:       items,
	}
}

func (b statusUpdateBody) toModel() domain.StatusChange {
	return domain.StatusChange{
		RequestStatus:  b.RequestStatus,
		DeliveryStatus: b.DeliveryStatus,
		Note:           strings.TrimSpace(b.Note),
	}
}

func (b companyActionBody) offerInput() domain.OfferInput {
	in := domain.OfferInput{RequestID: b.RequestID, CompanyID: b.CompanyID}
	if b.Offer != nil {
		in.Cost = b.Offer.Cost
		in.Comment = b.Offer.Comment
	}
	return in
}

func (b activityBody) toModel() domain.ActivityEntry {
	return domain.ActivityEntry{
		Action:      strings.ToUpper(strings.TrimSpace(b.Action)),
		Description: strings.TrimSpace(b.Description),
		CompanyName: b.CompanyName,
		CompanyRate: b.CompanyRate,
		Cost:        b.Cost,
		Details:     b.Details,
	}
}

func (b createCompanyBody) toModel() *domain.Company {
	return &domain.Company{
		Name:   b.Name,
		Phone:  strings.TrimSpace(b.Phone),
		Status: b.Status,
		Rate:   b.Rate,
	}
}

func (b updateCompanyBody) toModel(id string) domain.PartialCompanyUpdate {
	return domain.PartialCompanyUpdate{
		ID:     id,
		Name:   b.Name,
		Phone:  b.Phone,
		Status: b.Status,
		Rate:   b.Rate,
	}
}
