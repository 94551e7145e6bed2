package domain

import (
	"regexp"

	"github.com/shopspring/decimal"
)

// CompanyStatus represents whether a shipping company may take work.
type CompanyStatus string

// List of possible company statuses
const (
	CompanyActive    CompanyStatus = "active"
	CompanySuspended CompanyStatus = "suspended"
)

var allowedCompanyStatuses = [...]CompanyStatus{CompanyActive, CompanySuspended}

// Company is a shipping company that prices and fulfils requests.
type Company struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Phone  string          `json:"phone"`
	Status CompanyStatus   `json:"status"`
	Rate   decimal.Decimal `json:"rate"`
}

// Snapshot returns the identity embedded in offers and assignments.
func (c Company) Snapshot() CompanySnapshot {
	return CompanySnapshot{ID: c.ID, Name: c.Name}
}

// PartialCompanyUpdate carries optional fields to update a company.
// A nil field means “do not change” that attribute.
type PartialCompanyUpdate struct {
	ID     string
	Name   *string
	Phone  *string
	Status *CompanyStatus
	Rate   *decimal.Decimal
}

// Valid checks if the CompanyStatus is valid
func (s CompanyStatus) Valid() bool {
	for _, v := range allowedCompanyStatuses {
		if s == v {
			return true
		}
	}
	return false
}

var rePhone = regexp.MustCompile(`^\+[0-9]{11}$`)

// ValidatePhone validates the phone number format
func ValidatePhone(s string) bool {
	return rePhone.MatchString(s)
}
