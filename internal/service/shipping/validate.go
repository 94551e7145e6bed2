package shipping

import (
	"fmt"
	"strings"

	"shiphub/internal/apperr"
	"shiphub/internal/domain"
)

func invalid(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, apperr.ErrInvalid)...)
}

func requireID(name, v string) (string, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return "", invalid("%s is required", name)
	}
	return v, nil
}

func validateAddress(which string, a domain.Address) error {
	switch {
	case strings.TrimSpace(a.Name) == "":
		return invalid("%s name is required", which)
	case strings.TrimSpace(a.Line) == "":
		return invalid("%s address line is required", which)
	case strings.TrimSpace(a.City) == "":
		return invalid("%s city is required", which)
	case strings.TrimSpace(a.Country) == "":
		return invalid("%s country is required", which)
	}
	if a.Phone != "" && !domain.ValidatePhone(a.Phone) {
		return invalid("%s phone %q", which, a.Phone)
	}
	return nil
}

func validateNewRequest(in *domain.NewRequest) error {
	uid, err := requireID("user id", in.UserID)
	if err != nil {
		return err
	}
	in.UserID = uid
	if err := validateAddress("source", in.Source); err != nil {
		return err
	}
	if err := validateAddress("destination", in.Destination); err != nil {
		return err
	}
	if len(in.Items) == 0 {
		return invalid("at least one item is required")
	}
	for i, it := range in.Items {
		if strings.TrimSpace(it.Name) == "" {
			return invalid("item %d name is required", i)
		}
		if it.Quantity <= 0 {
			return invalid("item %d quantity must be positive", i)
		}
		if it.WeightKg < 0 {
			return invalid("item %d weight must not be negative", i)
		}
	}
	return nil
}

func validateStatusChange(ch domain.StatusChange) error {
	if ch.RequestStatus == nil && ch.DeliveryStatus == nil {
		return invalid("requestStatus or deliveryStatus is required")
	}
	if ch.RequestStatus != nil && !ch.RequestStatus.Valid() {
		return invalid("unknown request status %q", *ch.RequestStatus)
	}
	if ch.DeliveryStatus != nil && !ch.DeliveryStatus.Valid() {
		return invalid("unknown delivery status %q", *ch.DeliveryStatus)
	}
	return nil
}
