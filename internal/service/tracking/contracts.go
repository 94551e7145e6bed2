//go:generate mockgen -source=contracts.go -destination=tracking_mocks_test.go -package=tracking_test

package tracking

import (
	"context"

	"shiphub/internal/domain"
)

// DeliveryPort is the part of the shipping workflow the processor drives.
type DeliveryPort interface {
	AdvanceDelivery(ctx context.Context, requestID string, next domain.DeliveryStatus, note string) (bool, error)
}
