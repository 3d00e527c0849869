package atp

import "github.com/partflow/atp/pkg/domain/entities"

// OverallStatus folds per-item outcomes into the order-level status.
// A line counts as confirmed when any quantity was reserved for it; the
// order is ALL_CONFIRMED only when every line got its full requested
// quantity. Customer lookup failure bypasses this entirely
// (CUSTOMER_NOT_FOUND is decided before any item is processed).
func OverallStatus(results []entities.AtpResultItem) entities.OrderStatus {
	if len(results) == 0 {
		return entities.NoItemsRequested
	}

	confirmed := 0
	full := 0
	for _, result := range results {
		if result.ConfirmedQuantity > 0 {
			confirmed++
		}
		if result.ConfirmedQuantity >= result.RequestedQuantity {
			full++
		}
	}

	switch {
	case confirmed == 0:
		return entities.NoneConfirmed
	case full == len(results):
		return entities.AllConfirmed
	default:
		return entities.PartiallyConfirmed
	}
}
