package entities

import (
	"fmt"
	"time"
)

// AtpRequestItem is one product/quantity line of an availability check
type AtpRequestItem struct {
	ProductID         ProductID
	RequestedQuantity Quantity
}

// NewAtpRequestItem creates a validated AtpRequestItem
func NewAtpRequestItem(productID ProductID, requestedQuantity Quantity) (*AtpRequestItem, error) {
	if string(productID) == "" {
		return nil, fmt.Errorf("product id cannot be empty")
	}
	if requestedQuantity <= 0 {
		return nil, fmt.Errorf("requested quantity must be positive, got %d", requestedQuantity)
	}

	return &AtpRequestItem{
		ProductID:         productID,
		RequestedQuantity: requestedQuantity,
	}, nil
}

// AtpResultItem is the per-item fulfillment decision. An empty
// FulfilledProductID means nothing was fulfilled for the item; in that
// case ConfirmedQuantity is zero and SourceWarehouseID and
// EstimatedShipDate are unset.
type AtpResultItem struct {
	OriginalProductID  ProductID
	FulfilledProductID ProductID
	RequestedQuantity  Quantity
	ConfirmedQuantity  Quantity
	SourceWarehouseID  WarehouseID
	EstimatedShipDate  *time.Time
	Message            string
}

// Fulfilled reports whether any quantity was confirmed for the item
func (r *AtpResultItem) Fulfilled() bool {
	return r.ConfirmedQuantity > 0
}

// OrderStatus is the aggregate outcome of an availability check
type OrderStatus int

const (
	AllConfirmed OrderStatus = iota
	PartiallyConfirmed
	NoneConfirmed
	NoItemsRequested
	CustomerNotFound
)

// String method for OrderStatus enum
func (s OrderStatus) String() string {
	switch s {
	case AllConfirmed:
		return "ALL_CONFIRMED"
	case PartiallyConfirmed:
		return "PARTIALLY_CONFIRMED"
	case NoneConfirmed:
		return "NONE_CONFIRMED"
	case NoItemsRequested:
		return "NO_ITEMS_REQUESTED"
	case CustomerNotFound:
		return "CUSTOMER_NOT_FOUND"
	default:
		return "Unknown"
	}
}
