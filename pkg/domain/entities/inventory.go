package entities

import "fmt"

// Quantity represents an integer quantity of discrete units
type Quantity int64

// InventoryItem represents on-hand stock of a product at a warehouse.
// A (product, warehouse) pair conceptually has a single entry, but stores
// must tolerate duplicate entries for the same pair and sum them.
type InventoryItem struct {
	ProductID   ProductID
	WarehouseID WarehouseID
	Quantity    Quantity
}

// NewInventoryItem creates a validated InventoryItem
func NewInventoryItem(productID ProductID, warehouseID WarehouseID, quantity Quantity) (*InventoryItem, error) {
	if string(productID) == "" {
		return nil, fmt.Errorf("product id cannot be empty")
	}
	if string(warehouseID) == "" {
		return nil, fmt.Errorf("warehouse id cannot be empty")
	}
	if quantity < 0 {
		return nil, fmt.Errorf("quantity cannot be negative, got %d", quantity)
	}

	return &InventoryItem{
		ProductID:   productID,
		WarehouseID: warehouseID,
		Quantity:    quantity,
	}, nil
}
