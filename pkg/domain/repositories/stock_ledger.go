package repositories

import "github.com/partflow/atp/pkg/domain/entities"

// StockLedger owns all mutable stock state. Reads and reservations are
// atomic with respect to each other; a reservation either decrements the
// full amount or leaves the ledger untouched. Reserve is the only
// mutation point in the system after catalog load.
type StockLedger interface {
	// GetStock returns the available quantity for the pair, summing any
	// duplicate entries. An unknown pair has quantity zero.
	GetStock(productID entities.ProductID, warehouseID entities.WarehouseID) entities.Quantity

	// Reserve atomically checks that the available quantity for the pair
	// is at least amount and, if so, decrements it. It reports whether
	// the reservation was applied. Insufficient stock and unknown pairs
	// report false; they are not errors.
	Reserve(productID entities.ProductID, warehouseID entities.WarehouseID, amount entities.Quantity) bool

	GetAllInventory() ([]entities.InventoryItem, error)
	LoadInventory(items []*entities.InventoryItem) error
}
