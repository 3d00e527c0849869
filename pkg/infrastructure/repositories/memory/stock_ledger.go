package memory

import (
	"sync"

	"github.com/partflow/atp/pkg/domain/entities"
	"github.com/partflow/atp/pkg/domain/repositories"
)

// StockLedger provides in-memory stock storage with atomic reservations.
// A single mutex scoped to the ledger serializes every read and
// reservation, which keeps the conditional decrement linearizable per
// (product, warehouse) key. Callers never see internal entries; reads
// return summed quantities or copies.
type StockLedger struct {
	mu      sync.Mutex
	entries []entities.InventoryItem
}

// NewStockLedger creates a new empty in-memory stock ledger
func NewStockLedger() *StockLedger {
	return &StockLedger{}
}

// Verify interface compliance
var _ repositories.StockLedger = (*StockLedger)(nil)

// LoadInventory appends inventory entries. Duplicate (product,
// warehouse) entries are kept as-is: reads sum them.
func (l *StockLedger) LoadInventory(items []*entities.InventoryItem) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, item := range items {
		l.entries = append(l.entries, *item)
	}
	return nil
}

// GetStock returns the available quantity for the pair, summing any
// duplicate entries. Unknown pairs have quantity zero.
func (l *StockLedger) GetStock(productID entities.ProductID, warehouseID entities.WarehouseID) entities.Quantity {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.sumLocked(productID, warehouseID)
}

// Reserve atomically decrements the pair's quantity by amount if at
// least that much is available, draining duplicate entries in order.
// It reports whether the reservation was applied; on false the ledger
// is unchanged.
func (l *StockLedger) Reserve(productID entities.ProductID, warehouseID entities.WarehouseID, amount entities.Quantity) bool {
	if amount <= 0 {
		return false
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.sumLocked(productID, warehouseID) < amount {
		return false
	}

	remaining := amount
	for i := range l.entries {
		entry := &l.entries[i]
		if entry.ProductID != productID || entry.WarehouseID != warehouseID {
			continue
		}

		take := entry.Quantity
		if take > remaining {
			take = remaining
		}
		entry.Quantity -= take
		remaining -= take

		if remaining == 0 {
			break
		}
	}
	return true
}

// GetAllInventory returns a snapshot copy of every inventory entry
func (l *StockLedger) GetAllInventory() ([]entities.InventoryItem, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return append([]entities.InventoryItem(nil), l.entries...), nil
}

// sumLocked sums the pair's quantity across duplicate entries.
// Callers must hold l.mu.
func (l *StockLedger) sumLocked(productID entities.ProductID, warehouseID entities.WarehouseID) entities.Quantity {
	var total entities.Quantity
	for i := range l.entries {
		if l.entries[i].ProductID == productID && l.entries[i].WarehouseID == warehouseID {
			total += l.entries[i].Quantity
		}
	}
	return total
}
