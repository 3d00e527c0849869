package entities

import "fmt"

// WarehouseID uniquely identifies a warehouse in the catalog
type WarehouseID string

// Region identifies a geographic sourcing region, e.g. "CN_EAST".
// Regions are catalog data, not a closed enum.
type Region string

// Warehouse represents a stocking location.
// A warehouse with an empty Region is a region-agnostic backup site.
// Warehouses are immutable after catalog load.
type Warehouse struct {
	ID           WarehouseID
	Name         string
	Region       Region
	LeadTimeDays int
}

// Regional reports whether the warehouse is assigned to a region
func (w *Warehouse) Regional() bool {
	return w.Region != ""
}

// NewWarehouse creates a validated Warehouse
func NewWarehouse(id WarehouseID, name string, region Region, leadTimeDays int) (*Warehouse, error) {
	if string(id) == "" {
		return nil, fmt.Errorf("warehouse id cannot be empty")
	}
	if name == "" {
		return nil, fmt.Errorf("warehouse name cannot be empty")
	}
	if leadTimeDays < 0 {
		return nil, fmt.Errorf("lead time cannot be negative, got %d", leadTimeDays)
	}

	return &Warehouse{
		ID:           id,
		Name:         name,
		Region:       region,
		LeadTimeDays: leadTimeDays,
	}, nil
}
