package entities

import "fmt"

// ProductID uniquely identifies a product in the catalog
type ProductID string

// PartMarking classifies a product for sourcing policy purposes
type PartMarking int

const (
	MarkingNone PartMarking = iota
	MarkingCritical
	MarkingObsolete
)

// String method for PartMarking enum
func (m PartMarking) String() string {
	switch m {
	case MarkingNone:
		return "NONE"
	case MarkingCritical:
		return "CRITICAL"
	case MarkingObsolete:
		return "OBSOLETE"
	default:
		return "Unknown"
	}
}

// ParsePartMarking converts a catalog string into a PartMarking.
// An empty string parses as MarkingNone, the generic marking.
func ParsePartMarking(s string) (PartMarking, error) {
	switch s {
	case "", "NONE":
		return MarkingNone, nil
	case "CRITICAL":
		return MarkingCritical, nil
	case "OBSOLETE":
		return MarkingObsolete, nil
	default:
		return MarkingNone, fmt.Errorf("unknown part marking: %q", s)
	}
}

// Product represents a sellable product in the catalog.
// Products are immutable after catalog load.
type Product struct {
	ID      ProductID
	Name    string
	Marking PartMarking
}

// NewProduct creates a validated Product
func NewProduct(id ProductID, name string, marking PartMarking) (*Product, error) {
	if string(id) == "" {
		return nil, fmt.Errorf("product id cannot be empty")
	}
	if name == "" {
		return nil, fmt.Errorf("product name cannot be empty")
	}

	return &Product{
		ID:      id,
		Name:    name,
		Marking: marking,
	}, nil
}
