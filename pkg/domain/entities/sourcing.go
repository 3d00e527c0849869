package entities

import "fmt"

// OrderType represents how urgently an order must be sourced
type OrderType int

const (
	OrderStandard OrderType = iota
	OrderUrgent
)

// String method for OrderType enum
func (o OrderType) String() string {
	switch o {
	case OrderStandard:
		return "STANDARD"
	case OrderUrgent:
		return "URGENT"
	default:
		return "Unknown"
	}
}

// ParseOrderType converts a request string into an OrderType
func ParseOrderType(s string) (OrderType, error) {
	switch s {
	case "STANDARD":
		return OrderStandard, nil
	case "URGENT":
		return OrderUrgent, nil
	default:
		return OrderStandard, fmt.Errorf("unknown order type: %q", s)
	}
}

// RegionMatch is an explicit region filter for sourcing rules. It
// distinguishes "matches any region" from "matches exactly one region"
// at the type level, so no field ever means wildcard by being empty.
type RegionMatch struct {
	region Region
	any    bool
}

// ExactRegion returns a filter matching exactly the given region
func ExactRegion(region Region) RegionMatch {
	return RegionMatch{region: region}
}

// AnyRegion returns a filter matching every region
func AnyRegion() RegionMatch {
	return RegionMatch{any: true}
}

// Any reports whether the filter is a wildcard
func (m RegionMatch) Any() bool {
	return m.any
}

// Is reports whether the filter matches exactly the given region.
// A wildcard filter is never an exact match.
func (m RegionMatch) Is(region Region) bool {
	return !m.any && m.region == region
}

// String method for RegionMatch
func (m RegionMatch) String() string {
	if m.any {
		return "*"
	}
	return string(m.region)
}

// SourcingRule maps a (region, order type, part marking) context to a
// ranked list of warehouses to try, most-preferred first. Rules are
// immutable and evaluated in catalog order.
type SourcingRule struct {
	Region     RegionMatch
	OrderType  OrderType
	Marking    PartMarking
	Warehouses []WarehouseID
}

// NewSourcingRule creates a validated SourcingRule
func NewSourcingRule(region RegionMatch, orderType OrderType, marking PartMarking, warehouses []WarehouseID) (*SourcingRule, error) {
	if len(warehouses) == 0 {
		return nil, fmt.Errorf("sourcing rule must name at least one warehouse")
	}
	for _, id := range warehouses {
		if string(id) == "" {
			return nil, fmt.Errorf("sourcing rule warehouse id cannot be empty")
		}
	}

	return &SourcingRule{
		Region:     region,
		OrderType:  orderType,
		Marking:    marking,
		Warehouses: warehouses,
	}, nil
}

// SubstitutionRule declares a product acceptable as a stand-in for an
// unavailable original. Multiple rules may share an original; their
// catalog order defines substitute preference order.
type SubstitutionRule struct {
	OriginalID   ProductID
	SubstituteID ProductID
}

// NewSubstitutionRule creates a validated SubstitutionRule
func NewSubstitutionRule(originalID, substituteID ProductID) (*SubstitutionRule, error) {
	if string(originalID) == "" {
		return nil, fmt.Errorf("original product id cannot be empty")
	}
	if string(substituteID) == "" {
		return nil, fmt.Errorf("substitute product id cannot be empty")
	}
	if originalID == substituteID {
		return nil, fmt.Errorf("product %s cannot substitute for itself", originalID)
	}

	return &SubstitutionRule{
		OriginalID:   originalID,
		SubstituteID: substituteID,
	}, nil
}
