package services

import "github.com/partflow/atp/pkg/domain/entities"

// SubstitutionResolver answers substitute lookups over an immutable
// substitution rule catalog. Only first-level substitutes are resolved:
// a substitute's own substitutes are never expanded.
type SubstitutionResolver struct {
	substitutes map[entities.ProductID][]entities.ProductID
}

// NewSubstitutionResolver creates a resolver over the given rule catalog.
// Catalog order defines substitute preference order.
func NewSubstitutionResolver(rules []entities.SubstitutionRule) *SubstitutionResolver {
	substitutes := make(map[entities.ProductID][]entities.ProductID, len(rules))
	for _, rule := range rules {
		substitutes[rule.OriginalID] = append(substitutes[rule.OriginalID], rule.SubstituteID)
	}
	return &SubstitutionResolver{substitutes: substitutes}
}

// SubstitutesFor returns the ordered substitutes for a product, or an
// empty list when no substitution rule exists for it.
func (r *SubstitutionResolver) SubstitutesFor(id entities.ProductID) []entities.ProductID {
	return append([]entities.ProductID(nil), r.substitutes[id]...)
}
