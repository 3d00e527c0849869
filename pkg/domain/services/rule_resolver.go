package services

import "github.com/partflow/atp/pkg/domain/entities"

// ResolutionQuery is the request context a ranked warehouse list is
// resolved for.
type ResolutionQuery struct {
	Region    entities.Region
	OrderType entities.OrderType
	Marking   entities.PartMarking
}

// resolutionTier is one priority level of the sourcing cascade. Tiers
// are evaluated top to bottom; within a tier the first rule in catalog
// order that matches wins.
type resolutionTier struct {
	name    string
	matches func(rule entities.SourcingRule, q ResolutionQuery) bool
}

// RuleResolver resolves ranked warehouse candidate lists from an
// immutable sourcing rule catalog. Resolution is a pure function of the
// catalog and the query: identical queries against an unchanged catalog
// always yield identical ordered lists.
type RuleResolver struct {
	rules  []entities.SourcingRule
	backup entities.WarehouseID
	tiers  []resolutionTier
}

// NewRuleResolver creates a resolver over the given rule catalog.
// backup is the designated global backup warehouse returned when no
// rule matches any tier.
func NewRuleResolver(rules []entities.SourcingRule, backup entities.WarehouseID) *RuleResolver {
	r := &RuleResolver{
		rules:  append([]entities.SourcingRule(nil), rules...),
		backup: backup,
	}

	r.tiers = []resolutionTier{
		{
			name: "exact",
			matches: func(rule entities.SourcingRule, q ResolutionQuery) bool {
				return rule.Region.Is(q.Region) &&
					rule.OrderType == q.OrderType &&
					rule.Marking == q.Marking
			},
		},
		{
			// Region and order type match, rule carries the generic
			// marking. Covers queries for marked parts that have no
			// marking-specific rule.
			name: "generic-marking",
			matches: func(rule entities.SourcingRule, q ResolutionQuery) bool {
				return rule.Region.Is(q.Region) &&
					rule.OrderType == q.OrderType &&
					rule.Marking == entities.MarkingNone
			},
		},
		{
			// Designated fallback: wildcard region, STANDARD, generic
			// marking. Applies irrespective of the query's region and
			// order type.
			name: "fallback",
			matches: func(rule entities.SourcingRule, q ResolutionQuery) bool {
				return rule.Region.Any() &&
					rule.OrderType == entities.OrderStandard &&
					rule.Marking == entities.MarkingNone
			},
		},
	}

	return r
}

// Resolve returns the ranked warehouse candidate list for the given
// request context, most-preferred first. If no rule matches any tier it
// returns a single-element list naming the global backup warehouse.
func (r *RuleResolver) Resolve(region entities.Region, orderType entities.OrderType, marking entities.PartMarking) []entities.WarehouseID {
	q := ResolutionQuery{
		Region:    region,
		OrderType: orderType,
		Marking:   marking,
	}

	for _, tier := range r.tiers {
		for _, rule := range r.rules {
			if tier.matches(rule, q) {
				return append([]entities.WarehouseID(nil), rule.Warehouses...)
			}
		}
	}

	return []entities.WarehouseID{r.backup}
}
