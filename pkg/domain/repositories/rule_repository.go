package repositories

import "github.com/partflow/atp/pkg/domain/entities"

// RuleRepository provides access to the sourcing and substitution rule
// catalogs. Rule order is catalog insertion order and is significant:
// it breaks ties during resolution.
type RuleRepository interface {
	GetSourcingRules() ([]entities.SourcingRule, error)
	GetSubstitutionRules() ([]entities.SubstitutionRule, error)
	LoadSourcingRules(rules []entities.SourcingRule) error
	LoadSubstitutionRules(rules []entities.SubstitutionRule) error
}
