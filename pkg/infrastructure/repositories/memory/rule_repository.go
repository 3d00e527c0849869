package memory

import (
	"github.com/partflow/atp/pkg/domain/entities"
	"github.com/partflow/atp/pkg/domain/repositories"
)

// RuleRepository provides in-memory storage for sourcing and
// substitution rules, preserving catalog insertion order.
type RuleRepository struct {
	sourcingRules     []entities.SourcingRule
	substitutionRules []entities.SubstitutionRule
}

// NewRuleRepository creates a new in-memory rule repository
func NewRuleRepository() *RuleRepository {
	return &RuleRepository{}
}

// Verify interface compliance
var _ repositories.RuleRepository = (*RuleRepository)(nil)

// LoadSourcingRules appends sourcing rules in catalog order
func (r *RuleRepository) LoadSourcingRules(rules []entities.SourcingRule) error {
	r.sourcingRules = append(r.sourcingRules, rules...)
	return nil
}

// LoadSubstitutionRules appends substitution rules in catalog order
func (r *RuleRepository) LoadSubstitutionRules(rules []entities.SubstitutionRule) error {
	r.substitutionRules = append(r.substitutionRules, rules...)
	return nil
}

// GetSourcingRules returns all sourcing rules in catalog order
func (r *RuleRepository) GetSourcingRules() ([]entities.SourcingRule, error) {
	return append([]entities.SourcingRule(nil), r.sourcingRules...), nil
}

// GetSubstitutionRules returns all substitution rules in catalog order
func (r *RuleRepository) GetSubstitutionRules() ([]entities.SubstitutionRule, error) {
	return append([]entities.SubstitutionRule(nil), r.substitutionRules...), nil
}
