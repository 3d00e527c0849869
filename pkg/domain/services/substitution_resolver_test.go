package services

import (
	"reflect"
	"testing"

	"github.com/partflow/atp/pkg/domain/entities"
)

func TestSubstitutionResolver_SubstitutesFor(t *testing.T) {
	rules := []entities.SubstitutionRule{
		{OriginalID: "PART-C", SubstituteID: "PART-D"},
		{OriginalID: "PART-C", SubstituteID: "PART-F"},
		{OriginalID: "PART-D", SubstituteID: "PART-G"},
	}
	resolver := NewSubstitutionResolver(rules)

	got := resolver.SubstitutesFor("PART-C")
	expected := []entities.ProductID{"PART-D", "PART-F"}
	if !reflect.DeepEqual(got, expected) {
		t.Errorf("Expected substitutes %v in catalog order, got %v", expected, got)
	}
}

func TestSubstitutionResolver_NoTransitiveExpansion(t *testing.T) {
	rules := []entities.SubstitutionRule{
		{OriginalID: "PART-C", SubstituteID: "PART-D"},
		{OriginalID: "PART-D", SubstituteID: "PART-G"},
	}
	resolver := NewSubstitutionResolver(rules)

	got := resolver.SubstitutesFor("PART-C")
	if len(got) != 1 || got[0] != "PART-D" {
		t.Errorf("Expected only first-level substitute PART-D, got %v", got)
	}
}

func TestSubstitutionResolver_NoRule(t *testing.T) {
	resolver := NewSubstitutionResolver(nil)

	got := resolver.SubstitutesFor("PART-A")
	if len(got) != 0 {
		t.Errorf("Expected empty substitute list, got %v", got)
	}
}
