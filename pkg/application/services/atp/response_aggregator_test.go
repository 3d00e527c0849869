package atp

import (
	"testing"

	"github.com/partflow/atp/pkg/domain/entities"
)

func TestOverallStatus(t *testing.T) {
	item := func(requested, confirmed entities.Quantity) entities.AtpResultItem {
		return entities.AtpResultItem{RequestedQuantity: requested, ConfirmedQuantity: confirmed}
	}

	tests := []struct {
		name     string
		results  []entities.AtpResultItem
		expected entities.OrderStatus
	}{
		{"no items", nil, entities.NoItemsRequested},
		{"all fully confirmed", []entities.AtpResultItem{item(10, 10), item(5, 5)}, entities.AllConfirmed},
		{"one line rejected", []entities.AtpResultItem{item(10, 10), item(5, 0)}, entities.PartiallyConfirmed},
		{"all rejected", []entities.AtpResultItem{item(10, 0), item(5, 0)}, entities.NoneConfirmed},
		{"single full line", []entities.AtpResultItem{item(10, 10)}, entities.AllConfirmed},
		{"single rejected line", []entities.AtpResultItem{item(10, 0)}, entities.NoneConfirmed},
		{"single short line", []entities.AtpResultItem{item(120, 100)}, entities.PartiallyConfirmed},
		{"full and short lines", []entities.AtpResultItem{item(10, 10), item(120, 100)}, entities.PartiallyConfirmed},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got := OverallStatus(test.results)
			if got != test.expected {
				t.Errorf("OverallStatus(%v) = %v, expected %v", test.results, got, test.expected)
			}
		})
	}
}
