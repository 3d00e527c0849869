// Package seed provides the built-in demonstration catalog used when no
// scenario directory is supplied.
package seed

import (
	"github.com/partflow/atp/pkg/domain/entities"
	"github.com/partflow/atp/pkg/infrastructure/repositories/csv"
)

// BackupWarehouseID is the region-agnostic site of last resort used
// when no sourcing rule matches.
const BackupWarehouseID = entities.WarehouseID("WH-GLOBAL")

// Demo returns the demonstration catalog: five products across four
// regional warehouses plus a global backup, two customers, six sourcing
// rules and one substitution rule.
func Demo() *csv.Scenario {
	return &csv.Scenario{
		Products: []*entities.Product{
			{ID: "PART-A", Name: "Standard Part A", Marking: entities.MarkingNone},
			{ID: "PART-B", Name: "Critical Part B", Marking: entities.MarkingCritical},
			{ID: "PART-C", Name: "Obsolete Part C (use PART-D)", Marking: entities.MarkingObsolete},
			{ID: "PART-D", Name: "Substitute for Part C", Marking: entities.MarkingNone},
			{ID: "PART-E", Name: "Part with no stock", Marking: entities.MarkingNone},
		},
		Warehouses: []*entities.Warehouse{
			{ID: "WH-SH", Name: "Shanghai Warehouse", Region: "CN_EAST", LeadTimeDays: 2},
			{ID: "WH-BJ", Name: "Beijing Warehouse", Region: "CN_NORTH", LeadTimeDays: 3},
			{ID: "WH-GZ", Name: "Guangzhou Warehouse", Region: "CN_SOUTH", LeadTimeDays: 2},
			{ID: "WH-CD", Name: "Chengdu Warehouse", Region: "CN_WEST", LeadTimeDays: 4},
			{ID: BackupWarehouseID, Name: "Global Backup Warehouse", Region: "", LeadTimeDays: 5},
		},
		Customers: []*entities.Customer{
			{ID: "CUST-001", Name: "East China Customer", Region: "CN_EAST"},
			{ID: "CUST-002", Name: "North China Customer", Region: "CN_NORTH"},
		},
		Inventory: []*entities.InventoryItem{
			{ProductID: "PART-A", WarehouseID: "WH-SH", Quantity: 100},
			{ProductID: "PART-A", WarehouseID: "WH-BJ", Quantity: 50},
			{ProductID: "PART-B", WarehouseID: "WH-SH", Quantity: 20},
			{ProductID: "PART-B", WarehouseID: BackupWarehouseID, Quantity: 5},
			{ProductID: "PART-D", WarehouseID: "WH-SH", Quantity: 200},
			{ProductID: "PART-D", WarehouseID: "WH-GZ", Quantity: 150},
		},
		SourcingRules: []entities.SourcingRule{
			{Region: entities.ExactRegion("CN_EAST"), OrderType: entities.OrderStandard, Marking: entities.MarkingNone,
				Warehouses: []entities.WarehouseID{"WH-SH", "WH-GZ", "WH-BJ", BackupWarehouseID}},
			{Region: entities.ExactRegion("CN_EAST"), OrderType: entities.OrderUrgent, Marking: entities.MarkingNone,
				Warehouses: []entities.WarehouseID{"WH-SH", "WH-GZ", "WH-BJ", "WH-CD", BackupWarehouseID}},
			{Region: entities.ExactRegion("CN_NORTH"), OrderType: entities.OrderStandard, Marking: entities.MarkingNone,
				Warehouses: []entities.WarehouseID{"WH-BJ", "WH-SH", BackupWarehouseID}},
			{Region: entities.ExactRegion("CN_NORTH"), OrderType: entities.OrderUrgent, Marking: entities.MarkingNone,
				Warehouses: []entities.WarehouseID{"WH-BJ", "WH-SH", "WH-GZ", BackupWarehouseID}},
			{Region: entities.ExactRegion("CN_EAST"), OrderType: entities.OrderUrgent, Marking: entities.MarkingCritical,
				Warehouses: []entities.WarehouseID{"WH-SH", BackupWarehouseID}},
			{Region: entities.AnyRegion(), OrderType: entities.OrderStandard, Marking: entities.MarkingNone,
				Warehouses: []entities.WarehouseID{BackupWarehouseID, "WH-SH", "WH-BJ"}},
		},
		SubstitutionRules: []entities.SubstitutionRule{
			{OriginalID: "PART-C", SubstituteID: "PART-D"},
		},
	}
}
