package atp

import (
	"context"
	"testing"
	"time"

	"github.com/partflow/atp/pkg/application/dto"
	"github.com/partflow/atp/pkg/application/services/shared"
	"github.com/partflow/atp/pkg/domain/entities"
	"github.com/partflow/atp/pkg/domain/repositories"
	"github.com/partflow/atp/pkg/domain/services"
	"github.com/partflow/atp/pkg/infrastructure/events"
	"github.com/partflow/atp/pkg/infrastructure/repositories/memory"
)

var testToday = time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

// newTestService builds a service over the demo catalog with the given
// inventory. The audit log and ledger are returned for assertions.
func newTestService(t *testing.T, inventory []*entities.InventoryItem) (*ATPService, *memory.StockLedger, *events.InMemoryStore) {
	t.Helper()

	products := memory.NewProductRepository(5)
	err := products.LoadProducts([]*entities.Product{
		{ID: "PART-A", Name: "Standard Part A", Marking: entities.MarkingNone},
		{ID: "PART-B", Name: "Critical Part B", Marking: entities.MarkingCritical},
		{ID: "PART-C", Name: "Obsolete Part C (use PART-D)", Marking: entities.MarkingObsolete},
		{ID: "PART-D", Name: "Substitute for Part C", Marking: entities.MarkingNone},
		{ID: "PART-E", Name: "Part with no stock", Marking: entities.MarkingNone},
	})
	if err != nil {
		t.Fatalf("Failed to load products: %v", err)
	}

	warehouses := memory.NewWarehouseRepository(5)
	err = warehouses.LoadWarehouses([]*entities.Warehouse{
		{ID: "WH-SH", Name: "Shanghai Warehouse", Region: "CN_EAST", LeadTimeDays: 2},
		{ID: "WH-BJ", Name: "Beijing Warehouse", Region: "CN_NORTH", LeadTimeDays: 3},
		{ID: "WH-GZ", Name: "Guangzhou Warehouse", Region: "CN_SOUTH", LeadTimeDays: 2},
		{ID: "WH-CD", Name: "Chengdu Warehouse", Region: "CN_WEST", LeadTimeDays: 4},
		{ID: "WH-GLOBAL", Name: "Global Backup Warehouse", Region: "", LeadTimeDays: 5},
	})
	if err != nil {
		t.Fatalf("Failed to load warehouses: %v", err)
	}

	customers := memory.NewCustomerRepository(2)
	err = customers.LoadCustomers([]*entities.Customer{
		{ID: "CUST-001", Name: "East China Customer", Region: "CN_EAST"},
		{ID: "CUST-002", Name: "North China Customer", Region: "CN_NORTH"},
	})
	if err != nil {
		t.Fatalf("Failed to load customers: %v", err)
	}

	ledger := memory.NewStockLedger()
	if err := ledger.LoadInventory(inventory); err != nil {
		t.Fatalf("Failed to load inventory: %v", err)
	}

	sourcingRules := []entities.SourcingRule{
		{Region: entities.ExactRegion("CN_EAST"), OrderType: entities.OrderStandard, Marking: entities.MarkingNone,
			Warehouses: []entities.WarehouseID{"WH-SH", "WH-GZ", "WH-BJ", "WH-GLOBAL"}},
		{Region: entities.ExactRegion("CN_EAST"), OrderType: entities.OrderUrgent, Marking: entities.MarkingNone,
			Warehouses: []entities.WarehouseID{"WH-SH", "WH-GZ", "WH-BJ", "WH-CD", "WH-GLOBAL"}},
		{Region: entities.ExactRegion("CN_NORTH"), OrderType: entities.OrderStandard, Marking: entities.MarkingNone,
			Warehouses: []entities.WarehouseID{"WH-BJ", "WH-SH", "WH-GLOBAL"}},
		{Region: entities.ExactRegion("CN_NORTH"), OrderType: entities.OrderUrgent, Marking: entities.MarkingNone,
			Warehouses: []entities.WarehouseID{"WH-BJ", "WH-SH", "WH-GZ", "WH-GLOBAL"}},
		{Region: entities.ExactRegion("CN_EAST"), OrderType: entities.OrderUrgent, Marking: entities.MarkingCritical,
			Warehouses: []entities.WarehouseID{"WH-SH", "WH-GLOBAL"}},
		{Region: entities.AnyRegion(), OrderType: entities.OrderStandard, Marking: entities.MarkingNone,
			Warehouses: []entities.WarehouseID{"WH-GLOBAL", "WH-SH", "WH-BJ"}},
	}
	substitutionRules := []entities.SubstitutionRule{
		{OriginalID: "PART-C", SubstituteID: "PART-D"},
	}

	audit := events.NewInMemoryStore()
	service := NewATPService(Config{
		Products:      products,
		Warehouses:    warehouses,
		Customers:     customers,
		Ledger:        ledger,
		Rules:         services.NewRuleResolver(sourcingRules, "WH-GLOBAL"),
		Substitutions: services.NewSubstitutionResolver(substitutionRules),
		Clock:         shared.FixedClock{Date: testToday},
		AuditLog:      audit,
	})

	return service, ledger, audit
}

func TestCheckAvailability_FullPrimaryFulfillment(t *testing.T) {
	service, _, _ := newTestService(t, []*entities.InventoryItem{
		{ProductID: "PART-A", WarehouseID: "WH-SH", Quantity: 100},
	})

	response, err := service.CheckAvailability(context.Background(), &dto.AtpRequest{
		CustomerID: "CUST-001",
		OrderType:  entities.OrderStandard,
		Items:      []entities.AtpRequestItem{{ProductID: "PART-A", RequestedQuantity: 60}},
	})
	if err != nil {
		t.Fatalf("CheckAvailability failed: %v", err)
	}

	if response.OverallStatus != entities.AllConfirmed {
		t.Errorf("Expected ALL_CONFIRMED, got %v", response.OverallStatus)
	}
	if response.OrderID == "" {
		t.Error("Expected a generated order id")
	}
	if len(response.Results) != 1 {
		t.Fatalf("Expected 1 result, got %d", len(response.Results))
	}

	result := response.Results[0]
	if result.FulfilledProductID != "PART-A" {
		t.Errorf("Expected fulfilled product PART-A, got %s", result.FulfilledProductID)
	}
	if result.ConfirmedQuantity != 60 {
		t.Errorf("Expected confirmed quantity 60, got %d", result.ConfirmedQuantity)
	}
	if result.SourceWarehouseID != "WH-SH" {
		t.Errorf("Expected source warehouse WH-SH, got %s", result.SourceWarehouseID)
	}
	if result.Message != "Fulfilled" {
		t.Errorf("Expected message Fulfilled, got %q", result.Message)
	}

	// Ship date is today plus the warehouse's lead time.
	expectedShipDate := testToday.AddDate(0, 0, 2)
	if result.EstimatedShipDate == nil || !result.EstimatedShipDate.Equal(expectedShipDate) {
		t.Errorf("Expected ship date %v, got %v", expectedShipDate, result.EstimatedShipDate)
	}
}

func TestCheckAvailability_PartialFulfillmentNoSplit(t *testing.T) {
	// 120 requested, only 100 at the top-ranked warehouse and 50 at the
	// next. The engine must not split demand across warehouses.
	service, ledger, _ := newTestService(t, []*entities.InventoryItem{
		{ProductID: "PART-A", WarehouseID: "WH-SH", Quantity: 100},
		{ProductID: "PART-A", WarehouseID: "WH-BJ", Quantity: 50},
	})

	response, err := service.CheckAvailability(context.Background(), &dto.AtpRequest{
		CustomerID: "CUST-001",
		OrderType:  entities.OrderStandard,
		Items:      []entities.AtpRequestItem{{ProductID: "PART-A", RequestedQuantity: 120}},
	})
	if err != nil {
		t.Fatalf("CheckAvailability failed: %v", err)
	}

	if response.OverallStatus != entities.PartiallyConfirmed {
		t.Errorf("Expected PARTIALLY_CONFIRMED, got %v", response.OverallStatus)
	}

	result := response.Results[0]
	if result.ConfirmedQuantity != 100 {
		t.Errorf("Expected confirmed quantity 100, got %d", result.ConfirmedQuantity)
	}
	if result.SourceWarehouseID != "WH-SH" {
		t.Errorf("Expected source warehouse WH-SH, got %s", result.SourceWarehouseID)
	}
	if result.Message != "Partially fulfilled" {
		t.Errorf("Expected message Partially fulfilled, got %q", result.Message)
	}

	// The second warehouse's stock must be untouched.
	if got := ledger.GetStock("PART-A", "WH-BJ"); got != 50 {
		t.Errorf("Expected WH-BJ stock untouched at 50, got %d", got)
	}
}

func TestCheckAvailability_Substitution(t *testing.T) {
	// PART-C has no stock anywhere; PART-D substitutes with plenty.
	service, _, _ := newTestService(t, []*entities.InventoryItem{
		{ProductID: "PART-D", WarehouseID: "WH-SH", Quantity: 200},
	})

	response, err := service.CheckAvailability(context.Background(), &dto.AtpRequest{
		CustomerID: "CUST-001",
		OrderType:  entities.OrderStandard,
		Items:      []entities.AtpRequestItem{{ProductID: "PART-C", RequestedQuantity: 30}},
	})
	if err != nil {
		t.Fatalf("CheckAvailability failed: %v", err)
	}

	result := response.Results[0]
	if result.OriginalProductID != "PART-C" {
		t.Errorf("Expected original product PART-C, got %s", result.OriginalProductID)
	}
	if result.FulfilledProductID != "PART-D" {
		t.Errorf("Expected substitute PART-D, got %s", result.FulfilledProductID)
	}
	if result.ConfirmedQuantity != 30 {
		t.Errorf("Expected confirmed quantity 30, got %d", result.ConfirmedQuantity)
	}
	if result.Message != "Fulfilled with substitute PART-D" {
		t.Errorf("Expected substitute message, got %q", result.Message)
	}
}

func TestCheckAvailability_SubstituteShortFill(t *testing.T) {
	// The substitute's stock is below the requested quantity. The
	// substitute message still names the substitute; it is not
	// downgraded to the partial message.
	service, _, _ := newTestService(t, []*entities.InventoryItem{
		{ProductID: "PART-D", WarehouseID: "WH-SH", Quantity: 20},
	})

	response, err := service.CheckAvailability(context.Background(), &dto.AtpRequest{
		CustomerID: "CUST-001",
		OrderType:  entities.OrderStandard,
		Items:      []entities.AtpRequestItem{{ProductID: "PART-C", RequestedQuantity: 30}},
	})
	if err != nil {
		t.Fatalf("CheckAvailability failed: %v", err)
	}

	result := response.Results[0]
	if result.FulfilledProductID != "PART-D" {
		t.Errorf("Expected substitute PART-D, got %s", result.FulfilledProductID)
	}
	if result.ConfirmedQuantity != 20 {
		t.Errorf("Expected confirmed quantity 20, got %d", result.ConfirmedQuantity)
	}
	if result.Message != "Fulfilled with substitute PART-D" {
		t.Errorf("Expected substitute message, got %q", result.Message)
	}
	if response.OverallStatus != entities.PartiallyConfirmed {
		t.Errorf("Expected PARTIALLY_CONFIRMED, got %v", response.OverallStatus)
	}
}

func TestCheckAvailability_TotalExhaustion(t *testing.T) {
	service, _, _ := newTestService(t, nil)

	response, err := service.CheckAvailability(context.Background(), &dto.AtpRequest{
		CustomerID: "CUST-001",
		OrderType:  entities.OrderStandard,
		Items:      []entities.AtpRequestItem{{ProductID: "PART-E", RequestedQuantity: 5}},
	})
	if err != nil {
		t.Fatalf("CheckAvailability failed: %v", err)
	}

	if response.OverallStatus != entities.NoneConfirmed {
		t.Errorf("Expected NONE_CONFIRMED, got %v", response.OverallStatus)
	}

	result := response.Results[0]
	if result.FulfilledProductID != "" {
		t.Errorf("Expected no fulfilled product, got %s", result.FulfilledProductID)
	}
	if result.ConfirmedQuantity != 0 {
		t.Errorf("Expected confirmed quantity 0, got %d", result.ConfirmedQuantity)
	}
	if result.SourceWarehouseID != "" {
		t.Errorf("Expected no source warehouse, got %s", result.SourceWarehouseID)
	}
	if result.EstimatedShipDate != nil {
		t.Errorf("Expected no ship date, got %v", result.EstimatedShipDate)
	}
	expected := "No stock available for PART-E or its substitutes."
	if result.Message != expected {
		t.Errorf("Expected message %q, got %q", expected, result.Message)
	}
}

func TestCheckAvailability_UnknownCustomer(t *testing.T) {
	service, ledger, _ := newTestService(t, []*entities.InventoryItem{
		{ProductID: "PART-A", WarehouseID: "WH-SH", Quantity: 100},
	})

	response, err := service.CheckAvailability(context.Background(), &dto.AtpRequest{
		CustomerID: "CUST-404",
		OrderType:  entities.OrderStandard,
		Items:      []entities.AtpRequestItem{{ProductID: "PART-A", RequestedQuantity: 10}},
	})
	if err != nil {
		t.Fatalf("CheckAvailability failed: %v", err)
	}

	if response.OverallStatus != entities.CustomerNotFound {
		t.Errorf("Expected CUSTOMER_NOT_FOUND, got %v", response.OverallStatus)
	}
	if len(response.Results) != 0 {
		t.Errorf("Expected empty results, got %d", len(response.Results))
	}

	// The ledger must be untouched.
	if got := ledger.GetStock("PART-A", "WH-SH"); got != 100 {
		t.Errorf("Expected stock untouched at 100, got %d", got)
	}
}

func TestCheckAvailability_UnknownProduct(t *testing.T) {
	service, _, _ := newTestService(t, []*entities.InventoryItem{
		{ProductID: "PART-A", WarehouseID: "WH-SH", Quantity: 100},
	})

	response, err := service.CheckAvailability(context.Background(), &dto.AtpRequest{
		CustomerID: "CUST-001",
		OrderType:  entities.OrderStandard,
		Items: []entities.AtpRequestItem{
			{ProductID: "PART-NOPE", RequestedQuantity: 10},
			{ProductID: "PART-A", RequestedQuantity: 10},
		},
	})
	if err != nil {
		t.Fatalf("CheckAvailability failed: %v", err)
	}

	if response.OverallStatus != entities.PartiallyConfirmed {
		t.Errorf("Expected PARTIALLY_CONFIRMED, got %v", response.OverallStatus)
	}

	notFound := response.Results[0]
	if notFound.Message != "PRODUCT_NOT_FOUND" {
		t.Errorf("Expected PRODUCT_NOT_FOUND message, got %q", notFound.Message)
	}
	if notFound.ConfirmedQuantity != 0 {
		t.Errorf("Expected confirmed quantity 0, got %d", notFound.ConfirmedQuantity)
	}
}

func TestCheckAvailability_NoItemsRequested(t *testing.T) {
	service, _, _ := newTestService(t, nil)

	response, err := service.CheckAvailability(context.Background(), &dto.AtpRequest{
		CustomerID: "CUST-001",
		OrderType:  entities.OrderStandard,
	})
	if err != nil {
		t.Fatalf("CheckAvailability failed: %v", err)
	}

	if response.OverallStatus != entities.NoItemsRequested {
		t.Errorf("Expected NO_ITEMS_REQUESTED, got %v", response.OverallStatus)
	}
}

func TestCheckAvailability_MarkingSpecificRule(t *testing.T) {
	// Critical part, urgent order from an east-China customer: the
	// marking-specific rule ranks WH-SH then WH-GLOBAL only. With no
	// WH-SH stock the backup site must serve it.
	service, _, _ := newTestService(t, []*entities.InventoryItem{
		{ProductID: "PART-B", WarehouseID: "WH-GLOBAL", Quantity: 5},
		{ProductID: "PART-B", WarehouseID: "WH-BJ", Quantity: 50},
	})

	response, err := service.CheckAvailability(context.Background(), &dto.AtpRequest{
		CustomerID: "CUST-001",
		OrderType:  entities.OrderUrgent,
		Items:      []entities.AtpRequestItem{{ProductID: "PART-B", RequestedQuantity: 5}},
	})
	if err != nil {
		t.Fatalf("CheckAvailability failed: %v", err)
	}

	result := response.Results[0]
	if result.SourceWarehouseID != "WH-GLOBAL" {
		t.Errorf("Expected source warehouse WH-GLOBAL, got %s", result.SourceWarehouseID)
	}
	// WH-BJ is not in the marking-specific ranked list and must never
	// be considered, even though it holds stock.
	expectedShipDate := testToday.AddDate(0, 0, 5)
	if result.EstimatedShipDate == nil || !result.EstimatedShipDate.Equal(expectedShipDate) {
		t.Errorf("Expected ship date %v, got %v", expectedShipDate, result.EstimatedShipDate)
	}
}

func TestCheckAvailability_NoRollbackAcrossItems(t *testing.T) {
	// The first item reserves successfully; the second finds nothing.
	// The first reservation stays committed.
	service, ledger, _ := newTestService(t, []*entities.InventoryItem{
		{ProductID: "PART-A", WarehouseID: "WH-SH", Quantity: 100},
	})

	response, err := service.CheckAvailability(context.Background(), &dto.AtpRequest{
		CustomerID: "CUST-001",
		OrderType:  entities.OrderStandard,
		Items: []entities.AtpRequestItem{
			{ProductID: "PART-A", RequestedQuantity: 40},
			{ProductID: "PART-E", RequestedQuantity: 10},
		},
	})
	if err != nil {
		t.Fatalf("CheckAvailability failed: %v", err)
	}

	if response.OverallStatus != entities.PartiallyConfirmed {
		t.Errorf("Expected PARTIALLY_CONFIRMED, got %v", response.OverallStatus)
	}
	if got := ledger.GetStock("PART-A", "WH-SH"); got != 60 {
		t.Errorf("Expected first reservation to stay committed (stock 60), got %d", got)
	}
}

func TestCheckAvailability_AuditTrail(t *testing.T) {
	service, _, audit := newTestService(t, []*entities.InventoryItem{
		{ProductID: "PART-A", WarehouseID: "WH-SH", Quantity: 100},
	})

	response, err := service.CheckAvailability(context.Background(), &dto.AtpRequest{
		CustomerID: "CUST-001",
		OrderType:  entities.OrderStandard,
		Items:      []entities.AtpRequestItem{{ProductID: "PART-A", RequestedQuantity: 60}},
	})
	if err != nil {
		t.Fatalf("CheckAvailability failed: %v", err)
	}

	recorded, err := audit.ReadEvents(response.OrderID, 1)
	if err != nil {
		t.Fatalf("Failed to read audit events: %v", err)
	}

	var reserved, checked int
	for _, event := range recorded {
		switch event.Type() {
		case events.StockReservedEvent:
			reserved++
			data := event.Data().(events.StockReserved)
			if data.Quantity != 60 || data.WarehouseID != "WH-SH" {
				t.Errorf("Unexpected reservation event data: %+v", data)
			}
		case events.AvailabilityCheckedEvent:
			checked++
		}
	}
	if reserved != 1 {
		t.Errorf("Expected exactly 1 stock.reserved event, got %d", reserved)
	}
	if checked != 1 {
		t.Errorf("Expected exactly 1 atp.checked event, got %d", checked)
	}
}

func TestCheckAvailability_SkipsUnknownRankedWarehouse(t *testing.T) {
	// The ranked list names a warehouse absent from the catalog. The
	// cascade must skip it and continue to the next ranked warehouse,
	// even though the ledger holds stock under the unknown id.
	products := memory.NewProductRepository(1)
	_ = products.LoadProducts([]*entities.Product{
		{ID: "PART-A", Name: "Standard Part A", Marking: entities.MarkingNone},
	})
	warehouses := memory.NewWarehouseRepository(1)
	_ = warehouses.LoadWarehouses([]*entities.Warehouse{
		{ID: "WH-SH", Name: "Shanghai Warehouse", Region: "CN_EAST", LeadTimeDays: 2},
	})
	customers := memory.NewCustomerRepository(1)
	_ = customers.LoadCustomers([]*entities.Customer{
		{ID: "CUST-001", Name: "East China Customer", Region: "CN_EAST"},
	})

	ledger := memory.NewStockLedger()
	err := ledger.LoadInventory([]*entities.InventoryItem{
		{ProductID: "PART-A", WarehouseID: "WH-GHOST", Quantity: 500},
		{ProductID: "PART-A", WarehouseID: "WH-SH", Quantity: 100},
	})
	if err != nil {
		t.Fatalf("Failed to load inventory: %v", err)
	}

	rules := []entities.SourcingRule{
		{Region: entities.ExactRegion("CN_EAST"), OrderType: entities.OrderStandard, Marking: entities.MarkingNone,
			Warehouses: []entities.WarehouseID{"WH-GHOST", "WH-SH"}},
	}

	service := NewATPService(Config{
		Products:      products,
		Warehouses:    warehouses,
		Customers:     customers,
		Ledger:        ledger,
		Rules:         services.NewRuleResolver(rules, "WH-GLOBAL"),
		Substitutions: services.NewSubstitutionResolver(nil),
		Clock:         shared.FixedClock{Date: testToday},
	})

	response, err := service.CheckAvailability(context.Background(), &dto.AtpRequest{
		CustomerID: "CUST-001",
		OrderType:  entities.OrderStandard,
		Items:      []entities.AtpRequestItem{{ProductID: "PART-A", RequestedQuantity: 50}},
	})
	if err != nil {
		t.Fatalf("CheckAvailability failed: %v", err)
	}

	result := response.Results[0]
	if result.SourceWarehouseID != "WH-SH" {
		t.Errorf("Expected source warehouse WH-SH, got %s", result.SourceWarehouseID)
	}
	if result.ConfirmedQuantity != 50 {
		t.Errorf("Expected confirmed quantity 50, got %d", result.ConfirmedQuantity)
	}

	// The stock filed under the unknown id must be untouched.
	if got := ledger.GetStock("PART-A", "WH-GHOST"); got != 500 {
		t.Errorf("Expected unknown-warehouse stock untouched at 500, got %d", got)
	}
}

// racingLedger makes reservations fail at designated warehouses even
// though reads report stock, simulating a lost race to a concurrent
// request.
type racingLedger struct {
	repositories.StockLedger
	loseAt map[entities.WarehouseID]bool
}

func (l *racingLedger) Reserve(productID entities.ProductID, warehouseID entities.WarehouseID, amount entities.Quantity) bool {
	if l.loseAt[warehouseID] {
		return false
	}
	return l.StockLedger.Reserve(productID, warehouseID, amount)
}

func TestCheckAvailability_ContinuesCascadeOnLostRace(t *testing.T) {
	ledger := memory.NewStockLedger()
	err := ledger.LoadInventory([]*entities.InventoryItem{
		{ProductID: "PART-A", WarehouseID: "WH-SH", Quantity: 100},
		{ProductID: "PART-A", WarehouseID: "WH-GZ", Quantity: 80},
	})
	if err != nil {
		t.Fatalf("Failed to load inventory: %v", err)
	}

	products := memory.NewProductRepository(1)
	_ = products.LoadProducts([]*entities.Product{
		{ID: "PART-A", Name: "Standard Part A", Marking: entities.MarkingNone},
	})
	warehouses := memory.NewWarehouseRepository(2)
	_ = warehouses.LoadWarehouses([]*entities.Warehouse{
		{ID: "WH-SH", Name: "Shanghai Warehouse", Region: "CN_EAST", LeadTimeDays: 2},
		{ID: "WH-GZ", Name: "Guangzhou Warehouse", Region: "CN_SOUTH", LeadTimeDays: 2},
	})
	customers := memory.NewCustomerRepository(1)
	_ = customers.LoadCustomers([]*entities.Customer{
		{ID: "CUST-001", Name: "East China Customer", Region: "CN_EAST"},
	})

	rules := []entities.SourcingRule{
		{Region: entities.ExactRegion("CN_EAST"), OrderType: entities.OrderStandard, Marking: entities.MarkingNone,
			Warehouses: []entities.WarehouseID{"WH-SH", "WH-GZ"}},
	}

	service := NewATPService(Config{
		Products:      products,
		Warehouses:    warehouses,
		Customers:     customers,
		Ledger:        &racingLedger{StockLedger: ledger, loseAt: map[entities.WarehouseID]bool{"WH-SH": true}},
		Rules:         services.NewRuleResolver(rules, "WH-GLOBAL"),
		Substitutions: services.NewSubstitutionResolver(nil),
		Clock:         shared.FixedClock{Date: testToday},
	})

	response, err := service.CheckAvailability(context.Background(), &dto.AtpRequest{
		CustomerID: "CUST-001",
		OrderType:  entities.OrderStandard,
		Items:      []entities.AtpRequestItem{{ProductID: "PART-A", RequestedQuantity: 50}},
	})
	if err != nil {
		t.Fatalf("CheckAvailability failed: %v", err)
	}

	result := response.Results[0]
	if result.SourceWarehouseID != "WH-GZ" {
		t.Errorf("Expected cascade to continue to WH-GZ after lost race, got %s", result.SourceWarehouseID)
	}
	if result.ConfirmedQuantity != 50 {
		t.Errorf("Expected confirmed quantity 50, got %d", result.ConfirmedQuantity)
	}
}

func TestCheckAvailability_NilRequest(t *testing.T) {
	service, _, _ := newTestService(t, nil)

	if _, err := service.CheckAvailability(context.Background(), nil); err == nil {
		t.Error("Expected error for nil request")
	}
}

func TestCheckAvailability_RepeatedItemsDrainStock(t *testing.T) {
	// Two lines for the same product in one request: the second line
	// sees the stock left over by the first.
	service, _, _ := newTestService(t, []*entities.InventoryItem{
		{ProductID: "PART-A", WarehouseID: "WH-SH", Quantity: 100},
	})

	response, err := service.CheckAvailability(context.Background(), &dto.AtpRequest{
		CustomerID: "CUST-001",
		OrderType:  entities.OrderStandard,
		Items: []entities.AtpRequestItem{
			{ProductID: "PART-A", RequestedQuantity: 70},
			{ProductID: "PART-A", RequestedQuantity: 70},
		},
	})
	if err != nil {
		t.Fatalf("CheckAvailability failed: %v", err)
	}

	first, second := response.Results[0], response.Results[1]
	if first.ConfirmedQuantity != 70 {
		t.Errorf("Expected first line confirmed 70, got %d", first.ConfirmedQuantity)
	}
	if second.ConfirmedQuantity != 30 {
		t.Errorf("Expected second line confirmed 30, got %d", second.ConfirmedQuantity)
	}
	if second.Message != "Partially fulfilled" {
		t.Errorf("Expected second line partially fulfilled, got %q", second.Message)
	}

	total := first.ConfirmedQuantity + second.ConfirmedQuantity
	if total > 100 {
		t.Errorf("Confirmed total %d exceeds available stock 100", total)
	}
}
