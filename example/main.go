package main

import (
	"context"
	"fmt"

	"github.com/partflow/atp/pkg/application/dto"
	"github.com/partflow/atp/pkg/application/services/atp"
	"github.com/partflow/atp/pkg/domain/entities"
	"github.com/partflow/atp/pkg/domain/services"
	"github.com/partflow/atp/pkg/infrastructure/repositories/memory"
	"github.com/partflow/atp/pkg/infrastructure/seed"
)

func main() {
	ctx := context.Background()

	catalog := seed.Demo()

	// Create repositories
	products := memory.NewProductRepository(len(catalog.Products))
	warehouses := memory.NewWarehouseRepository(len(catalog.Warehouses))
	customers := memory.NewCustomerRepository(len(catalog.Customers))
	ledger := memory.NewStockLedger()

	must(products.LoadProducts(catalog.Products))
	must(warehouses.LoadWarehouses(catalog.Warehouses))
	must(customers.LoadCustomers(catalog.Customers))
	must(ledger.LoadInventory(catalog.Inventory))

	// Create the allocation service
	service := atp.NewATPService(atp.Config{
		Products:      products,
		Warehouses:    warehouses,
		Customers:     customers,
		Ledger:        ledger,
		Rules:         services.NewRuleResolver(catalog.SourcingRules, seed.BackupWarehouseID),
		Substitutions: services.NewSubstitutionResolver(catalog.SubstitutionRules),
	})

	// An east-China customer orders a standard part, an obsolete part
	// that must be substituted, and a part with no stock anywhere
	request := &dto.AtpRequest{
		CustomerID: "CUST-001",
		OrderType:  entities.OrderStandard,
		Items: []entities.AtpRequestItem{
			{ProductID: "PART-A", RequestedQuantity: 60},
			{ProductID: "PART-C", RequestedQuantity: 30},
			{ProductID: "PART-E", RequestedQuantity: 5},
		},
	}

	fmt.Println("🏭 Checking availability...")
	fmt.Printf("Customer: %s, order type: %s, items: %d\n\n",
		request.CustomerID, request.OrderType, len(request.Items))

	response, err := service.CheckAvailability(ctx, request)
	if err != nil {
		fmt.Printf("❌ Availability check failed: %v\n", err)
		return
	}

	fmt.Println("📊 Results:")
	fmt.Printf("  Order ID: %s\n", response.OrderID)
	fmt.Printf("  Status:   %s\n\n", response.OverallStatus)

	for _, result := range response.Results {
		fmt.Printf("  %s: confirmed %d/%d", result.OriginalProductID, result.ConfirmedQuantity, result.RequestedQuantity)
		if result.SourceWarehouseID != "" {
			fmt.Printf(" from %s", result.SourceWarehouseID)
		}
		if result.EstimatedShipDate != nil {
			fmt.Printf(", ships %s", result.EstimatedShipDate.Format("2006-01-02"))
		}
		fmt.Printf(" (%s)\n", result.Message)
	}

	remaining := ledger.GetStock("PART-A", "WH-SH")
	fmt.Printf("\n📦 PART-A stock remaining at WH-SH: %d\n", remaining)
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
