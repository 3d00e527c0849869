package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/partflow/atp/pkg/application/dto"
	"github.com/partflow/atp/pkg/application/services/atp"
	"github.com/partflow/atp/pkg/domain/entities"
	"github.com/partflow/atp/pkg/domain/services"
	"github.com/partflow/atp/pkg/infrastructure/events"
	"github.com/partflow/atp/pkg/infrastructure/repositories/csv"
	"github.com/partflow/atp/pkg/infrastructure/repositories/memory"
	"github.com/partflow/atp/pkg/infrastructure/seed"
	"github.com/partflow/atp/pkg/interfaces/cli/output"
)

// Config holds configuration for the check command
type Config struct {
	ScenarioDir string
	RequestFile string
	Format      string
	Verbose     bool
	Help        bool
}

// CheckCommand runs one availability check against a catalog loaded
// from a scenario directory, or against the built-in demo catalog when
// no directory is given.
type CheckCommand struct {
	config Config
}

// NewCheckCommand creates a new check command with the given configuration
func NewCheckCommand(config Config) *CheckCommand {
	return &CheckCommand{config: config}
}

type requestFile struct {
	CustomerID string `json:"customerId"`
	OrderType  string `json:"orderType"`
	Items      []struct {
		ProductID         string `json:"productId"`
		RequestedQuantity int64  `json:"requestedQuantity"`
	} `json:"items"`
}

// Execute runs the check command
func (c *CheckCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	if c.config.RequestFile == "" {
		return fmt.Errorf("a request file is required (use -request)")
	}

	catalog, err := c.loadCatalog()
	if err != nil {
		return err
	}

	if c.config.Verbose {
		fmt.Printf("Catalog loaded: %d products, %d warehouses, %d customers, %d inventory entries\n",
			len(catalog.Products), len(catalog.Warehouses), len(catalog.Customers), len(catalog.Inventory))
		fmt.Printf("Rules: %d sourcing, %d substitution\n\n",
			len(catalog.SourcingRules), len(catalog.SubstitutionRules))
	}

	request, err := c.loadRequest()
	if err != nil {
		return err
	}

	service, audit, err := buildService(catalog)
	if err != nil {
		return err
	}

	response, err := service.CheckAvailability(ctx, request)
	if err != nil {
		return fmt.Errorf("availability check failed: %w", err)
	}

	if err := output.Generate(response, output.Config{Format: c.config.Format}); err != nil {
		return err
	}

	if c.config.Verbose {
		recorded, err := audit.ReadEvents(response.OrderID, 1)
		if err != nil {
			return fmt.Errorf("failed to read audit trail: %w", err)
		}
		fmt.Printf("\nAudit trail (%d events):\n", len(recorded))
		for _, event := range recorded {
			fmt.Printf("  %s %+v\n", event.Type(), event.Data())
		}
	}

	return nil
}

func (c *CheckCommand) loadCatalog() (*csv.Scenario, error) {
	if c.config.ScenarioDir == "" {
		return seed.Demo(), nil
	}

	info, err := os.Stat(c.config.ScenarioDir)
	if err != nil || !info.IsDir() {
		return nil, fmt.Errorf("scenario directory does not exist: %s", c.config.ScenarioDir)
	}
	return csv.NewLoader().LoadScenario(c.config.ScenarioDir)
}

func (c *CheckCommand) loadRequest() (*dto.AtpRequest, error) {
	data, err := os.ReadFile(c.config.RequestFile)
	if err != nil {
		return nil, fmt.Errorf("failed to read request file %s: %w", c.config.RequestFile, err)
	}

	var parsed requestFile
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("invalid request file %s: %w", c.config.RequestFile, err)
	}

	orderType, err := entities.ParseOrderType(parsed.OrderType)
	if err != nil {
		return nil, err
	}

	items := make([]entities.AtpRequestItem, 0, len(parsed.Items))
	for i, item := range parsed.Items {
		requestItem, err := entities.NewAtpRequestItem(entities.ProductID(item.ProductID), entities.Quantity(item.RequestedQuantity))
		if err != nil {
			return nil, fmt.Errorf("request item %d: %w", i, err)
		}
		items = append(items, *requestItem)
	}

	return &dto.AtpRequest{
		CustomerID: entities.CustomerID(parsed.CustomerID),
		OrderType:  orderType,
		Items:      items,
	}, nil
}

// buildService wires repositories, resolvers and the audit log for one
// catalog.
func buildService(catalog *csv.Scenario) (*atp.ATPService, *events.InMemoryStore, error) {
	products := memory.NewProductRepository(len(catalog.Products))
	if err := products.LoadProducts(catalog.Products); err != nil {
		return nil, nil, fmt.Errorf("failed to load products: %w", err)
	}

	warehouses := memory.NewWarehouseRepository(len(catalog.Warehouses))
	if err := warehouses.LoadWarehouses(catalog.Warehouses); err != nil {
		return nil, nil, fmt.Errorf("failed to load warehouses: %w", err)
	}

	customers := memory.NewCustomerRepository(len(catalog.Customers))
	if err := customers.LoadCustomers(catalog.Customers); err != nil {
		return nil, nil, fmt.Errorf("failed to load customers: %w", err)
	}

	ledger := memory.NewStockLedger()
	if err := ledger.LoadInventory(catalog.Inventory); err != nil {
		return nil, nil, fmt.Errorf("failed to load inventory: %w", err)
	}

	ruleRepo := memory.NewRuleRepository()
	if err := ruleRepo.LoadSourcingRules(catalog.SourcingRules); err != nil {
		return nil, nil, fmt.Errorf("failed to load sourcing rules: %w", err)
	}
	if err := ruleRepo.LoadSubstitutionRules(catalog.SubstitutionRules); err != nil {
		return nil, nil, fmt.Errorf("failed to load substitution rules: %w", err)
	}

	sourcingRules, err := ruleRepo.GetSourcingRules()
	if err != nil {
		return nil, nil, err
	}
	substitutionRules, err := ruleRepo.GetSubstitutionRules()
	if err != nil {
		return nil, nil, err
	}

	audit := events.NewInMemoryStore()
	service := atp.NewATPService(atp.Config{
		Products:      products,
		Warehouses:    warehouses,
		Customers:     customers,
		Ledger:        ledger,
		Rules:         services.NewRuleResolver(sourcingRules, seed.BackupWarehouseID),
		Substitutions: services.NewSubstitutionResolver(substitutionRules),
		AuditLog:      audit,
	})
	return service, audit, nil
}

func (c *CheckCommand) showHelp() {
	fmt.Println("ATP - Available-to-Promise Check")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  atp -request <request.json> [-scenario <dir>] [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  -request string    Path to a JSON availability request (required)")
	fmt.Println("  -scenario string   Path to a scenario directory of CSV catalogs")
	fmt.Println("                     (omit to use the built-in demo catalog)")
	fmt.Println("  -format string     Output format: text, json (default \"text\")")
	fmt.Println("  -verbose           Print catalog counts and the audit trail")
	fmt.Println("  -help              Show this help message")
	fmt.Println()
	fmt.Println("Request file format:")
	fmt.Println(`  {"customerId": "CUST-001", "orderType": "STANDARD",`)
	fmt.Println(`   "items": [{"productId": "PART-A", "requestedQuantity": 60}]}`)
	fmt.Println()
	fmt.Println("Scenario directory files:")
	fmt.Println("  products.csv, warehouses.csv, customers.csv, inventory.csv,")
	fmt.Println("  sourcing_rules.csv, substitution_rules.csv (optional)")
}
