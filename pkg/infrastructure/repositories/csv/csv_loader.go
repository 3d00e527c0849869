package csv

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/partflow/atp/pkg/domain/entities"
)

// Loader handles loading catalog data from CSV files
type Loader struct{}

// NewLoader creates a new CSV loader
func NewLoader() *Loader {
	return &Loader{}
}

// Scenario holds every catalog loaded from one scenario directory.
type Scenario struct {
	Products          []*entities.Product
	Warehouses        []*entities.Warehouse
	Customers         []*entities.Customer
	Inventory         []*entities.InventoryItem
	SourcingRules     []entities.SourcingRule
	SubstitutionRules []entities.SubstitutionRule
}

// LoadScenario loads a full catalog from a directory containing
// products.csv, warehouses.csv, customers.csv, inventory.csv,
// sourcing_rules.csv and substitution_rules.csv. The substitution file
// is optional.
func (l *Loader) LoadScenario(dir string) (*Scenario, error) {
	scenario := &Scenario{}
	var err error

	scenario.Products, err = l.LoadProducts(filepath.Join(dir, "products.csv"))
	if err != nil {
		return nil, err
	}
	scenario.Warehouses, err = l.LoadWarehouses(filepath.Join(dir, "warehouses.csv"))
	if err != nil {
		return nil, err
	}
	scenario.Customers, err = l.LoadCustomers(filepath.Join(dir, "customers.csv"))
	if err != nil {
		return nil, err
	}
	scenario.Inventory, err = l.LoadInventory(filepath.Join(dir, "inventory.csv"))
	if err != nil {
		return nil, err
	}
	scenario.SourcingRules, err = l.LoadSourcingRules(filepath.Join(dir, "sourcing_rules.csv"))
	if err != nil {
		return nil, err
	}

	substitutionFile := filepath.Join(dir, "substitution_rules.csv")
	if _, statErr := os.Stat(substitutionFile); statErr == nil {
		scenario.SubstitutionRules, err = l.LoadSubstitutionRules(substitutionFile)
		if err != nil {
			return nil, err
		}
	}

	return scenario, nil
}

// LoadProducts loads products from a CSV file
func (l *Loader) LoadProducts(filename string) ([]*entities.Product, error) {
	records, err := readRecords(filename, "products")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"product_id", "name", "marking"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("products CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var products []*entities.Product
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("products CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		marking, err := entities.ParsePartMarking(record[2])
		if err != nil {
			return nil, fmt.Errorf("products CSV row %d: %w", i+2, err)
		}

		product, err := entities.NewProduct(entities.ProductID(record[0]), record[1], marking)
		if err != nil {
			return nil, fmt.Errorf("products CSV row %d: %w", i+2, err)
		}
		products = append(products, product)
	}

	return products, nil
}

// LoadWarehouses loads warehouses from a CSV file. An empty region
// marks a region-agnostic backup site.
func (l *Loader) LoadWarehouses(filename string) ([]*entities.Warehouse, error) {
	records, err := readRecords(filename, "warehouses")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"warehouse_id", "name", "region", "lead_time_days"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("warehouses CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var warehouses []*entities.Warehouse
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("warehouses CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		leadTimeDays, err := strconv.Atoi(record[3])
		if err != nil {
			return nil, fmt.Errorf("warehouses CSV row %d: invalid lead_time_days: %s", i+2, record[3])
		}

		warehouse, err := entities.NewWarehouse(entities.WarehouseID(record[0]), record[1], entities.Region(record[2]), leadTimeDays)
		if err != nil {
			return nil, fmt.Errorf("warehouses CSV row %d: %w", i+2, err)
		}
		warehouses = append(warehouses, warehouse)
	}

	return warehouses, nil
}

// LoadCustomers loads customers from a CSV file
func (l *Loader) LoadCustomers(filename string) ([]*entities.Customer, error) {
	records, err := readRecords(filename, "customers")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"customer_id", "name", "region"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("customers CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var customers []*entities.Customer
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("customers CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		customer, err := entities.NewCustomer(entities.CustomerID(record[0]), record[1], entities.Region(record[2]))
		if err != nil {
			return nil, fmt.Errorf("customers CSV row %d: %w", i+2, err)
		}
		customers = append(customers, customer)
	}

	return customers, nil
}

// LoadInventory loads inventory entries from a CSV file
func (l *Loader) LoadInventory(filename string) ([]*entities.InventoryItem, error) {
	records, err := readRecords(filename, "inventory")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"product_id", "warehouse_id", "quantity"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("inventory CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var items []*entities.InventoryItem
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("inventory CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		quantity, err := strconv.ParseInt(record[2], 10, 64)
		if err != nil {
			return nil, fmt.Errorf("inventory CSV row %d: invalid quantity: %s", i+2, record[2])
		}

		item, err := entities.NewInventoryItem(entities.ProductID(record[0]), entities.WarehouseID(record[1]), entities.Quantity(quantity))
		if err != nil {
			return nil, fmt.Errorf("inventory CSV row %d: %w", i+2, err)
		}
		items = append(items, item)
	}

	return items, nil
}

// LoadSourcingRules loads sourcing rules from a CSV file. The region
// column accepts "*" for a wildcard rule; the warehouses column is a
// semicolon-separated list in priority order. File order is preserved
// because it breaks ties between rules in the same tier.
func (l *Loader) LoadSourcingRules(filename string) ([]entities.SourcingRule, error) {
	records, err := readRecords(filename, "sourcing rules")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"region", "order_type", "marking", "warehouses"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("sourcing rules CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var rules []entities.SourcingRule
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("sourcing rules CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		rule, err := parseSourcingRule(record)
		if err != nil {
			return nil, fmt.Errorf("sourcing rules CSV row %d: %w", i+2, err)
		}
		rules = append(rules, rule)
	}

	return rules, nil
}

// LoadSubstitutionRules loads substitution rules from a CSV file. File
// order defines substitute preference order.
func (l *Loader) LoadSubstitutionRules(filename string) ([]entities.SubstitutionRule, error) {
	records, err := readRecords(filename, "substitution rules")
	if err != nil {
		return nil, err
	}

	expectedHeader := []string{"original_product_id", "substitute_product_id"}
	if !validateHeader(records[0], expectedHeader) {
		return nil, fmt.Errorf("substitution rules CSV header mismatch. Expected: %v, Got: %v", expectedHeader, records[0])
	}

	var rules []entities.SubstitutionRule
	for i, record := range records[1:] {
		if len(record) != len(expectedHeader) {
			return nil, fmt.Errorf("substitution rules CSV row %d: expected %d columns, got %d", i+2, len(expectedHeader), len(record))
		}

		rule, err := entities.NewSubstitutionRule(entities.ProductID(record[0]), entities.ProductID(record[1]))
		if err != nil {
			return nil, fmt.Errorf("substitution rules CSV row %d: %w", i+2, err)
		}
		rules = append(rules, *rule)
	}

	return rules, nil
}

func parseSourcingRule(record []string) (entities.SourcingRule, error) {
	region := entities.AnyRegion()
	if trimmed := strings.TrimSpace(record[0]); trimmed != "*" {
		if trimmed == "" {
			return entities.SourcingRule{}, fmt.Errorf("region must be a region name or *")
		}
		region = entities.ExactRegion(entities.Region(trimmed))
	}

	orderType, err := entities.ParseOrderType(record[1])
	if err != nil {
		return entities.SourcingRule{}, err
	}

	marking, err := entities.ParsePartMarking(record[2])
	if err != nil {
		return entities.SourcingRule{}, err
	}

	var warehouses []entities.WarehouseID
	for _, id := range strings.Split(record[3], ";") {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		warehouses = append(warehouses, entities.WarehouseID(id))
	}

	rule, err := entities.NewSourcingRule(region, orderType, marking, warehouses)
	if err != nil {
		return entities.SourcingRule{}, err
	}
	return *rule, nil
}

func readRecords(filename, label string) ([][]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s file %s: %w", label, filename, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s CSV: %w", label, err)
	}

	if len(records) < 2 {
		return nil, fmt.Errorf("%s CSV must have header and at least one data row", label)
	}

	return records, nil
}

func validateHeader(actual, expected []string) bool {
	if len(actual) != len(expected) {
		return false
	}

	for i, col := range expected {
		if strings.ToLower(strings.TrimSpace(actual[i])) != col {
			return false
		}
	}

	return true
}
