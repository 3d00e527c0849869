package memory

import (
	"fmt"

	"github.com/partflow/atp/pkg/domain/entities"
	"github.com/partflow/atp/pkg/domain/repositories"
)

// CustomerRepository provides in-memory customer storage
type CustomerRepository struct {
	customers    []entities.Customer
	customersMap map[entities.CustomerID]int
}

// NewCustomerRepository creates a new in-memory customer repository
func NewCustomerRepository(expectedCustomers int) *CustomerRepository {
	return &CustomerRepository{
		customers:    make([]entities.Customer, 0, expectedCustomers),
		customersMap: make(map[entities.CustomerID]int, expectedCustomers),
	}
}

// Verify interface compliance
var _ repositories.CustomerRepository = (*CustomerRepository)(nil)

// LoadCustomers loads customers into the repository
func (r *CustomerRepository) LoadCustomers(customers []*entities.Customer) error {
	for _, customer := range customers {
		r.AddCustomer(*customer)
	}
	return nil
}

// AddCustomer adds a customer to the repository
func (r *CustomerRepository) AddCustomer(customer entities.Customer) {
	r.customersMap[customer.ID] = len(r.customers)
	r.customers = append(r.customers, customer)
}

// GetCustomer returns customer master data for an id
func (r *CustomerRepository) GetCustomer(id entities.CustomerID) (*entities.Customer, error) {
	index, exists := r.customersMap[id]
	if !exists {
		return nil, fmt.Errorf("customer not found: %s", id)
	}
	return &r.customers[index], nil
}

// GetAllCustomers returns all customers
func (r *CustomerRepository) GetAllCustomers() ([]*entities.Customer, error) {
	var customers []*entities.Customer
	for i := range r.customers {
		customers = append(customers, &r.customers[i])
	}
	return customers, nil
}
