package repositories

import "github.com/partflow/atp/pkg/domain/entities"

// CustomerRepository provides access to customer master data
type CustomerRepository interface {
	GetCustomer(id entities.CustomerID) (*entities.Customer, error)
	GetAllCustomers() ([]*entities.Customer, error)
	LoadCustomers(customers []*entities.Customer) error
}
