package entities

import "fmt"

// CustomerID uniquely identifies a customer in the catalog
type CustomerID string

// Customer represents a customer account.
// Customers are immutable after catalog load.
type Customer struct {
	ID     CustomerID
	Name   string
	Region Region
}

// NewCustomer creates a validated Customer
func NewCustomer(id CustomerID, name string, region Region) (*Customer, error) {
	if string(id) == "" {
		return nil, fmt.Errorf("customer id cannot be empty")
	}
	if name == "" {
		return nil, fmt.Errorf("customer name cannot be empty")
	}
	if region == "" {
		return nil, fmt.Errorf("customer region cannot be empty")
	}

	return &Customer{
		ID:     id,
		Name:   name,
		Region: region,
	}, nil
}
