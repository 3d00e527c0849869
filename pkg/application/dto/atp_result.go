package dto

import "github.com/partflow/atp/pkg/domain/entities"

// AtpRequest is one availability check for a customer order
type AtpRequest struct {
	CustomerID entities.CustomerID
	OrderType  entities.OrderType
	Items      []entities.AtpRequestItem
}

// AtpResponse contains the complete output of one availability check
type AtpResponse struct {
	OrderID       string
	OverallStatus entities.OrderStatus
	Results       []entities.AtpResultItem
}
