package events

import "github.com/partflow/atp/pkg/domain/entities"

const (
	StockReservedEvent       = "stock.reserved"
	ReservationRejectedEvent = "reservation.rejected"
	AvailabilityCheckedEvent = "atp.checked"
)

// StockReserved records a successful atomic stock decrement
type StockReserved struct {
	ProductID   entities.ProductID   `json:"product_id"`
	WarehouseID entities.WarehouseID `json:"warehouse_id"`
	Quantity    entities.Quantity    `json:"quantity"`
	ForProduct  entities.ProductID   `json:"for_product"`
}

// ReservationRejected records a reservation that lost a race or found
// insufficient stock at decrement time
type ReservationRejected struct {
	ProductID   entities.ProductID   `json:"product_id"`
	WarehouseID entities.WarehouseID `json:"warehouse_id"`
	Quantity    entities.Quantity    `json:"quantity"`
}

// AvailabilityChecked records the aggregate outcome of one request
type AvailabilityChecked struct {
	CustomerID     entities.CustomerID  `json:"customer_id"`
	Status         entities.OrderStatus `json:"status"`
	ItemsRequested int                  `json:"items_requested"`
	ItemsConfirmed int                  `json:"items_confirmed"`
}
