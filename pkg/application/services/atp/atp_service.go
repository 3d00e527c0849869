package atp

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/partflow/atp/pkg/application/dto"
	"github.com/partflow/atp/pkg/application/services/shared"
	"github.com/partflow/atp/pkg/domain/entities"
	"github.com/partflow/atp/pkg/domain/repositories"
	"github.com/partflow/atp/pkg/domain/services"
	"github.com/partflow/atp/pkg/infrastructure/events"
)

// Per-item result messages. These are part of the response contract.
const (
	msgFulfilled          = "Fulfilled"
	msgPartiallyFulfilled = "Partially fulfilled"
	msgProductNotFound    = "PRODUCT_NOT_FOUND"
)

// Config holds the collaborators of an ATPService. Clock defaults to the
// system clock; AuditLog is optional and nil disables event publishing.
type Config struct {
	Products      repositories.ProductRepository
	Warehouses    repositories.WarehouseRepository
	Customers     repositories.CustomerRepository
	Ledger        repositories.StockLedger
	Rules         *services.RuleResolver
	Substitutions *services.SubstitutionResolver
	Clock         shared.Clock
	AuditLog      events.Store
}

// ATPService implements the availability check: per requested item it
// cascades across (original product, substitutes) x (ranked warehouses),
// reserving stock through the ledger, and aggregates the per-item
// outcomes into an overall order status.
//
// The service holds no mutable state of its own; all mutation happens
// inside the StockLedger. Reservations committed for earlier items are
// not rolled back when a later item fails to resolve.
type ATPService struct {
	products   repositories.ProductRepository
	warehouses repositories.WarehouseRepository
	customers  repositories.CustomerRepository
	ledger     repositories.StockLedger
	rules      *services.RuleResolver
	subs       *services.SubstitutionResolver
	clock      shared.Clock
	audit      events.Store
}

// NewATPService creates an ATP service from its collaborators
func NewATPService(config Config) *ATPService {
	clock := config.Clock
	if clock == nil {
		clock = shared.SystemClock{}
	}

	return &ATPService{
		products:   config.Products,
		warehouses: config.Warehouses,
		customers:  config.Customers,
		ledger:     config.Ledger,
		rules:      config.Rules,
		subs:       config.Substitutions,
		clock:      clock,
		audit:      config.AuditLog,
	}
}

// CheckAvailability processes one availability check to completion on
// the calling goroutine. Domain failures (unknown customer, unknown
// product, no stock) are encoded in the response, never returned as
// errors.
func (s *ATPService) CheckAvailability(ctx context.Context, request *dto.AtpRequest) (*dto.AtpResponse, error) {
	if request == nil {
		return nil, fmt.Errorf("request cannot be nil")
	}

	orderID := uuid.NewString()

	customer, err := s.customers.GetCustomer(request.CustomerID)
	if err != nil {
		// Unknown customer short-circuits the whole request; the ledger
		// is never touched.
		response := &dto.AtpResponse{
			OrderID:       orderID,
			OverallStatus: entities.CustomerNotFound,
			Results:       []entities.AtpResultItem{},
		}
		s.publishChecked(orderID, request.CustomerID, response.OverallStatus, 0, 0)
		return response, nil
	}

	results := make([]entities.AtpResultItem, 0, len(request.Items))

	for _, item := range request.Items {
		product, err := s.products.GetProduct(item.ProductID)
		if err != nil {
			results = append(results, entities.AtpResultItem{
				OriginalProductID: item.ProductID,
				RequestedQuantity: item.RequestedQuantity,
				Message:           msgProductNotFound,
			})
			continue
		}

		ranked := s.rules.Resolve(customer.Region, request.OrderType, product.Marking)

		results = append(results, s.processItem(orderID, item, product, ranked))
	}

	status := OverallStatus(results)
	confirmed := 0
	for _, result := range results {
		if result.Fulfilled() {
			confirmed++
		}
	}
	s.publishChecked(orderID, request.CustomerID, status, len(results), confirmed)

	return &dto.AtpResponse{
		OrderID:       orderID,
		OverallStatus: status,
		Results:       results,
	}, nil
}

// processItem runs the allocation cascade for one requested item: the
// original product across the ranked warehouses first, then each
// first-level substitute across the same ranked list. At most one
// (product, warehouse) pair contributes to the confirmed quantity.
func (s *ATPService) processItem(orderID string, item entities.AtpRequestItem, product *entities.Product, rankedWarehouses []entities.WarehouseID) entities.AtpResultItem {
	if result, ok := s.tryProduct(orderID, product.ID, product.ID, item.RequestedQuantity, rankedWarehouses); ok {
		return result
	}

	for _, substituteID := range s.subs.SubstitutesFor(product.ID) {
		substitute, err := s.products.GetProduct(substituteID)
		if err != nil {
			continue
		}
		if result, ok := s.tryProduct(orderID, product.ID, substitute.ID, item.RequestedQuantity, rankedWarehouses); ok {
			return result
		}
	}

	return entities.AtpResultItem{
		OriginalProductID: product.ID,
		RequestedQuantity: item.RequestedQuantity,
		Message:           fmt.Sprintf("No stock available for %s or its substitutes.", product.ID),
	}
}

// tryProduct scans the ranked warehouses for one candidate product,
// reserving min(stock, requested) at the first warehouse where the
// atomic reservation succeeds. A reservation that loses a race to a
// concurrent request moves on to the next warehouse instead of
// aborting the cascade.
func (s *ATPService) tryProduct(orderID string, originalID, productID entities.ProductID, requested entities.Quantity, rankedWarehouses []entities.WarehouseID) (entities.AtpResultItem, bool) {
	for _, warehouseID := range rankedWarehouses {
		warehouse, err := s.warehouses.GetWarehouse(warehouseID)
		if err != nil {
			// Ranked lists may name warehouses absent from the catalog;
			// skip them.
			continue
		}

		stock := s.ledger.GetStock(productID, warehouseID)
		if stock <= 0 {
			continue
		}

		fulfillable := requested
		if stock < fulfillable {
			fulfillable = stock
		}

		if !s.ledger.Reserve(productID, warehouseID, fulfillable) {
			s.publishRejected(orderID, productID, warehouseID, fulfillable)
			continue
		}
		s.publishReserved(orderID, originalID, productID, warehouseID, fulfillable)

		shipDate := s.clock.Today().AddDate(0, 0, warehouse.LeadTimeDays)

		message := msgFulfilled
		switch {
		case productID != originalID:
			message = fmt.Sprintf("Fulfilled with substitute %s", productID)
		case fulfillable != requested:
			message = msgPartiallyFulfilled
		}

		return entities.AtpResultItem{
			OriginalProductID:  originalID,
			FulfilledProductID: productID,
			RequestedQuantity:  requested,
			ConfirmedQuantity:  fulfillable,
			SourceWarehouseID:  warehouseID,
			EstimatedShipDate:  &shipDate,
			Message:            message,
		}, true
	}

	return entities.AtpResultItem{}, false
}

func (s *ATPService) publishReserved(orderID string, originalID, productID entities.ProductID, warehouseID entities.WarehouseID, quantity entities.Quantity) {
	if s.audit == nil {
		return
	}
	_ = s.audit.AppendEvent(orderID, events.NewEvent(events.StockReservedEvent, orderID, events.StockReserved{
		ProductID:   productID,
		WarehouseID: warehouseID,
		Quantity:    quantity,
		ForProduct:  originalID,
	}))
}

func (s *ATPService) publishRejected(orderID string, productID entities.ProductID, warehouseID entities.WarehouseID, quantity entities.Quantity) {
	if s.audit == nil {
		return
	}
	_ = s.audit.AppendEvent(orderID, events.NewEvent(events.ReservationRejectedEvent, orderID, events.ReservationRejected{
		ProductID:   productID,
		WarehouseID: warehouseID,
		Quantity:    quantity,
	}))
}

func (s *ATPService) publishChecked(orderID string, customerID entities.CustomerID, status entities.OrderStatus, requested, confirmed int) {
	if s.audit == nil {
		return
	}
	_ = s.audit.AppendEvent(orderID, events.NewEvent(events.AvailabilityCheckedEvent, orderID, events.AvailabilityChecked{
		CustomerID:     customerID,
		Status:         status,
		ItemsRequested: requested,
		ItemsConfirmed: confirmed,
	}))
}
