package repositories

import "github.com/partflow/atp/pkg/domain/entities"

// WarehouseRepository provides access to warehouse master data
type WarehouseRepository interface {
	GetWarehouse(id entities.WarehouseID) (*entities.Warehouse, error)
	GetAllWarehouses() ([]*entities.Warehouse, error)
	LoadWarehouses(warehouses []*entities.Warehouse) error
}
