package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// SupplierRepository puerto de persistencia para proveedores.
// Sin Update ni Delete: los proveedores son inmutables una vez creados.
type SupplierRepository interface {
	Create(supplier *entity.Supplier) error
	GetByID(id string) (*entity.Supplier, error)
	List(limit, offset int) ([]*entity.Supplier, error)
}
