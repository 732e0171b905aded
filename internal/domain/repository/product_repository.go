package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// ProductRepository puerto de persistencia para productos.
// GetForUpdate solo tiene sentido dentro de una transacción de BD.
type ProductRepository interface {
	Create(product *entity.Product) error
	GetByID(id string) (*entity.Product, error)
	GetBySKU(sku string) (*entity.Product, error)
	GetForUpdate(id string) (*entity.Product, error)
	Update(product *entity.Product) error
	UpdateStock(id string, stock int64) error
	List(limit, offset int) ([]*entity.Product, error)
	Delete(id string) error
}
