package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// CustomerRepository puerto de persistencia para clientes.
// Sin Update ni Delete: los clientes son inmutables una vez creados.
type CustomerRepository interface {
	Create(customer *entity.Customer) error
	GetByID(id string) (*entity.Customer, error)
	List(limit, offset int) ([]*entity.Customer, error)
}
