package repository

import "github.com/jhoicas/Almacen-api/internal/domain/entity"

// TransactionRepository puerto de persistencia para el ledger.
// Solo Create y lecturas: las transacciones son append-only.
type TransactionRepository interface {
	Create(tx *entity.StockTransaction) error
	GetByID(id string) (*entity.StockTransaction, error)
	List(limit, offset int) ([]*entity.StockTransaction, error)
}
