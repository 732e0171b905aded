package ledger

import (
	"context"

	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios atados a esa tx. Garantiza la unidad atómica del motor:
// mutación de stock y registro del ledger se confirman o revierten juntos.
type TxRunner interface {
	Run(ctx context.Context, fn func(
		products repository.ProductRepository,
		transactions repository.TransactionRepository,
	) error) error
}
