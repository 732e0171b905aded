package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	domledger "github.com/jhoicas/Almacen-api/internal/domain/ledger"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// RecordTransactionUseCase es el motor del ledger: valida y aplica una
// transacción IN/OUT contra el stock de un producto dentro de una
// transacción de BD con bloqueo de fila (SELECT FOR UPDATE), de modo que
// dos salidas concurrentes sobre el mismo producto se serialicen.
type RecordTransactionUseCase struct {
	txRunner        TxRunner
	transactionRepo repository.TransactionRepository // lecturas fuera de la tx
}

// NewRecordTransactionUseCase construye el motor.
func NewRecordTransactionUseCase(txRunner TxRunner, transactionRepo repository.TransactionRepository) *RecordTransactionUseCase {
	return &RecordTransactionUseCase{txRunner: txRunner, transactionRepo: transactionRepo}
}

// Record aplica una transacción contra el stock del producto.
//
// Orden de precondiciones:
//  1. el producto debe existir (la fila queda bloqueada) -> ErrNotFound
//  2. tipo exactamente "IN" u "OUT" -> ledger.ErrInvalidType
//  3. cantidad > 0 -> ledger.ErrNonPositiveQuantity
//  4. en OUT, stock >= cantidad -> *domain.InsufficientStockError
//
// Mutación de stock y fila del ledger se persisten como unidad atómica:
// si algo falla no queda ni la una ni la otra.
func (uc *RecordTransactionUseCase) Record(ctx context.Context, in dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	var created *entity.StockTransaction

	err := uc.txRunner.Run(ctx, func(
		products repository.ProductRepository,
		transactions repository.TransactionRepository,
	) error {
		product, err := products.GetForUpdate(in.ProductID)
		if err != nil {
			return err
		}
		if product == nil {
			return domain.ErrNotFound
		}

		mov, err := domledger.Parse(in.Type, in.Quantity, in.SupplierID, in.CustomerID)
		if err != nil {
			return err
		}

		newStock, err := mov.Apply(product.Stock)
		if err != nil {
			return err
		}
		if err := products.UpdateStock(product.ID, newStock); err != nil {
			return err
		}

		created = &entity.StockTransaction{
			ID:         uuid.New().String(),
			ProductID:  product.ID,
			Type:       mov.Type(),
			Quantity:   mov.Quantity(),
			SupplierID: mov.SupplierID(),
			CustomerID: mov.CustomerID(),
			Date:       time.Now().UTC(),
		}
		return transactions.Create(created)
	})
	if err != nil {
		return nil, err
	}
	return toTransactionResponse(created), nil
}

// GetByID obtiene una transacción del ledger; nil si no existe.
func (uc *RecordTransactionUseCase) GetByID(id string) (*dto.TransactionResponse, error) {
	tx, err := uc.transactionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if tx == nil {
		return nil, nil
	}
	return toTransactionResponse(tx), nil
}

// List lista transacciones del ledger con paginación.
func (uc *RecordTransactionUseCase) List(limit, offset int) (*dto.TransactionListResponse, error) {
	if limit <= 0 {
		limit = 20
	}
	if limit > 100 {
		limit = 100
	}
	if offset < 0 {
		offset = 0
	}
	list, err := uc.transactionRepo.List(limit, offset)
	if err != nil {
		return nil, err
	}
	items := make([]dto.TransactionResponse, 0, len(list))
	for _, tx := range list {
		items = append(items, *toTransactionResponse(tx))
	}
	return &dto.TransactionListResponse{
		Items: items,
		Page:  dto.PageResponse{Limit: limit, Offset: offset},
	}, nil
}

func toTransactionResponse(tx *entity.StockTransaction) *dto.TransactionResponse {
	return &dto.TransactionResponse{
		ID:         tx.ID,
		ProductID:  tx.ProductID,
		Type:       tx.Type,
		Quantity:   tx.Quantity,
		SupplierID: tx.SupplierID,
		CustomerID: tx.CustomerID,
		Date:       tx.Date,
	}
}
