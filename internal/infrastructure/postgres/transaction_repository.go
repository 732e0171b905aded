package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

var _ repository.TransactionRepository = (*TransactionRepo)(nil)

// TransactionRepo implementación de TransactionRepository sobre PostgreSQL
// (usable con pool o tx). Solo inserta y lee: el ledger es append-only.
type TransactionRepo struct {
	q Querier
}

// NewTransactionRepository construye el adaptador. Pasar pool o tx (Querier).
func NewTransactionRepository(q Querier) *TransactionRepo {
	return &TransactionRepo{q: q}
}

// Create persiste una transacción del ledger.
func (r *TransactionRepo) Create(tx *entity.StockTransaction) error {
	query := `
		INSERT INTO transactions (id, product_id, transaction_type, quantity, supplier_id, customer_id, date)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		tx.ID, tx.ProductID, tx.Type, tx.Quantity, tx.SupplierID, tx.CustomerID, tx.Date,
	)
	if err != nil {
		return fmt.Errorf("insert transaction: %w", err)
	}
	return nil
}

// GetByID obtiene una transacción por ID; nil si no existe.
func (r *TransactionRepo) GetByID(id string) (*entity.StockTransaction, error) {
	query := `
		SELECT id, product_id, transaction_type, quantity, supplier_id, customer_id, date
		FROM transactions WHERE id = $1`
	var t entity.StockTransaction
	err := r.q.QueryRow(context.Background(), query, id).Scan(
		&t.ID, &t.ProductID, &t.Type, &t.Quantity, &t.SupplierID, &t.CustomerID, &t.Date,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return &t, nil
}

// List lista transacciones con paginación, de la más reciente a la más antigua.
func (r *TransactionRepo) List(limit, offset int) ([]*entity.StockTransaction, error) {
	query := `
		SELECT id, product_id, transaction_type, quantity, supplier_id, customer_id, date
		FROM transactions ORDER BY date DESC LIMIT $1 OFFSET $2`
	rows, err := r.q.Query(context.Background(), query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	defer rows.Close()
	var list []*entity.StockTransaction
	for rows.Next() {
		var t entity.StockTransaction
		if err := rows.Scan(&t.ID, &t.ProductID, &t.Type, &t.Quantity, &t.SupplierID, &t.CustomerID, &t.Date); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		list = append(list, &t)
	}
	return list, rows.Err()
}
