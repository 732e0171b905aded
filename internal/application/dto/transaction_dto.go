package dto

import "time"

// CreateTransactionRequest body para POST /transactions.
// supplier_id solo aplica a IN y customer_id solo a OUT; el motor descarta
// la contraparte que no corresponde al tipo.
type CreateTransactionRequest struct {
	ProductID  string  `json:"product_id" validate:"required"`
	Type       string  `json:"transaction_type" validate:"required"`
	Quantity   int64   `json:"quantity"`
	SupplierID *string `json:"supplier_id,omitempty"`
	CustomerID *string `json:"customer_id,omitempty"`
}

// TransactionResponse salida de una transacción del ledger.
type TransactionResponse struct {
	ID         string    `json:"id"`
	ProductID  string    `json:"product_id"`
	Type       string    `json:"transaction_type"`
	Quantity   int64     `json:"quantity"`
	SupplierID *string   `json:"supplier_id"`
	CustomerID *string   `json:"customer_id"`
	Date       time.Time `json:"date"`
}

// TransactionListResponse lista paginada de transacciones.
type TransactionListResponse struct {
	Items []TransactionResponse `json:"items"`
	Page  PageResponse          `json:"page"`
}
