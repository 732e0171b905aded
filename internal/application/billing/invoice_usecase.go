package billing

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// InvoiceUseCase resuelve una transacción del ledger a su snapshot completo
// (producto + contraparte), genera el PDF y guarda una copia local en el
// directorio de comprobantes.
type InvoiceUseCase struct {
	transactionRepo repository.TransactionRepository
	productRepo     repository.ProductRepository
	supplierRepo    repository.SupplierRepository
	customerRepo    repository.CustomerRepository
	generator       ReceiptPDFGenerator
	dir             string
}

// NewInvoiceUseCase construye el caso de uso inyectando todas sus dependencias.
func NewInvoiceUseCase(
	transactionRepo repository.TransactionRepository,
	productRepo repository.ProductRepository,
	supplierRepo repository.SupplierRepository,
	customerRepo repository.CustomerRepository,
	generator ReceiptPDFGenerator,
	dir string,
) *InvoiceUseCase {
	return &InvoiceUseCase{
		transactionRepo: transactionRepo,
		productRepo:     productRepo,
		supplierRepo:    supplierRepo,
		customerRepo:    customerRepo,
		generator:       generator,
		dir:             dir,
	}
}

// DownloadInvoicePDF genera el comprobante de una transacción.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien; filename es el nombre
//     de descarga Invoice_{id}.pdf.
//   - domain.ErrNotFound         si la transacción no existe.
//
// Efecto lateral: escribe una copia en {dir}/receipt_{id}.pdf.
func (uc *InvoiceUseCase) DownloadInvoicePDF(ctx context.Context, transactionID string) (pdfBytes []byte, filename string, err error) {
	tx, err := uc.transactionRepo.GetByID(transactionID)
	if err != nil {
		return nil, "", fmt.Errorf("invoice: obtener transacción: %w", err)
	}
	if tx == nil {
		return nil, "", domain.ErrNotFound
	}

	product, err := uc.productRepo.GetByID(tx.ProductID)
	if err != nil {
		return nil, "", fmt.Errorf("invoice: obtener producto: %w", err)
	}
	if product == nil {
		return nil, "", fmt.Errorf("invoice: producto %s referenciado por la transacción no existe", tx.ProductID)
	}

	snap := ReceiptSnapshot{
		TransactionID: tx.ID,
		Type:          tx.Type,
		Quantity:      tx.Quantity,
		Date:          tx.Date,
		ProductName:   product.Name,
		UnitPrice:     product.Price,
		PartyName:     uc.resolvePartyName(tx),
	}

	pdfBytes, err = uc.generator.GenerateReceiptPDF(ctx, snap)
	if err != nil {
		return nil, "", fmt.Errorf("invoice: generación fallida: %w", err)
	}

	// Copia local del comprobante, indexada por ID de transacción.
	if err := uc.writeArtifact(tx.ID, pdfBytes); err != nil {
		return nil, "", err
	}

	return pdfBytes, fmt.Sprintf("Invoice_%s.pdf", tx.ID), nil
}

// resolvePartyName busca el nombre de la contraparte según el tipo.
// Una transacción sin contraparte registrada queda como "Unknown".
func (uc *InvoiceUseCase) resolvePartyName(tx *entity.StockTransaction) string {
	switch {
	case tx.Type == entity.TransactionTypeIN && tx.SupplierID != nil:
		if supplier, err := uc.supplierRepo.GetByID(*tx.SupplierID); err == nil && supplier != nil {
			return supplier.Name
		}
		return "Unknown Supplier"
	case tx.Type == entity.TransactionTypeOUT && tx.CustomerID != nil:
		if customer, err := uc.customerRepo.GetByID(*tx.CustomerID); err == nil && customer != nil {
			return customer.Name
		}
		return "Unknown Customer"
	}
	return "Unknown"
}

func (uc *InvoiceUseCase) writeArtifact(transactionID string, pdf []byte) error {
	if err := os.MkdirAll(uc.dir, 0o755); err != nil {
		return fmt.Errorf("invoice: crear directorio de comprobantes: %w", err)
	}
	path := filepath.Join(uc.dir, fmt.Sprintf("receipt_%s.pdf", transactionID))
	if err := os.WriteFile(path, pdf, 0o644); err != nil {
		return fmt.Errorf("invoice: escribir comprobante: %w", err)
	}
	return nil
}
