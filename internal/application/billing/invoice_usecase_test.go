package billing_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/billing"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes
// ──────────────────────────────────────────────────────────────────────────────

type fakeTransactionRepo struct{ txs map[string]*entity.StockTransaction }

func (f *fakeTransactionRepo) Create(tx *entity.StockTransaction) error { return errors.New("solo lectura") }
func (f *fakeTransactionRepo) GetByID(id string) (*entity.StockTransaction, error) {
	return f.txs[id], nil
}
func (f *fakeTransactionRepo) List(limit, offset int) ([]*entity.StockTransaction, error) {
	return nil, nil
}

type fakeProductRepo struct{ products map[string]*entity.Product }

func (f *fakeProductRepo) Create(p *entity.Product) error                    { return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error)        { return f.products[id], nil }
func (f *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error)      { return nil, nil }
func (f *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error)   { return f.products[id], nil }
func (f *fakeProductRepo) Update(p *entity.Product) error                    { return nil }
func (f *fakeProductRepo) UpdateStock(id string, stock int64) error          { return nil }
func (f *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) { return nil, nil }
func (f *fakeProductRepo) Delete(id string) error                            { return nil }

type fakeSupplierRepo struct{ suppliers map[string]*entity.Supplier }

func (f *fakeSupplierRepo) Create(s *entity.Supplier) error { return nil }
func (f *fakeSupplierRepo) GetByID(id string) (*entity.Supplier, error) {
	return f.suppliers[id], nil
}
func (f *fakeSupplierRepo) List(limit, offset int) ([]*entity.Supplier, error) { return nil, nil }

type fakeCustomerRepo struct{ customers map[string]*entity.Customer }

func (f *fakeCustomerRepo) Create(c *entity.Customer) error { return nil }
func (f *fakeCustomerRepo) GetByID(id string) (*entity.Customer, error) {
	return f.customers[id], nil
}
func (f *fakeCustomerRepo) List(limit, offset int) ([]*entity.Customer, error) { return nil, nil }

// fakeGenerator captura el snapshot y devuelve bytes reconocibles.
type fakeGenerator struct {
	lastSnap billing.ReceiptSnapshot
	out      []byte
}

func (f *fakeGenerator) GenerateReceiptPDF(ctx context.Context, snap billing.ReceiptSnapshot) ([]byte, error) {
	f.lastSnap = snap
	return f.out, nil
}

func strPtr(s string) *string { return &s }

func buildUseCase(t *testing.T, gen *fakeGenerator, txs ...*entity.StockTransaction) (*billing.InvoiceUseCase, string) {
	t.Helper()
	dir := t.TempDir()

	txRepo := &fakeTransactionRepo{txs: map[string]*entity.StockTransaction{}}
	for _, tx := range txs {
		txRepo.txs[tx.ID] = tx
	}
	productRepo := &fakeProductRepo{products: map[string]*entity.Product{
		"p1": {ID: "p1", SKU: "WID-1", Name: "Widget", Price: decimal.NewFromFloat(19.99), Stock: 100},
	}}
	supplierRepo := &fakeSupplierRepo{suppliers: map[string]*entity.Supplier{
		"s1": {ID: "s1", Name: "ACME Wholesale"},
	}}
	customerRepo := &fakeCustomerRepo{customers: map[string]*entity.Customer{
		"c1": {ID: "c1", Name: "Jane Doe"},
	}}

	uc := billing.NewInvoiceUseCase(txRepo, productRepo, supplierRepo, customerRepo, gen, dir)
	return uc, dir
}

// ──────────────────────────────────────────────────────────────────────────────
// ReceiptSnapshot
// ──────────────────────────────────────────────────────────────────────────────

func TestReceiptSnapshot_TotalRedondeado(t *testing.T) {
	snap := billing.ReceiptSnapshot{
		Quantity:  3,
		UnitPrice: decimal.NewFromFloat(19.99),
	}
	assert.Equal(t, "59.97", snap.Total().StringFixed(2))
}

func TestReceiptSnapshot_TituloPorTipo(t *testing.T) {
	assert.Equal(t, "SALES INVOICE", billing.ReceiptSnapshot{Type: "OUT"}.Title())
	assert.Equal(t, "PURCHASE ORDER", billing.ReceiptSnapshot{Type: "IN"}.Title())
	assert.Equal(t, "Billed To (Customer):", billing.ReceiptSnapshot{Type: "OUT"}.PartyLabel())
	assert.Equal(t, "Ordered From (Supplier):", billing.ReceiptSnapshot{Type: "IN"}.PartyLabel())
}

// ──────────────────────────────────────────────────────────────────────────────
// DownloadInvoicePDF
// ──────────────────────────────────────────────────────────────────────────────

func TestDownloadInvoicePDF_VentaResuelveCliente(t *testing.T) {
	gen := &fakeGenerator{out: []byte("%PDF-fake")}
	tx := &entity.StockTransaction{
		ID:         "tx-1",
		ProductID:  "p1",
		Type:       "OUT",
		Quantity:   3,
		CustomerID: strPtr("c1"),
		Date:       time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
	uc, dir := buildUseCase(t, gen, tx)

	pdfBytes, filename, err := uc.DownloadInvoicePDF(context.Background(), "tx-1")
	require.NoError(t, err)

	assert.Equal(t, "Invoice_tx-1.pdf", filename)
	assert.Equal(t, []byte("%PDF-fake"), pdfBytes)

	// Snapshot resuelto con producto y contraparte
	assert.Equal(t, "Widget", gen.lastSnap.ProductName)
	assert.Equal(t, "Jane Doe", gen.lastSnap.PartyName)
	assert.Equal(t, "59.97", gen.lastSnap.Total().StringFixed(2))

	// Copia local indexada por ID de transacción
	artifact, err := os.ReadFile(filepath.Join(dir, "receipt_tx-1.pdf"))
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-fake"), artifact)
}

func TestDownloadInvoicePDF_CompraResuelveProveedor(t *testing.T) {
	gen := &fakeGenerator{out: []byte("%PDF-fake")}
	tx := &entity.StockTransaction{
		ID:         "tx-2",
		ProductID:  "p1",
		Type:       "IN",
		Quantity:   10,
		SupplierID: strPtr("s1"),
		Date:       time.Now().UTC(),
	}
	uc, _ := buildUseCase(t, gen, tx)

	_, filename, err := uc.DownloadInvoicePDF(context.Background(), "tx-2")
	require.NoError(t, err)
	assert.Equal(t, "Invoice_tx-2.pdf", filename)
	assert.Equal(t, "ACME Wholesale", gen.lastSnap.PartyName)
	assert.Equal(t, "PURCHASE ORDER", gen.lastSnap.Title())
}

func TestDownloadInvoicePDF_SinContraparte(t *testing.T) {
	gen := &fakeGenerator{out: []byte("x")}
	tx := &entity.StockTransaction{
		ID:        "tx-3",
		ProductID: "p1",
		Type:      "IN",
		Quantity:  1,
		Date:      time.Now().UTC(),
	}
	uc, _ := buildUseCase(t, gen, tx)

	_, _, err := uc.DownloadInvoicePDF(context.Background(), "tx-3")
	require.NoError(t, err)
	assert.Equal(t, "Unknown", gen.lastSnap.PartyName)
}

func TestDownloadInvoicePDF_TransaccionInexistente(t *testing.T) {
	gen := &fakeGenerator{}
	uc, dir := buildUseCase(t, gen)

	_, _, err := uc.DownloadInvoicePDF(context.Background(), "no-existe")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	entries, readErr := os.ReadDir(dir)
	require.NoError(t, readErr)
	assert.Empty(t, entries, "un 404 no deja comprobantes en disco")
}
