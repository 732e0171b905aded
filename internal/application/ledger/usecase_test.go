package ledger_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Almacen-api/internal/application/dto"
	appledger "github.com/jhoicas/Almacen-api/internal/application/ledger"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/internal/domain/entity"
	domledger "github.com/jhoicas/Almacen-api/internal/domain/ledger"
	"github.com/jhoicas/Almacen-api/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
//
// memStore simula la base de datos; fakeTxRunner simula la transacción:
// fn trabaja sobre una copia (staged) que solo se vuelca al store si fn
// termina sin error. El mutex del runner serializa las "transacciones"
// igual que lo hace el bloqueo de fila FOR UPDATE en PostgreSQL.
// ──────────────────────────────────────────────────────────────────────────────

type memStore struct {
	mu           sync.Mutex
	products     map[string]*entity.Product
	transactions []*entity.StockTransaction
}

func newMemStore() *memStore {
	return &memStore{products: map[string]*entity.Product{}}
}

func (s *memStore) snapshotStock(id string) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.products[id].Stock
}

func (s *memStore) transactionCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.transactions)
}

type staged struct {
	products     map[string]*entity.Product
	transactions []*entity.StockTransaction
}

type fakeTxRunner struct {
	store      *memStore
	failCreate error // si no es nil, Create de transacciones falla con este error
}

func (r *fakeTxRunner) Run(ctx context.Context, fn func(
	products repository.ProductRepository,
	transactions repository.TransactionRepository,
) error) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	st := &staged{products: map[string]*entity.Product{}}
	for id, p := range r.store.products {
		cp := *p
		st.products[id] = &cp
	}

	err := fn(&fakeProductRepo{st: st}, &fakeTransactionRepo{st: st, failCreate: r.failCreate})
	if err != nil {
		return err // rollback: el staged se descarta
	}

	// commit
	r.store.products = st.products
	r.store.transactions = append(r.store.transactions, st.transactions...)
	return nil
}

type fakeProductRepo struct{ st *staged }

func (f *fakeProductRepo) Create(p *entity.Product) error { f.st.products[p.ID] = p; return nil }
func (f *fakeProductRepo) GetByID(id string) (*entity.Product, error) {
	return f.st.products[id], nil
}
func (f *fakeProductRepo) GetBySKU(sku string) (*entity.Product, error) {
	for _, p := range f.st.products {
		if p.SKU == sku {
			return p, nil
		}
	}
	return nil, nil
}
func (f *fakeProductRepo) GetForUpdate(id string) (*entity.Product, error) {
	return f.st.products[id], nil
}
func (f *fakeProductRepo) Update(p *entity.Product) error { f.st.products[p.ID] = p; return nil }
func (f *fakeProductRepo) UpdateStock(id string, stock int64) error {
	p, ok := f.st.products[id]
	if !ok {
		return domain.ErrNotFound
	}
	p.Stock = stock
	return nil
}
func (f *fakeProductRepo) List(limit, offset int) ([]*entity.Product, error) { return nil, nil }
func (f *fakeProductRepo) Delete(id string) error {
	delete(f.st.products, id)
	return nil
}

type fakeTransactionRepo struct {
	st         *staged
	failCreate error
}

func (f *fakeTransactionRepo) Create(tx *entity.StockTransaction) error {
	if f.failCreate != nil {
		return f.failCreate
	}
	f.st.transactions = append(f.st.transactions, tx)
	return nil
}
func (f *fakeTransactionRepo) GetByID(id string) (*entity.StockTransaction, error) {
	for _, tx := range f.st.transactions {
		if tx.ID == id {
			return tx, nil
		}
	}
	return nil, nil
}
func (f *fakeTransactionRepo) List(limit, offset int) ([]*entity.StockTransaction, error) {
	return f.st.transactions, nil
}

// listRepo lee del store ya confirmado (fuera de la transacción).
type listRepo struct{ store *memStore }

func (l *listRepo) Create(tx *entity.StockTransaction) error { return errors.New("solo lectura") }
func (l *listRepo) GetByID(id string) (*entity.StockTransaction, error) {
	l.store.mu.Lock()
	defer l.store.mu.Unlock()
	for _, tx := range l.store.transactions {
		if tx.ID == id {
			return tx, nil
		}
	}
	return nil, nil
}
func (l *listRepo) List(limit, offset int) ([]*entity.StockTransaction, error) {
	l.store.mu.Lock()
	defer l.store.mu.Unlock()
	return append([]*entity.StockTransaction{}, l.store.transactions...), nil
}

func seedProduct(store *memStore, id string, stock int64) {
	store.products[id] = &entity.Product{
		ID:    id,
		SKU:   "SKU-" + id,
		Name:  "Producto " + id,
		Price: decimal.NewFromFloat(19.99),
		Stock: stock,
	}
}

func newEngine(store *memStore) *appledger.RecordTransactionUseCase {
	return appledger.NewRecordTransactionUseCase(&fakeTxRunner{store: store}, &listRepo{store: store})
}

func strPtr(s string) *string { return &s }

// ──────────────────────────────────────────────────────────────────────────────
// Escenario de referencia: stock 10 → OUT 4 → OUT 10 (falla) → IN 5
// ──────────────────────────────────────────────────────────────────────────────

func TestRecord_EscenarioReferencia(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", 10)
	engine := newEngine(store)
	ctx := context.Background()

	// OUT 4: stock 10 → 6, cliente registrado
	out1, err := engine.Record(ctx, dto.CreateTransactionRequest{
		ProductID:  "p1",
		Type:       "OUT",
		Quantity:   4,
		CustomerID: strPtr("c1"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(6), store.snapshotStock("p1"))
	require.NotNil(t, out1.CustomerID)
	assert.Equal(t, "c1", *out1.CustomerID)
	assert.Nil(t, out1.SupplierID)
	assert.False(t, out1.Date.IsZero(), "la fecha la asigna el servidor")

	// OUT 10 con stock 6: rechazado, mensaje con el stock vigente
	_, err = engine.Record(ctx, dto.CreateTransactionRequest{
		ProductID: "p1",
		Type:      "OUT",
		Quantity:  10,
	})
	require.Error(t, err)
	assert.Equal(t, "Not enough stock! You only have 6 left.", err.Error())
	assert.Equal(t, int64(6), store.snapshotStock("p1"), "el rechazo no toca el stock")
	assert.Equal(t, 1, store.transactionCount(), "el rechazo no crea fila en el ledger")

	// IN 5 con cliente enviado por error: stock 6 → 11, cliente descartado
	out2, err := engine.Record(ctx, dto.CreateTransactionRequest{
		ProductID:  "p1",
		Type:       "IN",
		Quantity:   5,
		CustomerID: strPtr("c1"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(11), store.snapshotStock("p1"))
	assert.Nil(t, out2.CustomerID, "una entrada nunca registra cliente")
	assert.Nil(t, out2.SupplierID)
	assert.Equal(t, 2, store.transactionCount())
}

// ──────────────────────────────────────────────────────────────────────────────
// Precondiciones
// ──────────────────────────────────────────────────────────────────────────────

func TestRecord_ProductoInexistente(t *testing.T) {
	store := newMemStore()
	engine := newEngine(store)

	_, err := engine.Record(context.Background(), dto.CreateTransactionRequest{
		ProductID: "no-existe",
		Type:      "IN",
		Quantity:  1,
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Equal(t, 0, store.transactionCount())
}

func TestRecord_TipoInvalido(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", 10)
	engine := newEngine(store)

	_, err := engine.Record(context.Background(), dto.CreateTransactionRequest{
		ProductID: "p1",
		Type:      "in", // sensible a mayúsculas
		Quantity:  1,
	})
	assert.ErrorIs(t, err, domledger.ErrInvalidType)
	assert.Equal(t, int64(10), store.snapshotStock("p1"))
}

func TestRecord_CantidadNoPositiva(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", 10)
	engine := newEngine(store)

	for _, qty := range []int64{0, -3} {
		_, err := engine.Record(context.Background(), dto.CreateTransactionRequest{
			ProductID: "p1",
			Type:      "OUT",
			Quantity:  qty,
		})
		assert.ErrorIs(t, err, domledger.ErrNonPositiveQuantity, "cantidad %d", qty)
	}
	assert.Equal(t, int64(10), store.snapshotStock("p1"))
	assert.Equal(t, 0, store.transactionCount())
}

// ──────────────────────────────────────────────────────────────────────────────
// Atomicidad: si la fila del ledger no se puede escribir, el stock se revierte
// ──────────────────────────────────────────────────────────────────────────────

func TestRecord_RollbackSiFallaElLedger(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", 10)
	boom := errors.New("fallo simulado de escritura")
	engine := appledger.NewRecordTransactionUseCase(
		&fakeTxRunner{store: store, failCreate: boom},
		&listRepo{store: store},
	)

	_, err := engine.Record(context.Background(), dto.CreateTransactionRequest{
		ProductID: "p1",
		Type:      "OUT",
		Quantity:  4,
	})
	require.ErrorIs(t, err, boom)
	assert.Equal(t, int64(10), store.snapshotStock("p1"), "la mutación de stock debe revertirse")
	assert.Equal(t, 0, store.transactionCount())
}

// ──────────────────────────────────────────────────────────────────────────────
// Concurrencia: salidas simultáneas serializadas por el runner
// ──────────────────────────────────────────────────────────────────────────────

func TestRecord_SalidasConcurrentesNoSobrevenden(t *testing.T) {
	const (
		initialStock = 50
		attempts     = 80 // más intentos que stock: los sobrantes deben fallar
	)
	store := newMemStore()
	seedProduct(store, "p1", initialStock)
	engine := newEngine(store)

	var wg sync.WaitGroup
	errs := make([]error, attempts)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = engine.Record(context.Background(), dto.CreateTransactionRequest{
				ProductID: "p1",
				Type:      "OUT",
				Quantity:  1,
			})
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		var insufficient *domain.InsufficientStockError
		require.True(t, errors.As(err, &insufficient), "el único fallo esperado es stock insuficiente: %v", err)
	}

	assert.Equal(t, initialStock, succeeded, "deben venderse exactamente las unidades disponibles")
	assert.Equal(t, int64(0), store.snapshotStock("p1"), "el stock nunca queda negativo")
	assert.Equal(t, initialStock, store.transactionCount())
}

// ──────────────────────────────────────────────────────────────────────────────
// Conservación de stock: stock final == inicial + ΣIN − ΣOUT confirmadas
// ──────────────────────────────────────────────────────────────────────────────

func TestRecord_ConservacionDeStock(t *testing.T) {
	store := newMemStore()
	seedProduct(store, "p1", 20)
	engine := newEngine(store)
	ctx := context.Background()

	moves := []struct {
		typ string
		qty int64
	}{
		{"IN", 5}, {"OUT", 8}, {"OUT", 30}, {"IN", 2}, {"OUT", 19}, {"OUT", 1},
	}

	var sumIn, sumOut int64
	for _, m := range moves {
		_, err := engine.Record(ctx, dto.CreateTransactionRequest{
			ProductID: "p1",
			Type:      m.typ,
			Quantity:  m.qty,
		})
		if err != nil {
			continue // los rechazos no cuentan
		}
		if m.typ == "IN" {
			sumIn += m.qty
		} else {
			sumOut += m.qty
		}
	}

	assert.Equal(t, 20+sumIn-sumOut, store.snapshotStock("p1"))

	list, err := engine.List(100, 0)
	require.NoError(t, err)
	assert.Len(t, list.Items, 4, "solo las confirmadas quedan en el ledger")
}
