package stock_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/ventas-pro/internal/application/stock"
	"github.com/jhoicas/ventas-pro/internal/domain"
	"github.com/jhoicas/ventas-pro/internal/domain/entity"
	"github.com/jhoicas/ventas-pro/internal/domain/repository"
)

// ──────────────────────────────────────────────────────────────────────────────
// Fakes en memoria
//
// Cada test recibe un almacén aislado (ver nota de diseño sobre el handle de
// persistencia inyectado). El runner simula commit/rollback con snapshots para
// que un callback fallido deje el almacén exactamente como estaba.
// ──────────────────────────────────────────────────────────────────────────────

type memStockRepo struct {
	items map[string]entity.StockItem
	order []string
}

var _ repository.StockItemRepository = (*memStockRepo)(nil)

func newMemStockRepo() *memStockRepo {
	return &memStockRepo{items: make(map[string]entity.StockItem)}
}

func (m *memStockRepo) Exists(serial string) (bool, error) {
	_, ok := m.items[serial]
	return ok, nil
}

func (m *memStockRepo) GetBySerial(serial string) (*entity.StockItem, error) {
	it, ok := m.items[serial]
	if !ok {
		return nil, nil
	}
	return &it, nil
}

func (m *memStockRepo) GetBySerialForUpdate(serial string) (*entity.StockItem, error) {
	return m.GetBySerial(serial)
}

func (m *memStockRepo) Create(item *entity.StockItem) error {
	if _, ok := m.items[item.Serial]; ok {
		return domain.ErrDuplicate
	}
	m.items[item.Serial] = *item
	m.order = append(m.order, item.Serial)
	return nil
}

func (m *memStockRepo) Update(item *entity.StockItem) error {
	if _, ok := m.items[item.Serial]; !ok {
		return nil // UPDATE sobre fila inexistente: cero filas afectadas
	}
	m.items[item.Serial] = *item
	return nil
}

func (m *memStockRepo) Delete(serial string) error {
	delete(m.items, serial)
	for i, s := range m.order {
		if s == serial {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *memStockRepo) ListAll() ([]*entity.StockItem, error) {
	out := make([]*entity.StockItem, 0, len(m.order))
	for _, s := range m.order {
		it := m.items[s]
		out = append(out, &it)
	}
	return out, nil
}

func (m *memStockRepo) ListByKind(kind string) ([]*entity.StockItem, error) {
	var out []*entity.StockItem
	for _, s := range m.order {
		it := m.items[s]
		if it.Kind == kind {
			out = append(out, &it)
		}
	}
	return out, nil
}

func (m *memStockRepo) snapshot() (map[string]entity.StockItem, []string) {
	items := make(map[string]entity.StockItem, len(m.items))
	for k, v := range m.items {
		items[k] = v
	}
	return items, append([]string(nil), m.order...)
}

func (m *memStockRepo) restore(items map[string]entity.StockItem, order []string) {
	m.items = items
	m.order = order
}

type memTxRunner struct {
	repo *memStockRepo
}

func (r *memTxRunner) Run(_ context.Context, fn func(stockRepo repository.StockItemRepository) error) error {
	items, order := r.repo.snapshot()
	if err := fn(r.repo); err != nil {
		r.repo.restore(items, order)
		return err
	}
	return nil
}

func newTestUseCase() (*stock.UseCase, *memStockRepo) {
	repo := newMemStockRepo()
	return stock.NewUseCase(repo, &memTxRunner{repo: repo}), repo
}

func price(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func seedItem(t *testing.T, uc *stock.UseCase, serial string, qty int64, unitPrice string) {
	t.Helper()
	_, err := uc.Add(context.Background(), stock.AddInput{
		Serial:    serial,
		Kind:      "Notebook",
		Brand:     "Acme",
		Model:     "X1",
		Quantity:  qty,
		UnitPrice: price(unitPrice),
	})
	require.NoError(t, err)
}

// ──────────────────────────────────────────────────────────────────────────────
// Alta y consulta
// ──────────────────────────────────────────────────────────────────────────────

func TestAdd_LuegoLookup(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	seedItem(t, uc, "S1", 10, "25.00")

	item, err := uc.Lookup(ctx, "S1")
	require.NoError(t, err)
	assert.Equal(t, int64(10), item.Quantity)
	assert.True(t, item.UnitPrice.Equal(price("25.00")),
		"el precio unitario debe conservarse tal como se registró")
	assert.Equal(t, "Notebook", item.Kind)
	assert.WithinDuration(t, time.Now(), item.UpdatedAt, time.Minute)
}

func TestAdd_SerieDuplicada(t *testing.T) {
	uc, repo := newTestUseCase()
	ctx := context.Background()

	seedItem(t, uc, "S1", 10, "25.00")

	_, err := uc.Add(ctx, stock.AddInput{
		Serial: "S1", Kind: "Tablet", Brand: "Otra", Model: "Z9",
		Quantity: 3, UnitPrice: price("99.00"),
	})
	require.ErrorIs(t, err, domain.ErrDuplicate)

	// La fila existente no debe haberse tocado
	existing := repo.items["S1"]
	assert.Equal(t, int64(10), existing.Quantity)
	assert.Equal(t, "Notebook", existing.Kind)
}

func TestAdd_EntradaInvalida(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	cases := []struct {
		name string
		in   stock.AddInput
	}{
		{"cantidad cero", stock.AddInput{Serial: "S1", Kind: "N", Brand: "A", Model: "M", Quantity: 0, UnitPrice: price("10")}},
		{"cantidad negativa", stock.AddInput{Serial: "S1", Kind: "N", Brand: "A", Model: "M", Quantity: -2, UnitPrice: price("10")}},
		{"precio cero", stock.AddInput{Serial: "S1", Kind: "N", Brand: "A", Model: "M", Quantity: 1, UnitPrice: decimal.Zero}},
		{"serie vacía", stock.AddInput{Serial: "", Kind: "N", Brand: "A", Model: "M", Quantity: 1, UnitPrice: price("10")}},
		{"tipo vacío", stock.AddInput{Serial: "S1", Kind: "", Brand: "A", Model: "M", Quantity: 1, UnitPrice: price("10")}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Add(ctx, tc.in)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}
}

func TestExists(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	seedItem(t, uc, "S1", 1, "10.00")

	ok, err := uc.Exists(ctx, "S1")
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = uc.Exists(ctx, "NADA")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestLookup_NoEncontrado(t *testing.T) {
	uc, _ := newTestUseCase()
	_, err := uc.Lookup(context.Background(), "NADA")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Actualización parcial (fusión con lo almacenado)
// ──────────────────────────────────────────────────────────────────────────────

func TestUpdate_FusionaCampos(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	seedItem(t, uc, "S1", 10, "25.00")

	qty := int64(5)
	updated, err := uc.Update(ctx, stock.UpdateInput{Serial: "S1", Quantity: &qty})
	require.NoError(t, err)

	// Solo cambia la cantidad; los campos no provistos conservan su valor
	assert.Equal(t, int64(5), updated.Quantity)
	assert.Equal(t, "Notebook", updated.Kind)
	assert.Equal(t, "Acme", updated.Brand)
	assert.True(t, updated.UnitPrice.Equal(price("25.00")))
}

func TestUpdate_TodosLosCampos(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	seedItem(t, uc, "S1", 10, "25.00")

	kind, brand, model := "Tablet", "Umbrella", "T-800"
	qty := int64(7)
	p := price("199.90")
	updated, err := uc.Update(ctx, stock.UpdateInput{
		Serial: "S1", Kind: &kind, Brand: &brand, Model: &model,
		Quantity: &qty, UnitPrice: &p,
	})
	require.NoError(t, err)
	assert.Equal(t, "Tablet", updated.Kind)
	assert.Equal(t, "Umbrella", updated.Brand)
	assert.Equal(t, "T-800", updated.Model)
	assert.Equal(t, int64(7), updated.Quantity)
	assert.True(t, updated.UnitPrice.Equal(p))
}

func TestUpdate_RevalidaPositividad(t *testing.T) {
	uc, repo := newTestUseCase()
	ctx := context.Background()

	seedItem(t, uc, "S1", 10, "25.00")

	negQty := int64(-1)
	_, err := uc.Update(ctx, stock.UpdateInput{Serial: "S1", Quantity: &negQty})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	zero := decimal.Zero
	_, err = uc.Update(ctx, stock.UpdateInput{Serial: "S1", UnitPrice: &zero})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	// El almacén quedó intacto tras los intentos inválidos
	assert.Equal(t, int64(10), repo.items["S1"].Quantity)
	assert.True(t, repo.items["S1"].UnitPrice.Equal(price("25.00")))
}

func TestUpdate_NoEncontrado(t *testing.T) {
	uc, _ := newTestUseCase()
	qty := int64(5)
	_, err := uc.Update(context.Background(), stock.UpdateInput{Serial: "NADA", Quantity: &qty})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// ──────────────────────────────────────────────────────────────────────────────
// Baja y listados
// ──────────────────────────────────────────────────────────────────────────────

func TestRemove_SegundaLlamadaFalla(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	seedItem(t, uc, "S1", 10, "25.00")

	require.NoError(t, uc.Remove(ctx, "S1"))

	// Segunda llamada: falla con NotFound y no altera el efecto de la primera
	err := uc.Remove(ctx, "S1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Lookup(ctx, "S1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestListAll_OrdenDeInsercion(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	seedItem(t, uc, "S3", 1, "10.00")
	seedItem(t, uc, "S1", 2, "20.00")
	seedItem(t, uc, "S2", 3, "30.00")

	items, err := uc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	assert.Equal(t, "S3", items[0].Serial)
	assert.Equal(t, "S1", items[1].Serial)
	assert.Equal(t, "S2", items[2].Serial)
}

func TestFindByKind_CoincidenciaExacta(t *testing.T) {
	uc, _ := newTestUseCase()
	ctx := context.Background()

	seedItem(t, uc, "S1", 1, "10.00")
	_, err := uc.Add(ctx, stock.AddInput{
		Serial: "S2", Kind: "Tablet", Brand: "Acme", Model: "T1",
		Quantity: 1, UnitPrice: price("10.00"),
	})
	require.NoError(t, err)

	items, err := uc.FindByKind(ctx, "Tablet")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "S2", items[0].Serial)

	// "tablet" en minúsculas no coincide: el filtro es exacto
	items, err = uc.FindByKind(ctx, "tablet")
	require.NoError(t, err)
	assert.Empty(t, items)
}
