package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/almacen-api/internal/infrastructure/sqlite/sqlitetest"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers
// ──────────────────────────────────────────────────────────────────────────────

type fixture struct {
	categories    *usecase.CategoryUseCase
	subCategories *usecase.SubCategoryUseCase
	items         *usecase.ItemUseCase
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	db := sqlitetest.NewDB(t)
	catRepo := sqlite.NewCategoryRepository(db)
	return fixture{
		categories:    usecase.NewCategoryUseCase(catRepo),
		subCategories: usecase.NewSubCategoryUseCase(sqlite.NewSubCategoryRepository(db), catRepo),
		items:         usecase.NewItemUseCase(sqlite.NewItemRepository(db), sqlite.NewTxRunner(db)),
	}
}

func (f fixture) category(t *testing.T, name string) *dto.CategoryResponse {
	t.Helper()
	c, err := f.categories.Create(context.Background(), dto.CategoryRequest{Name: name})
	require.NoError(t, err)
	return c
}

func (f fixture) subCategory(t *testing.T, name, categoryID string) *dto.SubCategoryResponse {
	t.Helper()
	s, err := f.subCategories.Create(context.Background(), dto.SubCategoryRequest{Name: name, CategoryID: categoryID})
	require.NoError(t, err)
	return s
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func itemRequest(sku, categoryID string) dto.ItemRequest {
	return dto.ItemRequest{Name: "Item " + sku, SKU: sku, CategoryID: categoryID, Price: dec("9.99")}
}

// ──────────────────────────────────────────────────────────────────────────────
// Ítems
// ──────────────────────────────────────────────────────────────────────────────

func TestItem_EscenarioHerramientasManuales(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	tools := f.category(t, "Tools")
	hand := f.subCategory(t, "Hand Tools", tools.ID)

	in := itemRequest("HT-001", tools.ID)
	in.SubCategoryID = &hand.ID
	in.QuantityInStock = 2
	in.MinimumStockLevel = 5
	created, err := f.items.Create(ctx, in)
	require.NoError(t, err)

	got, err := f.items.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.IsLowStock)
	assert.False(t, got.NeedsReorder, "reorderPoint 0 con stock 2")
	assert.True(t, got.IsActive)
	assert.Equal(t, "Tools", got.CategoryName)
	require.NotNil(t, got.SubCategoryName)
	assert.Equal(t, "Hand Tools", *got.SubCategoryName)
	assert.Equal(t, entity.UnitPiece, got.UnitOfSale)
	assert.Nil(t, got.ProfitMargin)
	assert.True(t, decimal.RequireFromString("19.98").Equal(got.TotalValue))
}

func TestItem_SKUDuplicadoActivoOInactivoEsConflicto(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.category(t, "Tools")

	first, err := f.items.Create(ctx, itemRequest("DUP-1", c.ID))
	require.NoError(t, err)
	_, err = f.items.Create(ctx, itemRequest("DUP-1", c.ID))
	assert.ErrorIs(t, err, domain.ErrConflict)

	ok, err := f.items.Delete(ctx, first.ID)
	require.NoError(t, err)
	require.True(t, ok)
	_, err = f.items.Create(ctx, itemRequest("DUP-1", c.ID))
	assert.ErrorIs(t, err, domain.ErrConflict, "el SKU de un ítem inactivo sigue ocupado")
}

func TestItem_SubcategoriaDeOtraCategoriaEsReferenciaInvalida(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	tools := f.category(t, "Tools")
	books := f.category(t, "Books")
	novels := f.subCategory(t, "Novels", books.ID)

	in := itemRequest("X-1", tools.ID)
	in.SubCategoryID = &novels.ID
	_, err := f.items.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrInvalidReference)
	assert.ErrorIs(t, err, domain.ErrSubCategoryMismatch)
}

func TestItem_CategoriaInexistenteEsReferenciaInvalida(t *testing.T) {
	f := newFixture(t)
	_, err := f.items.Create(context.Background(), itemRequest("X-1", "no-existe"))
	assert.ErrorIs(t, err, domain.ErrInvalidReference)
}

func TestItem_CategoriaDadaDeBajaEsReferenciaInvalida(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	tools := f.category(t, "Tools")
	books := f.category(t, "Books")
	item, err := f.items.Create(ctx, itemRequest("HT-1", books.ID))
	require.NoError(t, err)

	ok, err := f.categories.Delete(ctx, tools.ID)
	require.NoError(t, err)
	require.True(t, ok)

	_, err = f.items.Create(ctx, itemRequest("HT-9", tools.ID))
	assert.ErrorIs(t, err, domain.ErrInvalidReference)
	assert.ErrorIs(t, err, domain.ErrCategoryNotFound)

	_, err = f.items.Update(ctx, item.ID, itemRequest("HT-1", tools.ID))
	assert.ErrorIs(t, err, domain.ErrInvalidReference, "tampoco se puede mover un ítem a ella")
}

func TestItem_ValidacionDeEntrada(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.category(t, "Tools")

	cases := map[string]func(*dto.ItemRequest){
		"sin nombre":      func(r *dto.ItemRequest) { r.Name = "  " },
		"sin precio":      func(r *dto.ItemRequest) { r.Price = nil },
		"precio negativo": func(r *dto.ItemRequest) { r.Price = dec("-1") },
		"costo negativo":  func(r *dto.ItemRequest) { r.CostPrice = dec("-0.01") },
		"stock negativo":  func(r *dto.ItemRequest) { r.QuantityInStock = -1 },
		"unidad inválida": func(r *dto.ItemRequest) { r.UnitOfSale = "Barrel" },
		"sku demasiado largo": func(r *dto.ItemRequest) {
			b := make([]byte, 101)
			for i := range b {
				b[i] = 'A'
			}
			r.SKU = string(b)
		},
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := itemRequest("V-1", c.ID)
			mutate(&in)
			_, err := f.items.Create(ctx, in)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestItem_UpdateReemplazaTodoYExcluyeSuPropioSKU(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.category(t, "Tools")
	a, err := f.items.Create(ctx, itemRequest("A-1", c.ID))
	require.NoError(t, err)
	_, err = f.items.Create(ctx, itemRequest("B-1", c.ID))
	require.NoError(t, err)

	in := itemRequest("A-1", c.ID)
	in.Name = "Renombrado"
	in.CostPrice = dec("5")
	in.Price = dec("10")
	updated, err := f.items.Update(ctx, a.ID, in)
	require.NoError(t, err)
	assert.Equal(t, "Renombrado", updated.Name)
	require.NotNil(t, updated.UpdatedAt)
	require.NotNil(t, updated.ProfitMargin)
	assert.True(t, decimal.NewFromInt(100).Equal(*updated.ProfitMargin))

	_, err = f.items.Update(ctx, a.ID, itemRequest("B-1", c.ID))
	assert.ErrorIs(t, err, domain.ErrDuplicateSKU)

	_, err = f.items.Update(ctx, "no-existe", itemRequest("Z-1", c.ID))
	assert.ErrorIs(t, err, domain.ErrNotFound)

	mismatch := itemRequest("A-1", c.ID)
	mismatch.ID = "otro"
	_, err = f.items.Update(ctx, a.ID, mismatch)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestItem_SoftDeleteConservaLaFila(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.category(t, "Tools")
	it, err := f.items.Create(ctx, itemRequest("D-1", c.ID))
	require.NoError(t, err)

	ok, err := f.items.Delete(ctx, it.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	got, err := f.items.GetByID(ctx, it.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.False(t, got.IsActive)

	list, err := f.items.List(ctx, dto.ItemFilterRequest{})
	require.NoError(t, err)
	assert.Empty(t, list, "sin filtros solo se listan activos")

	ok, err = f.items.Delete(ctx, "no-existe")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestItem_LowStockYReordenOrdenadosPorCantidad(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.category(t, "Tools")
	for _, s := range []struct {
		sku          string
		qty, min, rp int
	}{{"Q-3", 3, 5, 3}, {"Q-1", 1, 5, 0}, {"Q-9", 9, 5, 10}} {
		in := itemRequest(s.sku, c.ID)
		in.QuantityInStock, in.MinimumStockLevel, in.ReorderPoint = s.qty, s.min, s.rp
		_, err := f.items.Create(ctx, in)
		require.NoError(t, err)
	}

	low, err := f.items.GetLowStock(ctx)
	require.NoError(t, err)
	require.Len(t, low, 2)
	assert.Equal(t, "Q-1", low[0].SKU)
	assert.Equal(t, "Q-3", low[1].SKU)

	reorder, err := f.items.GetNeedingReorder(ctx)
	require.NoError(t, err)
	require.Len(t, reorder, 2)
	assert.Equal(t, "Q-3", reorder[0].SKU)
	assert.Equal(t, "Q-9", reorder[1].SKU)

	notLow := false
	all, err := f.items.List(ctx, dto.ItemFilterRequest{IsLowStock: &notLow})
	require.NoError(t, err)
	assert.Len(t, all, 3, "isLowStock=false no restringe")
}

// ──────────────────────────────────────────────────────────────────────────────
// Categorías y subcategorías
// ──────────────────────────────────────────────────────────────────────────────

func TestCategory_UpdateDeInactivaDevuelveNil(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.category(t, "Tools")
	ok, err := f.categories.Delete(ctx, c.ID)
	require.NoError(t, err)
	require.True(t, ok)

	got, err := f.categories.Update(ctx, c.ID, dto.CategoryRequest{Name: "Tools 2"})
	require.NoError(t, err)
	assert.Nil(t, got)

	still, err := f.categories.GetByID(ctx, c.ID)
	require.NoError(t, err)
	require.NotNil(t, still)
	assert.False(t, still.IsActive)
}

func TestCategory_NombreVacioYDuplicado(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, err := f.categories.Create(ctx, dto.CategoryRequest{Name: "   "})
	assert.ErrorIs(t, err, domain.ErrValidation)

	f.category(t, "Tools")
	_, err = f.categories.Create(ctx, dto.CategoryRequest{Name: "Tools"})
	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestSubCategory_RequiereCategoriaActivaYNombreLibre(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.category(t, "Tools")
	f.subCategory(t, "Hand Tools", c.ID)

	_, err := f.subCategories.Create(ctx, dto.SubCategoryRequest{Name: "HAND TOOLS", CategoryID: c.ID})
	assert.ErrorIs(t, err, domain.ErrConflict)

	other := f.category(t, "Garden")
	s, err := f.subCategories.Create(ctx, dto.SubCategoryRequest{Name: "Hand Tools", CategoryID: other.ID})
	require.NoError(t, err, "el nombre es único solo dentro de la categoría")
	assert.Equal(t, "Garden", s.CategoryName)

	_, err = f.categories.Delete(ctx, other.ID)
	require.NoError(t, err)
	_, err = f.subCategories.Create(ctx, dto.SubCategoryRequest{Name: "Shovels", CategoryID: other.ID})
	assert.ErrorIs(t, err, domain.ErrInvalidReference)

	missing, err := f.subCategories.Update(ctx, "no-existe", dto.SubCategoryRequest{Name: "X", CategoryID: c.ID})
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestSubCategory_UpdateExcluyeASiMisma(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c := f.category(t, "Tools")
	s := f.subCategory(t, "Hand Tools", c.ID)

	got, err := f.subCategories.Update(ctx, s.ID, dto.SubCategoryRequest{Name: "hand tools", Description: "manuales", CategoryID: c.ID})
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "hand tools", got.Name)
	assert.Equal(t, "manuales", got.Description)
}
