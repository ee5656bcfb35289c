package analytics_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/application/analytics"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/almacen-api/internal/infrastructure/sqlite/sqlitetest"
)

func TestGetSummary_TotalesDelInventario(t *testing.T) {
	db := sqlitetest.NewDB(t)
	ctx := context.Background()
	itemRepo := sqlite.NewItemRepository(db)
	catRepo := sqlite.NewCategoryRepository(db)
	categories := usecase.NewCategoryUseCase(catRepo)
	items := usecase.NewItemUseCase(itemRepo, sqlite.NewTxRunner(db))

	cat, err := categories.Create(ctx, dto.CategoryRequest{Name: "Tools"})
	require.NoError(t, err)
	_, err = categories.Create(ctx, dto.CategoryRequest{Name: "Books"})
	require.NoError(t, err)

	price := func(s string) *decimal.Decimal { d := decimal.RequireFromString(s); return &d }
	_, err = items.Create(ctx, dto.ItemRequest{Name: "Martillo", SKU: "M", CategoryID: cat.ID, Price: price("10"), QuantityInStock: 2, MinimumStockLevel: 5})
	require.NoError(t, err)
	_, err = items.Create(ctx, dto.ItemRequest{Name: "Taladro", SKU: "T", CategoryID: cat.ID, Price: price("100"), QuantityInStock: 3})
	require.NoError(t, err)
	_, err = items.Create(ctx, dto.ItemRequest{Name: "Llave", SKU: "L", CategoryID: cat.ID, Price: price("5"), QuantityInStock: 0, ReorderPoint: 1})
	require.NoError(t, err)
	gone, err := items.Create(ctx, dto.ItemRequest{Name: "Viejo", SKU: "V", CategoryID: cat.ID, Price: price("1"), QuantityInStock: 9})
	require.NoError(t, err)
	_, err = items.Delete(ctx, gone.ID)
	require.NoError(t, err)

	sum, err := analytics.NewDashboardUseCase(itemRepo, catRepo).GetSummary(ctx)
	require.NoError(t, err)

	assert.Equal(t, 3, sum.ActiveItems)
	assert.Equal(t, 1, sum.InactiveItems)
	assert.Equal(t, 2, sum.ActiveCategories)
	assert.Equal(t, 5, sum.TotalUnits)
	assert.True(t, decimal.NewFromInt(320).Equal(sum.TotalStockValue), sum.TotalStockValue.String())
	assert.Equal(t, 2, sum.LowStockCount, "martillo (2<=5) y llave (0<=0)")
	assert.Equal(t, 1, sum.NeedsReorderCount, "solo llave (0<=1)")
	assert.Equal(t, 1, sum.OutOfStockCount)
	require.NotEmpty(t, sum.TopValueItems)
	assert.Equal(t, "T", sum.TopValueItems[0].SKU)
}
