package sqlfilter_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/internal/infrastructure/sqlfilter"
)

func TestItems_SinFiltroNoTieneWhere(t *testing.T) {
	q := sqlfilter.Items(repository.ItemFilter{}, sqlfilter.Postgres)
	assert.Empty(t, q.Where)
	assert.Equal(t, " ORDER BY i.name ASC", q.OrderBy)
	assert.Empty(t, q.Args)
}

func TestItems_ConjuncionConMarcadoresDollar(t *testing.T) {
	cat := "c1"
	minPrice := decimal.NewFromInt(5)
	f := repository.ActiveOnly()
	f.CategoryID = &cat
	f.LowStock = true
	f.MinPrice = &minPrice

	q := sqlfilter.Items(f, sqlfilter.Postgres)

	assert.Equal(t, " WHERE i.category_id = $1 AND i.is_active = $2 AND i.quantity_in_stock <= i.minimum_stock_level AND i.price >= $3", q.Where)
	assert.Equal(t, []any{"c1", true, minPrice}, q.Args)
}

func TestItems_BusquedaEnCuatroColumnas(t *testing.T) {
	q := sqlfilter.Items(repository.ItemFilter{Search: " Mar_tillo%"}, sqlfilter.SQLite)

	assert.Contains(t, q.Where, "ulower(COALESCE(i.name, '')) LIKE ?")
	assert.Contains(t, q.Where, "ulower(COALESCE(i.barcode, '')) LIKE ?")
	assert.Contains(t, q.Where, " OR ")
	assert.Len(t, q.Args, 4)
	for _, a := range q.Args {
		assert.Equal(t, `%mar\_tillo\%%`, a)
	}
}

func TestItems_MinusculasSegunMotor(t *testing.T) {
	f := repository.ItemFilter{Brand: "ÑANDÚ"}

	pg := sqlfilter.Items(f, sqlfilter.Postgres)
	assert.Equal(t, ` WHERE LOWER(COALESCE(i.brand, '')) LIKE $1 ESCAPE '\'`, pg.Where)

	lite := sqlfilter.Items(f, sqlfilter.SQLite)
	assert.Equal(t, ` WHERE ulower(COALESCE(i.brand, '')) LIKE ? ESCAPE '\'`, lite.Where)
	assert.Equal(t, []any{"%ñandú%"}, lite.Args)
}

func TestItems_FalsosNoRestringen(t *testing.T) {
	q := sqlfilter.Items(repository.ItemFilter{LowStock: false, NeedsReorder: false, Brand: "  "}, sqlfilter.SQLite)
	assert.Empty(t, q.Where)
}

func TestItems_OrdenPorCantidad(t *testing.T) {
	q := sqlfilter.Items(repository.ItemFilter{NeedsReorder: true, OrderBy: repository.OrderByQuantity}, sqlfilter.SQLite)
	assert.Equal(t, " WHERE i.quantity_in_stock <= i.reorder_point", q.Where)
	assert.Equal(t, " ORDER BY i.quantity_in_stock ASC, i.name ASC", q.OrderBy)
}
