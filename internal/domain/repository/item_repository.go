package repository

import (
	"context"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// ItemOrder criterio de orden de un listado de ítems.
type ItemOrder int

const (
	OrderByName     ItemOrder = iota // nombre ascendente
	OrderByQuantity                  // cantidad en stock ascendente
)

// ItemFilter conjunción (AND) de predicados. Un campo nil/vacío no restringe.
// LowStock y NeedsReorder solo restringen cuando son true.
type ItemFilter struct {
	CategoryID    *string
	SubCategoryID *string
	Search        string // nombre, SKU, descripción o código de barras
	IsActive      *bool
	LowStock      bool
	NeedsReorder  bool
	MinPrice      *decimal.Decimal
	MaxPrice      *decimal.Decimal
	Brand         string
	Supplier      string
	OrderBy       ItemOrder
}

// ActiveOnly filtro base de todas las consultas que solo ven ítems activos.
func ActiveOnly() ItemFilter {
	active := true
	return ItemFilter{IsActive: &active}
}

// ItemRepository define el puerto de persistencia para Item (DIP).
// Las lecturas devuelven los nombres de categoría y subcategoría ya resueltos.
type ItemRepository interface {
	Create(ctx context.Context, item *entity.Item) error
	GetByID(ctx context.Context, id string) (*entity.Item, error)
	GetBySKU(ctx context.Context, sku string) (*entity.Item, error)
	Update(ctx context.Context, item *entity.Item) error
	// SoftDelete true si el ítem existe (aunque ya estuviera inactivo).
	SoftDelete(ctx context.Context, id string, at time.Time) (bool, error)
	List(ctx context.Context, filter ItemFilter) ([]*entity.Item, error)
	// SKUExists comparación exacta, activos e inactivos. excludeID vacío = no excluir.
	SKUExists(ctx context.Context, sku, excludeID string) (bool, error)
}
