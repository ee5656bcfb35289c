package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Item representa un artículo en stock. Los campos derivados (IsLowStock,
// NeedsReorder, ProfitMargin, TotalValue) se calculan al leer, nunca se guardan.
type Item struct {
	ID                string
	Name              string
	SKU               string // único global
	Description       string
	CategoryID        string
	CategoryName      string // join
	SubCategoryID     *string
	SubCategoryName   *string // join
	Price             decimal.Decimal
	CostPrice         *decimal.Decimal
	UnitOfSale        UnitOfSale
	QuantityInStock   int
	MinimumStockLevel int
	MaximumStockLevel *int
	ReorderPoint      int
	Barcode           string
	Brand             string
	Supplier          string
	Weight            *decimal.Decimal // kg
	Dimensions        string
	ExpiryDate        *time.Time
	Location          string // pasillo-estante-casilla
	ImageURL          string
	Notes             string
	IsActive          bool
	CreatedAt         time.Time
	UpdatedAt         *time.Time
}

var hundred = decimal.NewFromInt(100)

// IsLowStock stock en o bajo el mínimo.
func (i *Item) IsLowStock() bool {
	return i.QuantityInStock <= i.MinimumStockLevel
}

// NeedsReorder stock en o bajo el punto de reorden.
func (i *Item) NeedsReorder() bool {
	return i.QuantityInStock <= i.ReorderPoint
}

// ProfitMargin (precio - costo) / costo * 100. nil si no hay costo o es <= 0.
func (i *Item) ProfitMargin() *decimal.Decimal {
	if i.CostPrice == nil || !i.CostPrice.GreaterThan(decimal.Zero) {
		return nil
	}
	m := i.Price.Sub(*i.CostPrice).Div(*i.CostPrice).Mul(hundred)
	return &m
}

// TotalValue cantidad * (costo si existe, si no precio).
func (i *Item) TotalValue() decimal.Decimal {
	unit := i.Price
	if i.CostPrice != nil {
		unit = *i.CostPrice
	}
	return unit.Mul(decimal.NewFromInt(int64(i.QuantityInStock)))
}
