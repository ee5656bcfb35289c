package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// ItemRequest entrada de creación y actualización (reemplazo completo, sin parches).
// ID es opcional en el body de una actualización; si viene debe coincidir con la ruta.
type ItemRequest struct {
	ID                string            `json:"id,omitempty"`
	Name              string            `json:"name" validate:"notblank,max=200"`
	SKU               string            `json:"sku" validate:"notblank,max=100"`
	Description       string            `json:"description" validate:"max=1000"`
	CategoryID        string            `json:"categoryId" validate:"required"`
	SubCategoryID     *string           `json:"subCategoryId"`
	Price             *decimal.Decimal  `json:"price" validate:"required"`
	CostPrice         *decimal.Decimal  `json:"costPrice"`
	UnitOfSale        entity.UnitOfSale `json:"unitOfSale" validate:"omitempty,unit"`
	QuantityInStock   int               `json:"quantityInStock" validate:"gte=0"`
	MinimumStockLevel int               `json:"minimumStockLevel" validate:"gte=0"`
	MaximumStockLevel *int              `json:"maximumStockLevel" validate:"omitempty,gte=0"`
	ReorderPoint      int               `json:"reorderPoint" validate:"gte=0"`
	Barcode           string            `json:"barcode" validate:"max=200"`
	Brand             string            `json:"brand" validate:"max=200"`
	Supplier          string            `json:"supplier" validate:"max=200"`
	Weight            *decimal.Decimal  `json:"weight"`
	Dimensions        string            `json:"dimensions" validate:"max=100"`
	ExpiryDate        *time.Time        `json:"expiryDate"`
	Location          string            `json:"location" validate:"max=200"`
	ImageURL          string            `json:"imageUrl" validate:"max=500"`
	Notes             string            `json:"notes" validate:"max=1000"`
	IsActive          *bool             `json:"isActive"`
}

// ItemResponse salida de un ítem con los campos derivados calculados.
type ItemResponse struct {
	ID                string            `json:"id"`
	Name              string            `json:"name"`
	SKU               string            `json:"sku"`
	Description       string            `json:"description"`
	CategoryID        string            `json:"categoryId"`
	CategoryName      string            `json:"categoryName"`
	SubCategoryID     *string           `json:"subCategoryId"`
	SubCategoryName   *string           `json:"subCategoryName"`
	Price             decimal.Decimal   `json:"price"`
	CostPrice         *decimal.Decimal  `json:"costPrice"`
	UnitOfSale        entity.UnitOfSale `json:"unitOfSale"`
	QuantityInStock   int               `json:"quantityInStock"`
	MinimumStockLevel int               `json:"minimumStockLevel"`
	MaximumStockLevel *int              `json:"maximumStockLevel"`
	ReorderPoint      int               `json:"reorderPoint"`
	Barcode           string            `json:"barcode"`
	Brand             string            `json:"brand"`
	Supplier          string            `json:"supplier"`
	Weight            *decimal.Decimal  `json:"weight"`
	Dimensions        string            `json:"dimensions"`
	ExpiryDate        *time.Time        `json:"expiryDate"`
	Location          string            `json:"location"`
	ImageURL          string            `json:"imageUrl"`
	Notes             string            `json:"notes"`
	IsActive          bool              `json:"isActive"`
	CreatedAt         time.Time         `json:"createdAt"`
	UpdatedAt         *time.Time        `json:"updatedAt"`
	ProfitMargin      *decimal.Decimal  `json:"profitMargin"`
	IsLowStock        bool              `json:"isLowStock"`
	NeedsReorder      bool              `json:"needsReorder"`
	TotalValue        decimal.Decimal   `json:"totalValue"`
}

// ItemFilterRequest criterios de búsqueda (query string de GET /api/items).
// nil o vacío = sin restricción sobre ese campo.
type ItemFilterRequest struct {
	CategoryID    *string
	SubCategoryID *string
	SearchTerm    string
	IsActive      *bool
	IsLowStock    *bool
	NeedsReorder  *bool
	MinPrice      *decimal.Decimal
	MaxPrice      *decimal.Decimal
	Brand         string
	Supplier      string
}
