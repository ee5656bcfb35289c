package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockReport datos del reporte de stock bajo / reorden.
type StockReport struct {
	GeneratedAt  time.Time
	LowStock     []ItemResponse
	NeedsReorder []ItemResponse
	TotalValue   decimal.Decimal // valor del stock de los ítems listados (sin duplicar)
}

// ReplenishmentSuggestion ítem a reponer con la cantidad sugerida de pedido.
type ReplenishmentSuggestion struct {
	ItemID             string           `json:"itemId"`
	SKU                string           `json:"sku"`
	Name               string           `json:"name"`
	Supplier           string           `json:"supplier"`
	CurrentStock       int              `json:"currentStock"`
	ReorderPoint       int              `json:"reorderPoint"`
	TargetStock        int              `json:"targetStock"`
	SuggestedOrderQty  int              `json:"suggestedOrderQty"`
	UnitCost           decimal.Decimal  `json:"unitCost"`
	EstimatedOrderCost decimal.Decimal  `json:"estimatedOrderCost"`
	ProfitMargin       *decimal.Decimal `json:"profitMargin"`
	Priority           int              `json:"priority"` // 1 = más urgente
}

// InventorySummary resumen del inventario para el dashboard.
type InventorySummary struct {
	GeneratedAt       time.Time       `json:"generatedAt"`
	ActiveItems       int             `json:"activeItems"`
	InactiveItems     int             `json:"inactiveItems"`
	ActiveCategories  int             `json:"activeCategories"`
	TotalUnits        int             `json:"totalUnits"`
	TotalStockValue   decimal.Decimal `json:"totalStockValue"`
	LowStockCount     int             `json:"lowStockCount"`
	NeedsReorderCount int             `json:"needsReorderCount"`
	OutOfStockCount   int             `json:"outOfStockCount"`
	TopValueItems     []TopValueItem  `json:"topValueItems"`
}

// TopValueItem ítem con mayor valor inmovilizado en stock.
type TopValueItem struct {
	ItemID     string          `json:"itemId"`
	SKU        string          `json:"sku"`
	Name       string          `json:"name"`
	Quantity   int             `json:"quantity"`
	TotalValue decimal.Decimal `json:"totalValue"`
}
