// Package inventory contiene los casos de uso de reposición de stock.
package inventory

import (
	"context"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ReplenishmentUseCase genera la lista de reposición a partir de los ítems bajo punto de reorden.
type ReplenishmentUseCase struct {
	items repository.ItemRepository
}

// NewReplenishmentUseCase construye el caso de uso de reposición.
func NewReplenishmentUseCase(items repository.ItemRepository) *ReplenishmentUseCase {
	return &ReplenishmentUseCase{items: items}
}

// GenerateReplenishmentList devuelve los ítems activos con stock <= punto de reorden,
// con la cantidad sugerida de pedido y un ranking de prioridad.
//
// Stock objetivo: el máximo si está definido; si no, 1.5 × punto de reorden
// (redondeado hacia arriba y nunca por debajo del mínimo).
func (uc *ReplenishmentUseCase) GenerateReplenishmentList(ctx context.Context) ([]dto.ReplenishmentSuggestion, error) {
	f := repository.ActiveOnly()
	f.NeedsReorder = true
	f.OrderBy = repository.OrderByQuantity
	items, err := uc.items.List(ctx, f)
	if err != nil {
		return nil, err
	}

	suggestions := make([]dto.ReplenishmentSuggestion, 0, len(items))
	for _, it := range items {
		target := targetStock(it)
		qty := target - it.QuantityInStock
		if qty < 0 {
			qty = 0
		}
		unitCost := it.Price
		if it.CostPrice != nil {
			unitCost = *it.CostPrice
		}
		suggestions = append(suggestions, dto.ReplenishmentSuggestion{
			ItemID:             it.ID,
			SKU:                it.SKU,
			Name:               it.Name,
			Supplier:           it.Supplier,
			CurrentStock:       it.QuantityInStock,
			ReorderPoint:       it.ReorderPoint,
			TargetStock:        target,
			SuggestedOrderQty:  qty,
			UnitCost:           unitCost,
			EstimatedOrderCost: unitCost.Mul(decimal.NewFromInt(int64(qty))),
			ProfitMargin:       it.ProfitMargin(),
		})
	}

	// Orden: primero sin stock, luego mayor déficit bajo el reorden,
	// finalmente mayor margen (sin margen al final).
	sort.SliceStable(suggestions, func(i, j int) bool {
		a, b := suggestions[i], suggestions[j]
		if (a.CurrentStock == 0) != (b.CurrentStock == 0) {
			return a.CurrentStock == 0
		}
		defA := a.ReorderPoint - a.CurrentStock
		defB := b.ReorderPoint - b.CurrentStock
		if defA != defB {
			return defA > defB
		}
		switch {
		case a.ProfitMargin == nil:
			return false
		case b.ProfitMargin == nil:
			return true
		}
		return a.ProfitMargin.GreaterThan(*b.ProfitMargin)
	})

	for i := range suggestions {
		suggestions[i].Priority = i + 1
	}
	return suggestions, nil
}

func targetStock(it *entity.Item) int {
	if it.MaximumStockLevel != nil && *it.MaximumStockLevel > 0 {
		return *it.MaximumStockLevel
	}
	target := (it.ReorderPoint*3 + 1) / 2
	if target < it.MinimumStockLevel {
		target = it.MinimumStockLevel
	}
	return target
}
