// Package analytics contiene los casos de uso del dashboard de inventario.
package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

const dashboardTopItems = 5 // número de ítems en el widget de valor

// DashboardUseCase genera el resumen del inventario.
// Solo lectura: delega todo en los repositorios de ítems y categorías.
type DashboardUseCase struct {
	items      repository.ItemRepository
	categories repository.CategoryRepository
	now        func() time.Time
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(items repository.ItemRepository, categories repository.CategoryRepository) *DashboardUseCase {
	return &DashboardUseCase{items: items, categories: categories, now: time.Now}
}

// GetSummary construye el InventorySummary.
//
// Tres consultas en paralelo:
//  1. ítems activos   → totales, stock bajo, reorden, top por valor
//  2. ítems inactivos → conteo
//  3. categorías activas → conteo
func (uc *DashboardUseCase) GetSummary(ctx context.Context) (*dto.InventorySummary, error) {
	type itemsResult struct {
		items []*entity.Item
		err   error
	}
	type countResult struct {
		n   int
		err error
	}

	activeCh := make(chan itemsResult, 1)
	inactiveCh := make(chan countResult, 1)
	catCh := make(chan countResult, 1)

	go func() {
		list, err := uc.items.List(ctx, repository.ActiveOnly())
		activeCh <- itemsResult{list, err}
	}()
	go func() {
		inactive := false
		list, err := uc.items.List(ctx, repository.ItemFilter{IsActive: &inactive})
		inactiveCh <- countResult{len(list), err}
	}()
	go func() {
		list, err := uc.categories.List(ctx)
		catCh <- countResult{len(list), err}
	}()

	active := <-activeCh
	inactive := <-inactiveCh
	cats := <-catCh

	if active.err != nil {
		return nil, fmt.Errorf("dashboard: ítems activos: %w", active.err)
	}
	if inactive.err != nil {
		return nil, fmt.Errorf("dashboard: ítems inactivos: %w", inactive.err)
	}
	if cats.err != nil {
		return nil, fmt.Errorf("dashboard: categorías: %w", cats.err)
	}

	out := &dto.InventorySummary{
		GeneratedAt:      uc.now().UTC(),
		ActiveItems:      len(active.items),
		InactiveItems:    inactive.n,
		ActiveCategories: cats.n,
		TotalStockValue:  decimal.Zero,
		TopValueItems:    make([]dto.TopValueItem, 0, dashboardTopItems),
	}
	top := make([]dto.TopValueItem, 0, len(active.items))
	for _, it := range active.items {
		value := it.TotalValue()
		out.TotalUnits += it.QuantityInStock
		out.TotalStockValue = out.TotalStockValue.Add(value)
		if it.IsLowStock() {
			out.LowStockCount++
		}
		if it.NeedsReorder() {
			out.NeedsReorderCount++
		}
		if it.QuantityInStock == 0 {
			out.OutOfStockCount++
		}
		top = append(top, dto.TopValueItem{
			ItemID: it.ID, SKU: it.SKU, Name: it.Name,
			Quantity: it.QuantityInStock, TotalValue: value,
		})
	}
	sort.SliceStable(top, func(i, j int) bool { return top[i].TotalValue.GreaterThan(top[j].TotalValue) })
	if len(top) > dashboardTopItems {
		top = top[:dashboardTopItems]
	}
	out.TopValueItems = append(out.TopValueItems, top...)
	return out, nil
}
