package usecase

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/application/dto"
)

// ReportUseCase reportes de inventario.
type ReportUseCase struct {
	items *ItemUseCase
	gen   StockReportGenerator
	now   func() time.Time
}

// NewReportUseCase construye el caso de uso.
func NewReportUseCase(items *ItemUseCase, gen StockReportGenerator) *ReportUseCase {
	return &ReportUseCase{items: items, gen: gen, now: time.Now}
}

// BuildStockReport reúne los ítems activos en stock bajo y los que requieren reorden.
// TotalValue suma cada ítem una sola vez aunque aparezca en ambas listas.
func (uc *ReportUseCase) BuildStockReport(ctx context.Context) (*dto.StockReport, error) {
	low, err := uc.items.GetLowStock(ctx)
	if err != nil {
		return nil, err
	}
	reorder, err := uc.items.GetNeedingReorder(ctx)
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{}, len(low)+len(reorder))
	total := decimal.Zero
	for _, list := range [][]dto.ItemResponse{low, reorder} {
		for _, it := range list {
			if _, ok := seen[it.ID]; ok {
				continue
			}
			seen[it.ID] = struct{}{}
			total = total.Add(it.TotalValue)
		}
	}
	return &dto.StockReport{
		GeneratedAt:  uc.now().UTC(),
		LowStock:     low,
		NeedsReorder: reorder,
		TotalValue:   total,
	}, nil
}

// StockReportPDF genera el PDF del reporte de stock.
func (uc *ReportUseCase) StockReportPDF(ctx context.Context) ([]byte, error) {
	report, err := uc.BuildStockReport(ctx)
	if err != nil {
		return nil, err
	}
	return uc.gen.GenerateStockReport(report)
}
