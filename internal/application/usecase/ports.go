package usecase

import (
	"context"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ItemTxRunner ejecuta fn dentro de una transacción, con repositorios atados a ella.
// Las validaciones de referencias y SKU se hacen en la misma tx que la escritura;
// el índice único sigue siendo quien garantiza la unicidad.
type ItemTxRunner interface {
	Run(ctx context.Context, fn func(
		items repository.ItemRepository,
		categories repository.CategoryRepository,
		subCategories repository.SubCategoryRepository,
	) error) error
}

// StockReportGenerator renderiza el reporte de stock (PDF).
type StockReportGenerator interface {
	GenerateStockReport(report *dto.StockReport) ([]byte, error)
}
