package repository

import (
	"context"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// SubCategoryRepository define el puerto de persistencia para SubCategory (DIP).
type SubCategoryRepository interface {
	Create(ctx context.Context, sub *entity.SubCategory) error
	GetByID(ctx context.Context, id string) (*entity.SubCategory, error)
	// List activas, ordenadas por nombre de categoría y luego por nombre.
	List(ctx context.Context) ([]*entity.SubCategory, error)
	ListByCategory(ctx context.Context, categoryID string) ([]*entity.SubCategory, error)
	// Update, SoftDelete y Exists actúan sobre la fila en cualquier estado.
	Update(ctx context.Context, sub *entity.SubCategory) (bool, error)
	SoftDelete(ctx context.Context, id string, at time.Time) (bool, error)
	Exists(ctx context.Context, id string) (bool, error)
	// ExistsByNameInCategory compara el nombre sin distinguir mayúsculas.
	// excludeID vacío = no excluir.
	ExistsByNameInCategory(ctx context.Context, name, categoryID, excludeID string) (bool, error)
}
