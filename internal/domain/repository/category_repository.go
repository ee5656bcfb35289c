package repository

import (
	"context"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// CategoryRepository define el puerto de persistencia para Category (DIP).
type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	// GetByID devuelve la categoría aunque esté inactiva; nil si no existe.
	GetByID(ctx context.Context, id string) (*entity.Category, error)
	// List devuelve solo categorías activas, ordenadas por nombre.
	List(ctx context.Context) ([]*entity.Category, error)
	// Update sobrescribe una categoría activa. false si no existe o está inactiva.
	Update(ctx context.Context, category *entity.Category) (bool, error)
	// SoftDelete marca como inactiva una categoría activa. false si no había nada que borrar.
	SoftDelete(ctx context.Context, id string, at time.Time) (bool, error)
	// Exists true si existe y está activa.
	Exists(ctx context.Context, id string) (bool, error)
}
