package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/validation"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// CategoryUseCase casos de uso de categorías.
// Los nombres duplicados los rechaza el índice único (ErrConflict desde el repositorio).
type CategoryUseCase struct {
	repo repository.CategoryRepository
	now  func() time.Time
}

// NewCategoryUseCase construye el caso de uso.
func NewCategoryUseCase(repo repository.CategoryRepository) *CategoryUseCase {
	return &CategoryUseCase{repo: repo, now: time.Now}
}

// Create crea una categoría activa salvo que la petición diga lo contrario.
func (uc *CategoryUseCase) Create(ctx context.Context, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	c := &entity.Category{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		IsActive:    boolOr(in.IsActive, true),
		CreatedAt:   uc.now().UTC(),
	}
	if err := uc.repo.Create(ctx, c); err != nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

// GetByID obtiene una categoría (activa o no). nil, nil si no existe.
func (uc *CategoryUseCase) GetByID(ctx context.Context, id string) (*dto.CategoryResponse, error) {
	c, err := uc.repo.GetByID(ctx, id)
	if err != nil || c == nil {
		return nil, err
	}
	return toCategoryResponse(c), nil
}

// List categorías activas ordenadas por nombre.
func (uc *CategoryUseCase) List(ctx context.Context) ([]dto.CategoryResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.CategoryResponse, 0, len(list))
	for _, c := range list {
		out = append(out, *toCategoryResponse(c))
	}
	return out, nil
}

// Update sobrescribe una categoría activa. nil, nil si no existe o está inactiva.
func (uc *CategoryUseCase) Update(ctx context.Context, id string, in dto.CategoryRequest) (*dto.CategoryResponse, error) {
	if in.ID != "" && in.ID != id {
		return nil, fmt.Errorf("%w: el id del cuerpo no coincide con el de la ruta", domain.ErrValidation)
	}
	if err := validation.Struct(in); err != nil {
		return nil, err
	}
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil || !current.IsActive {
		return nil, nil
	}
	now := uc.now().UTC()
	current.Name = strings.TrimSpace(in.Name)
	current.Description = in.Description
	current.IsActive = boolOr(in.IsActive, true)
	current.UpdatedAt = &now
	ok, err := uc.repo.Update(ctx, current)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return toCategoryResponse(current), nil
}

// Delete baja lógica. false si no existía o ya estaba inactiva.
func (uc *CategoryUseCase) Delete(ctx context.Context, id string) (bool, error) {
	return uc.repo.SoftDelete(ctx, id, uc.now().UTC())
}

// Exists true si la categoría existe y está activa.
func (uc *CategoryUseCase) Exists(ctx context.Context, id string) (bool, error) {
	return uc.repo.Exists(ctx, id)
}

func toCategoryResponse(c *entity.Category) *dto.CategoryResponse {
	return &dto.CategoryResponse{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		IsActive:    c.IsActive,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}
