package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/validation"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// SubCategoryUseCase casos de uso de subcategorías.
type SubCategoryUseCase struct {
	repo       repository.SubCategoryRepository
	categories repository.CategoryRepository
	now        func() time.Time
}

// NewSubCategoryUseCase construye el caso de uso.
func NewSubCategoryUseCase(repo repository.SubCategoryRepository, categories repository.CategoryRepository) *SubCategoryUseCase {
	return &SubCategoryUseCase{repo: repo, categories: categories, now: time.Now}
}

// Create valida categoría activa y nombre libre dentro de ella.
func (uc *SubCategoryUseCase) Create(ctx context.Context, in dto.SubCategoryRequest) (*dto.SubCategoryResponse, error) {
	if err := uc.check(ctx, in, ""); err != nil {
		return nil, err
	}
	s := &entity.SubCategory{
		ID:          uuid.New().String(),
		Name:        strings.TrimSpace(in.Name),
		Description: in.Description,
		CategoryID:  in.CategoryID,
		IsActive:    boolOr(in.IsActive, true),
		CreatedAt:   uc.now().UTC(),
	}
	if err := uc.repo.Create(ctx, s); err != nil {
		return nil, err
	}
	return uc.reload(ctx, s.ID)
}

// GetByID obtiene una subcategoría (activa o no) con el nombre de su categoría.
func (uc *SubCategoryUseCase) GetByID(ctx context.Context, id string) (*dto.SubCategoryResponse, error) {
	return uc.reload(ctx, id)
}

// List subcategorías activas por nombre de categoría y nombre.
func (uc *SubCategoryUseCase) List(ctx context.Context) ([]dto.SubCategoryResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toSubCategoryResponses(list), nil
}

// ListByCategory subcategorías activas de una categoría, por nombre.
func (uc *SubCategoryUseCase) ListByCategory(ctx context.Context, categoryID string) ([]dto.SubCategoryResponse, error) {
	list, err := uc.repo.ListByCategory(ctx, categoryID)
	if err != nil {
		return nil, err
	}
	return toSubCategoryResponses(list), nil
}

// Update sobrescribe la subcategoría. nil, nil si no existe.
func (uc *SubCategoryUseCase) Update(ctx context.Context, id string, in dto.SubCategoryRequest) (*dto.SubCategoryResponse, error) {
	current, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, nil
	}
	if err := uc.check(ctx, in, id); err != nil {
		return nil, err
	}
	now := uc.now().UTC()
	current.Name = strings.TrimSpace(in.Name)
	current.Description = in.Description
	current.CategoryID = in.CategoryID
	current.IsActive = boolOr(in.IsActive, true)
	current.UpdatedAt = &now
	ok, err := uc.repo.Update(ctx, current)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return uc.reload(ctx, id)
}

// Delete baja lógica. false si no existía.
func (uc *SubCategoryUseCase) Delete(ctx context.Context, id string) (bool, error) {
	return uc.repo.SoftDelete(ctx, id, uc.now().UTC())
}

// Exists true si la subcategoría existe, activa o no.
func (uc *SubCategoryUseCase) Exists(ctx context.Context, id string) (bool, error) {
	return uc.repo.Exists(ctx, id)
}

func (uc *SubCategoryUseCase) check(ctx context.Context, in dto.SubCategoryRequest, excludeID string) error {
	if err := validation.Struct(in); err != nil {
		return err
	}
	ok, err := uc.categories.Exists(ctx, in.CategoryID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrCategoryInactive
	}
	dup, err := uc.repo.ExistsByNameInCategory(ctx, strings.TrimSpace(in.Name), in.CategoryID, excludeID)
	if err != nil {
		return err
	}
	if dup {
		return domain.ErrDuplicateSubCategoryName
	}
	return nil
}

func (uc *SubCategoryUseCase) reload(ctx context.Context, id string) (*dto.SubCategoryResponse, error) {
	s, err := uc.repo.GetByID(ctx, id)
	if err != nil || s == nil {
		return nil, err
	}
	out := toSubCategoryResponse(s)
	return &out, nil
}

func toSubCategoryResponses(list []*entity.SubCategory) []dto.SubCategoryResponse {
	out := make([]dto.SubCategoryResponse, 0, len(list))
	for _, s := range list {
		out = append(out, toSubCategoryResponse(s))
	}
	return out
}

func toSubCategoryResponse(s *entity.SubCategory) dto.SubCategoryResponse {
	return dto.SubCategoryResponse{
		ID:           s.ID,
		Name:         s.Name,
		Description:  s.Description,
		CategoryID:   s.CategoryID,
		CategoryName: s.CategoryName,
		IsActive:     s.IsActive,
		CreatedAt:    s.CreatedAt,
		UpdatedAt:    s.UpdatedAt,
	}
}
