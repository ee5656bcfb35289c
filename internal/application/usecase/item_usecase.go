package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/validation"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// ItemUseCase casos de uso de ítems: alta y edición validadas, bajas lógicas
// y consultas con campos derivados.
type ItemUseCase struct {
	repo repository.ItemRepository
	tx   ItemTxRunner
	now  func() time.Time
}

// NewItemUseCase construye el caso de uso. repo sirve las lecturas; tx las escrituras.
func NewItemUseCase(repo repository.ItemRepository, tx ItemTxRunner) *ItemUseCase {
	return &ItemUseCase{repo: repo, tx: tx, now: time.Now}
}

// Create valida referencias y SKU y persiste el ítem.
func (uc *ItemUseCase) Create(ctx context.Context, in dto.ItemRequest) (*dto.ItemResponse, error) {
	if err := checkItemRequest(in); err != nil {
		return nil, err
	}
	item := &entity.Item{ID: uuid.New().String(), CreatedAt: uc.now().UTC()}
	applyItemRequest(item, in)

	err := uc.tx.Run(ctx, func(items repository.ItemRepository, categories repository.CategoryRepository, subCategories repository.SubCategoryRepository) error {
		if err := checkItemReferences(ctx, categories, subCategories, in); err != nil {
			return err
		}
		dup, err := items.SKUExists(ctx, item.SKU, "")
		if err != nil {
			return err
		}
		if dup {
			return domain.ErrDuplicateSKU
		}
		return items.Create(ctx, item)
	})
	if err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, item.ID)
}

// Update reemplaza todos los campos del ítem. ErrItemNotFound si no existe.
func (uc *ItemUseCase) Update(ctx context.Context, id string, in dto.ItemRequest) (*dto.ItemResponse, error) {
	if in.ID != "" && in.ID != id {
		return nil, fmt.Errorf("%w: el id del cuerpo no coincide con el de la ruta", domain.ErrValidation)
	}
	if err := checkItemRequest(in); err != nil {
		return nil, err
	}
	err := uc.tx.Run(ctx, func(items repository.ItemRepository, categories repository.CategoryRepository, subCategories repository.SubCategoryRepository) error {
		item, err := items.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrItemNotFound
		}
		if err := checkItemReferences(ctx, categories, subCategories, in); err != nil {
			return err
		}
		dup, err := items.SKUExists(ctx, strings.TrimSpace(in.SKU), id)
		if err != nil {
			return err
		}
		if dup {
			return domain.ErrDuplicateSKU
		}
		now := uc.now().UTC()
		applyItemRequest(item, in)
		item.UpdatedAt = &now
		return items.Update(ctx, item)
	})
	if err != nil {
		return nil, err
	}
	return uc.GetByID(ctx, id)
}

// Delete baja lógica. Devuelve si el ítem existía.
func (uc *ItemUseCase) Delete(ctx context.Context, id string) (bool, error) {
	return uc.repo.SoftDelete(ctx, id, uc.now().UTC())
}

// GetByID obtiene un ítem en cualquier estado. nil, nil si no existe.
func (uc *ItemUseCase) GetByID(ctx context.Context, id string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetByID(ctx, id)
	if err != nil || item == nil {
		return nil, err
	}
	out := ToItemResponse(item)
	return &out, nil
}

// GetBySKU obtiene un ítem por SKU exacto, en cualquier estado.
func (uc *ItemUseCase) GetBySKU(ctx context.Context, sku string) (*dto.ItemResponse, error) {
	item, err := uc.repo.GetBySKU(ctx, sku)
	if err != nil || item == nil {
		return nil, err
	}
	out := ToItemResponse(item)
	return &out, nil
}

// List aplica el filtro. Sin ningún criterio devuelve los ítems activos.
func (uc *ItemUseCase) List(ctx context.Context, in dto.ItemFilterRequest) ([]dto.ItemResponse, error) {
	return uc.list(ctx, toItemFilter(in))
}

// GetByCategory ítems activos de la categoría, por nombre.
func (uc *ItemUseCase) GetByCategory(ctx context.Context, categoryID string) ([]dto.ItemResponse, error) {
	f := repository.ActiveOnly()
	f.CategoryID = &categoryID
	return uc.list(ctx, f)
}

// GetBySubCategory ítems activos de la subcategoría, por nombre.
func (uc *ItemUseCase) GetBySubCategory(ctx context.Context, subCategoryID string) ([]dto.ItemResponse, error) {
	f := repository.ActiveOnly()
	f.SubCategoryID = &subCategoryID
	return uc.list(ctx, f)
}

// GetLowStock ítems activos con stock <= mínimo, de menor a mayor cantidad.
func (uc *ItemUseCase) GetLowStock(ctx context.Context) ([]dto.ItemResponse, error) {
	f := repository.ActiveOnly()
	f.LowStock = true
	f.OrderBy = repository.OrderByQuantity
	return uc.list(ctx, f)
}

// GetNeedingReorder ítems activos con stock <= punto de reorden, de menor a mayor cantidad.
func (uc *ItemUseCase) GetNeedingReorder(ctx context.Context) ([]dto.ItemResponse, error) {
	f := repository.ActiveOnly()
	f.NeedsReorder = true
	f.OrderBy = repository.OrderByQuantity
	return uc.list(ctx, f)
}

// SKUExists comprueba si el SKU está tomado por otro ítem (activo o no).
func (uc *ItemUseCase) SKUExists(ctx context.Context, sku, excludeID string) (bool, error) {
	return uc.repo.SKUExists(ctx, sku, excludeID)
}

func (uc *ItemUseCase) list(ctx context.Context, f repository.ItemFilter) ([]dto.ItemResponse, error) {
	list, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ItemResponse, 0, len(list))
	for _, it := range list {
		out = append(out, ToItemResponse(it))
	}
	return out, nil
}

func checkItemRequest(in dto.ItemRequest) error {
	if err := validation.Struct(in); err != nil {
		return err
	}
	amounts := []struct {
		name  string
		value *decimal.Decimal
	}{{"price", in.Price}, {"costPrice", in.CostPrice}, {"weight", in.Weight}}
	for _, a := range amounts {
		if a.value != nil && a.value.IsNegative() {
			return fmt.Errorf("%w: %s no puede ser negativo", domain.ErrValidation, a.name)
		}
	}
	return nil
}

func checkItemReferences(ctx context.Context, categories repository.CategoryRepository, subCategories repository.SubCategoryRepository, in dto.ItemRequest) error {
	cat, err := categories.GetByID(ctx, in.CategoryID)
	if err != nil {
		return err
	}
	// Una categoría dada de baja no admite ítems nuevos ni reasignados.
	if cat == nil || !cat.IsActive {
		return domain.ErrCategoryNotFound
	}
	if in.SubCategoryID == nil {
		return nil
	}
	sub, err := subCategories.GetByID(ctx, *in.SubCategoryID)
	if err != nil {
		return err
	}
	if sub == nil {
		return domain.ErrSubCategoryNotFound
	}
	if sub.CategoryID != in.CategoryID {
		return domain.ErrSubCategoryMismatch
	}
	return nil
}

// applyItemRequest copia todos los campos editables; no toca ID ni CreatedAt.
func applyItemRequest(item *entity.Item, in dto.ItemRequest) {
	item.Name = strings.TrimSpace(in.Name)
	item.SKU = strings.TrimSpace(in.SKU)
	item.Description = in.Description
	item.CategoryID = in.CategoryID
	item.SubCategoryID = in.SubCategoryID
	item.Price = *in.Price
	item.CostPrice = in.CostPrice
	item.UnitOfSale = in.UnitOfSale
	if item.UnitOfSale == "" {
		item.UnitOfSale = entity.UnitPiece
	}
	item.QuantityInStock = in.QuantityInStock
	item.MinimumStockLevel = in.MinimumStockLevel
	item.MaximumStockLevel = in.MaximumStockLevel
	item.ReorderPoint = in.ReorderPoint
	item.Barcode = in.Barcode
	item.Brand = in.Brand
	item.Supplier = in.Supplier
	item.Weight = in.Weight
	item.Dimensions = in.Dimensions
	item.ExpiryDate = in.ExpiryDate
	item.Location = in.Location
	item.ImageURL = in.ImageURL
	item.Notes = in.Notes
	item.IsActive = boolOr(in.IsActive, true)
}

// toItemFilter traduce la consulta HTTP al filtro de repositorio.
// isLowStock=false y needsReorder=false no restringen.
func toItemFilter(in dto.ItemFilterRequest) repository.ItemFilter {
	if in == (dto.ItemFilterRequest{}) {
		return repository.ActiveOnly()
	}
	return repository.ItemFilter{
		CategoryID:    in.CategoryID,
		SubCategoryID: in.SubCategoryID,
		Search:        strings.TrimSpace(in.SearchTerm),
		IsActive:      in.IsActive,
		LowStock:      in.IsLowStock != nil && *in.IsLowStock,
		NeedsReorder:  in.NeedsReorder != nil && *in.NeedsReorder,
		MinPrice:      in.MinPrice,
		MaxPrice:      in.MaxPrice,
		Brand:         strings.TrimSpace(in.Brand),
		Supplier:      strings.TrimSpace(in.Supplier),
	}
}

// ToItemResponse proyecta el ítem con sus campos derivados.
func ToItemResponse(it *entity.Item) dto.ItemResponse {
	return dto.ItemResponse{
		ID:                it.ID,
		Name:              it.Name,
		SKU:               it.SKU,
		Description:       it.Description,
		CategoryID:        it.CategoryID,
		CategoryName:      it.CategoryName,
		SubCategoryID:     it.SubCategoryID,
		SubCategoryName:   it.SubCategoryName,
		Price:             it.Price,
		CostPrice:         it.CostPrice,
		UnitOfSale:        it.UnitOfSale,
		QuantityInStock:   it.QuantityInStock,
		MinimumStockLevel: it.MinimumStockLevel,
		MaximumStockLevel: it.MaximumStockLevel,
		ReorderPoint:      it.ReorderPoint,
		Barcode:           it.Barcode,
		Brand:             it.Brand,
		Supplier:          it.Supplier,
		Weight:            it.Weight,
		Dimensions:        it.Dimensions,
		ExpiryDate:        it.ExpiryDate,
		Location:          it.Location,
		ImageURL:          it.ImageURL,
		Notes:             it.Notes,
		IsActive:          it.IsActive,
		CreatedAt:         it.CreatedAt,
		UpdatedAt:         it.UpdatedAt,
		ProfitMargin:      it.ProfitMargin(),
		IsLowStock:        it.IsLowStock(),
		NeedsReorder:      it.NeedsReorder(),
		TotalValue:        it.TotalValue(),
	}
}
