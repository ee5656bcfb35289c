package http

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"

	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
)

// ItemHandler maneja las peticiones HTTP para Item (protegido).
type ItemHandler struct {
	uc *usecase.ItemUseCase
}

// NewItemHandler construye el handler.
func NewItemHandler(uc *usecase.ItemUseCase) *ItemHandler {
	return &ItemHandler{uc: uc}
}

// List godoc
// @Summary      Buscar ítems
// @Description  Sin parámetros devuelve todos los ítems activos. Con parámetros aplica la conjunción de filtros.
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        categoryId     query  string   false  "ID de categoría"
// @Param        subCategoryId  query  string   false  "ID de subcategoría"
// @Param        search         query  string   false  "Texto en nombre, SKU, descripción o código de barras"
// @Param        isActive       query  boolean  false  "Estado"
// @Param        isLowStock     query  boolean  false  "Solo stock bajo"
// @Param        needsReorder   query  boolean  false  "Solo pendientes de reorden"
// @Param        minPrice       query  number   false  "Precio mínimo"
// @Param        maxPrice       query  number   false  "Precio máximo"
// @Param        brand          query  string   false  "Marca (contiene)"
// @Param        supplier       query  string   false  "Proveedor (contiene)"
// @Success      200  {array}   dto.ItemResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	filter, err := parseItemFilter(c)
	if err != nil {
		return writeError(c, err)
	}
	out, err := h.uc.List(c.UserContext(), filter)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Create godoc
// @Summary      Crear ítem
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.ItemRequest  true  "Datos del ítem"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/items [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.ItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener ítem por ID
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del ítem"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [get]
func (h *ItemHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "ítem no encontrado")
	}
	return c.JSON(out)
}

// GetBySKU godoc
// @Summary      Obtener ítem por SKU
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        sku  path  string  true  "SKU exacto"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/sku/{sku} [get]
func (h *ItemHandler) GetBySKU(c *fiber.Ctx) error {
	out, err := h.uc.GetBySKU(c.UserContext(), c.Params("sku"))
	if err != nil {
		return writeError(c, err)
	}
	if out == nil {
		return notFound(c, "ítem no encontrado")
	}
	return c.JSON(out)
}

// GetByCategory godoc
// @Summary      Ítems activos de una categoría
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        categoryId  path  string  true  "ID de la categoría"
// @Success      200  {array}  dto.ItemResponse
// @Router       /api/items/category/{categoryId} [get]
func (h *ItemHandler) GetByCategory(c *fiber.Ctx) error {
	out, err := h.uc.GetByCategory(c.UserContext(), c.Params("categoryId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetBySubCategory godoc
// @Summary      Ítems activos de una subcategoría
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        subCategoryId  path  string  true  "ID de la subcategoría"
// @Success      200  {array}  dto.ItemResponse
// @Router       /api/items/subcategory/{subCategoryId} [get]
func (h *ItemHandler) GetBySubCategory(c *fiber.Ctx) error {
	out, err := h.uc.GetBySubCategory(c.UserContext(), c.Params("subCategoryId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetLowStock godoc
// @Summary      Ítems activos con stock bajo
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ItemResponse
// @Router       /api/items/low-stock [get]
func (h *ItemHandler) GetLowStock(c *fiber.Ctx) error {
	out, err := h.uc.GetLowStock(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// GetNeedingReorder godoc
// @Summary      Ítems activos que requieren reorden
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  dto.ItemResponse
// @Router       /api/items/needs-reorder [get]
func (h *ItemHandler) GetNeedingReorder(c *fiber.Ctx) error {
	out, err := h.uc.GetNeedingReorder(c.UserContext())
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// CheckSKU godoc
// @Summary      Comprobar si un SKU está en uso
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        sku            path   string  true   "SKU exacto"
// @Param        excludeItemId  query  string  false  "ID a excluir (edición)"
// @Success      200  {object}  dto.ExistsResponse
// @Router       /api/items/check-sku/{sku} [get]
func (h *ItemHandler) CheckSKU(c *fiber.Ctx) error {
	exists, err := h.uc.SKUExists(c.UserContext(), c.Params("sku"), c.Query("excludeItemId"))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(dto.ExistsResponse{Exists: exists})
}

// Update godoc
// @Summary      Reemplazar ítem
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del ítem"
// @Param        body  body  dto.ItemRequest  true  "Datos completos del ítem"
// @Success      200   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/{id} [put]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	var in dto.ItemRequest
	if err := c.BodyParser(&in); err != nil {
		return invalidBody(c)
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("id"), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Baja lógica de ítem
// @Tags         items
// @Security     Bearer
// @Param        id   path  string  true  "ID del ítem"
// @Success      204
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [delete]
func (h *ItemHandler) Delete(c *fiber.Ctx) error {
	ok, err := h.uc.Delete(c.UserContext(), c.Params("id"))
	if err != nil {
		return writeError(c, err)
	}
	if !ok {
		return notFound(c, "ítem no encontrado")
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// parseItemFilter lee el filtro de la query string. Parámetros vacíos se ignoran.
func parseItemFilter(c *fiber.Ctx) (dto.ItemFilterRequest, error) {
	var (
		f   dto.ItemFilterRequest
		err error
	)
	f.CategoryID = optString(c.Query("categoryId"))
	f.SubCategoryID = optString(c.Query("subCategoryId"))
	f.SearchTerm = strings.TrimSpace(c.Query("search"))
	f.Brand = strings.TrimSpace(c.Query("brand"))
	f.Supplier = strings.TrimSpace(c.Query("supplier"))
	if f.IsActive, err = optBool(c, "isActive"); err != nil {
		return f, err
	}
	if f.IsLowStock, err = optBool(c, "isLowStock"); err != nil {
		return f, err
	}
	if f.NeedsReorder, err = optBool(c, "needsReorder"); err != nil {
		return f, err
	}
	if f.MinPrice, err = optDecimal(c, "minPrice"); err != nil {
		return f, err
	}
	if f.MaxPrice, err = optDecimal(c, "maxPrice"); err != nil {
		return f, err
	}
	return f, nil
}

func optString(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}

func optBool(c *fiber.Ctx, key string) (*bool, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s debe ser true o false", domain.ErrValidation, key)
	}
	return &b, nil
}

func optDecimal(c *fiber.Ctx, key string) (*decimal.Decimal, error) {
	raw := strings.TrimSpace(c.Query(key))
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %s debe ser numérico", domain.ErrValidation, key)
	}
	return &d, nil
}
