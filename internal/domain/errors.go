package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
// Los errores específicos envuelven a una categoría base para que errors.Is
// permita mapearlos a un código HTTP sin conocer cada caso.
var (
	ErrNotFound         = errors.New("recurso no encontrado")
	ErrValidation       = errors.New("entrada inválida")
	ErrInvalidReference = errors.New("referencia inválida")
	ErrConflict         = errors.New("conflicto con el estado actual")
	ErrUnauthorized     = errors.New("no autorizado")
	ErrForbidden        = errors.New("acceso denegado")
)

// Referencias.
var (
	ErrCategoryNotFound    = fmt.Errorf("%w: categoría no encontrada", ErrInvalidReference)
	ErrCategoryInactive    = fmt.Errorf("%w: categoría inválida o inactiva", ErrInvalidReference)
	ErrSubCategoryNotFound = fmt.Errorf("%w: subcategoría no encontrada", ErrInvalidReference)
	ErrSubCategoryMismatch = fmt.Errorf("%w: la subcategoría no pertenece a la categoría indicada", ErrInvalidReference)
)

// Unicidad.
var (
	ErrDuplicateCategoryName    = fmt.Errorf("%w: ya existe una categoría con ese nombre", ErrConflict)
	ErrDuplicateSKU             = fmt.Errorf("%w: ya existe un ítem con este SKU", ErrConflict)
	ErrDuplicateSubCategoryName = fmt.Errorf("%w: ya existe una subcategoría con ese nombre en la categoría", ErrConflict)
	ErrUsernameExists           = fmt.Errorf("%w: el nombre de usuario ya existe", ErrConflict)
	ErrEmailExists              = fmt.Errorf("%w: el email ya está registrado", ErrConflict)
)

// ErrItemNotFound se devuelve al actualizar un ítem inexistente.
var ErrItemNotFound = fmt.Errorf("%w: ítem no encontrado", ErrNotFound)
