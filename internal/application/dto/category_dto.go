package dto

import "time"

// CategoryRequest entrada para crear o actualizar una categoría.
// ID es opcional en el body; si viene debe coincidir con el de la ruta.
type CategoryRequest struct {
	ID          string `json:"id,omitempty"`
	Name        string `json:"name" validate:"notblank,max=100"`
	Description string `json:"description" validate:"max=500"`
	IsActive    *bool  `json:"isActive"`
}

// CategoryResponse salida de una categoría.
type CategoryResponse struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description"`
	IsActive    bool       `json:"isActive"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   *time.Time `json:"updatedAt,omitempty"`
}

// SubCategoryRequest entrada para crear o actualizar una subcategoría.
type SubCategoryRequest struct {
	Name        string `json:"name" validate:"notblank,max=100"`
	Description string `json:"description" validate:"max=500"`
	CategoryID  string `json:"categoryId" validate:"required"`
	IsActive    *bool  `json:"isActive"`
}

// SubCategoryResponse salida de una subcategoría con el nombre de su categoría.
type SubCategoryResponse struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	CategoryID   string     `json:"categoryId"`
	CategoryName string     `json:"categoryName"`
	IsActive     bool       `json:"isActive"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    *time.Time `json:"updatedAt,omitempty"`
}
