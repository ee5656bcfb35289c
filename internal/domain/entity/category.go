package entity

import "time"

// Category agrupa ítems del almacén. Nunca se borra físicamente: IsActive=false.
type Category struct {
	ID          string
	Name        string // único
	Description string
	IsActive    bool
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

// SubCategory pertenece a una Category; el nombre es único dentro de ella.
type SubCategory struct {
	ID           string
	Name         string
	Description  string
	CategoryID   string
	CategoryName string // solo lectura (join)
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}
