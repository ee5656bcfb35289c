// Package seed carga los datos iniciales: categorías base y el usuario administrador.
// Es idempotente: lo que ya existe se deja intacto.
package seed

import (
	"context"
	"errors"
	"strings"

	"github.com/jhoicas/almacen-api/internal/application/auth"
	"github.com/jhoicas/almacen-api/internal/application/dto"
	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

// DefaultCategories categorías iniciales del almacén.
var DefaultCategories = []dto.CategoryRequest{
	{Name: "Electronics", Description: "Electronic devices and components"},
	{Name: "Clothing", Description: "Apparel and fashion items"},
	{Name: "Books", Description: "Books and educational materials"},
}

// Admin datos del administrador inicial.
type Admin struct {
	Username string
	Email    string
	Password string
}

// DefaultAdmin administrador por defecto; la contraseña debe cambiarse tras el primer login.
func DefaultAdmin(password string) Admin {
	if password == "" {
		password = "Admin@123"
	}
	return Admin{Username: "admin", Email: "admin@warehouse.com", Password: password}
}

// Result qué se creó en esta ejecución.
type Result struct {
	CategoriesCreated []string
	AdminCreated      bool
}

// Run crea las categorías que falten (por nombre, sin distinguir mayúsculas) y el administrador
// SuperAdmin si el usuario no existe.
func Run(ctx context.Context, categories *usecase.CategoryUseCase, users *auth.AuthUseCase, admin Admin) (Result, error) {
	var res Result

	existing, err := categories.List(ctx)
	if err != nil {
		return res, err
	}
	names := make(map[string]bool, len(existing))
	for _, c := range existing {
		names[strings.ToLower(c.Name)] = true
	}
	for _, in := range DefaultCategories {
		if names[strings.ToLower(in.Name)] {
			continue
		}
		if _, err := categories.Create(ctx, in); err != nil {
			// Una categoría inactiva con el mismo nombre también bloquea la creación.
			if errors.Is(err, domain.ErrConflict) {
				continue
			}
			return res, err
		}
		res.CategoriesCreated = append(res.CategoriesCreated, in.Name)
	}

	_, err = users.Register(ctx, dto.RegisterRequest{
		Username:  admin.Username,
		Email:     admin.Email,
		Password:  admin.Password,
		FirstName: "System",
		LastName:  "Administrator",
		Role:      entity.RoleSuperAdmin,
	})
	switch {
	case err == nil:
		res.AdminCreated = true
	case errors.Is(err, domain.ErrConflict):
	default:
		return res, err
	}
	return res, nil
}
