// Package validation aplica las etiquetas `validate:"..."` de los DTOs de entrada
// y traduce los fallos a domain.ErrValidation.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
)

var (
	once     sync.Once
	validate *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		// Los mensajes usan el nombre JSON del campo.
		v.RegisterTagNameFunc(func(f reflect.StructField) string {
			name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
			if name == "-" || name == "" {
				return f.Name
			}
			return name
		})
		_ = v.RegisterValidation("notblank", notBlank)
		_ = v.RegisterValidation("unit", validUnit)
		_ = v.RegisterValidation("role", validRole)
		validate = v
	})
	return validate
}

// Struct valida in y devuelve un error que envuelve domain.ErrValidation
// con la lista de campos inválidos.
func Struct(in any) error {
	err := instance().Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", domain.ErrValidation, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", domain.ErrValidation, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return fe.Field() + " es requerido"
	case "max":
		return fmt.Sprintf("%s admite como máximo %s caracteres", fe.Field(), fe.Param())
	case "gte":
		return fe.Field() + " no puede ser negativo"
	case "min":
		return fmt.Sprintf("%s debe tener al menos %s caracteres", fe.Field(), fe.Param())
	case "email":
		return fe.Field() + " debe ser un email válido"
	case "unit":
		return fe.Field() + " no es una unidad de venta válida"
	case "role":
		return fe.Field() + " no es un rol válido"
	default:
		return fmt.Sprintf("%s no cumple %s", fe.Field(), fe.Tag())
	}
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}

func validUnit(fl validator.FieldLevel) bool {
	u, ok := fl.Field().Interface().(entity.UnitOfSale)
	return ok && u.Valid()
}

func validRole(fl validator.FieldLevel) bool {
	r, ok := fl.Field().Interface().(entity.Role)
	return ok && r.Valid()
}
