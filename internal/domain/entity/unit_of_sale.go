package entity

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// UnitOfSale unidad en la que se vende un ítem. Se persiste y se serializa por nombre.
type UnitOfSale string

const (
	UnitPiece      UnitOfSale = "Piece"
	UnitKilogram   UnitOfSale = "Kilogram"
	UnitGram       UnitOfSale = "Gram"
	UnitLiter      UnitOfSale = "Liter"
	UnitMilliliter UnitOfSale = "Milliliter"
	UnitMeter      UnitOfSale = "Meter"
	UnitBox        UnitOfSale = "Box"
	UnitPack       UnitOfSale = "Pack"
	UnitCarton     UnitOfSale = "Carton"
	UnitDozen      UnitOfSale = "Dozen"
	UnitSet        UnitOfSale = "Set"
	UnitPair       UnitOfSale = "Pair"
	UnitBundle     UnitOfSale = "Bundle"
	UnitRoll       UnitOfSale = "Roll"
	UnitSheet      UnitOfSale = "Sheet"
)

// unitsOfSale en orden: la posición + 1 es el ordinal aceptado en JSON.
var unitsOfSale = []UnitOfSale{
	UnitPiece, UnitKilogram, UnitGram, UnitLiter, UnitMilliliter,
	UnitMeter, UnitBox, UnitPack, UnitCarton, UnitDozen,
	UnitSet, UnitPair, UnitBundle, UnitRoll, UnitSheet,
}

// UnitsOfSale devuelve las unidades válidas.
func UnitsOfSale() []UnitOfSale {
	out := make([]UnitOfSale, len(unitsOfSale))
	copy(out, unitsOfSale)
	return out
}

// ParseUnitOfSale acepta el nombre (sin distinguir mayúsculas) o el ordinal 1..15.
func ParseUnitOfSale(s string) (UnitOfSale, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.Atoi(s); err == nil {
		if n >= 1 && n <= len(unitsOfSale) {
			return unitsOfSale[n-1], nil
		}
		return "", fmt.Errorf("unidad de venta fuera de rango: %d", n)
	}
	for _, u := range unitsOfSale {
		if strings.EqualFold(string(u), s) {
			return u, nil
		}
	}
	return "", fmt.Errorf("unidad de venta desconocida: %q", s)
}

// Valid indica si u es una de las 15 unidades.
func (u UnitOfSale) Valid() bool {
	for _, v := range unitsOfSale {
		if v == u {
			return true
		}
	}
	return false
}

// UnmarshalJSON acepta "Kilogram", "kilogram" o 2.
func (u *UnitOfSale) UnmarshalJSON(b []byte) error {
	var raw any
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	var s string
	switch v := raw.(type) {
	case string:
		if v == "" {
			*u = ""
			return nil
		}
		s = v
	case float64:
		s = strconv.Itoa(int(v))
	case nil:
		*u = ""
		return nil
	default:
		return fmt.Errorf("unidad de venta inválida: %s", string(b))
	}
	parsed, err := ParseUnitOfSale(s)
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
