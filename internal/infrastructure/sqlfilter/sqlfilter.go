// Package sqlfilter traduce repository.ItemFilter a SQL. Lo comparten los
// stores de PostgreSQL y SQLite; cambian el marcador de parámetros y la
// función de minúsculas.
package sqlfilter

import (
	"strconv"
	"strings"

	"github.com/jhoicas/almacen-api/internal/domain/repository"
)

// Placeholder devuelve el marcador del argumento n (base 1).
type Placeholder func(n int) string

// Dollar marcadores $1, $2... (PostgreSQL).
func Dollar(n int) string { return "$" + strconv.Itoa(n) }

// Question marcadores ? (SQLite).
func Question(int) string { return "?" }

// Dialect diferencias de SQL entre motores.
type Dialect struct {
	Placeholder Placeholder
	// Lower función SQL que pasa a minúsculas respetando Unicode.
	Lower string
}

// Postgres LOWER ya respeta Unicode.
var Postgres = Dialect{Placeholder: Dollar, Lower: "LOWER"}

// SQLite el LOWER nativo solo pliega ASCII; ulower la registra el paquete sqlite.
var SQLite = Dialect{Placeholder: Question, Lower: "ulower"}

// Query resultado: cláusulas listas para concatenar tras el FROM.
type Query struct {
	Where   string // vacío o " WHERE ..."
	OrderBy string // " ORDER BY ..."
	Args    []any
}

type builder struct {
	d     Dialect
	conds []string
	args  []any
}

func (b *builder) arg(v any) string {
	b.args = append(b.args, v)
	return b.d.Placeholder(len(b.args))
}

func (b *builder) add(cond string) { b.conds = append(b.conds, cond) }

// contains condición LIKE sin distinguir mayúsculas sobre una o varias columnas (OR).
func (b *builder) contains(term string, cols ...string) {
	pattern := "%" + escapeLike(strings.ToLower(term)) + "%"
	parts := make([]string, 0, len(cols))
	for _, c := range cols {
		parts = append(parts, b.d.Lower+"(COALESCE("+c+", '')) LIKE "+b.arg(pattern)+` ESCAPE '\'`)
	}
	if len(parts) == 1 {
		b.add(parts[0])
		return
	}
	b.add("(" + strings.Join(parts, " OR ") + ")")
}

// Items construye WHERE y ORDER BY sobre la tabla items con alias i.
// Es el único sitio donde se aplica el predicado de activos de los ítems.
func Items(f repository.ItemFilter, d Dialect) Query {
	b := &builder{d: d}
	if f.CategoryID != nil {
		b.add("i.category_id = " + b.arg(*f.CategoryID))
	}
	if f.SubCategoryID != nil {
		b.add("i.subcategory_id = " + b.arg(*f.SubCategoryID))
	}
	if s := strings.TrimSpace(f.Search); s != "" {
		b.contains(s, "i.name", "i.sku", "i.description", "i.barcode")
	}
	if f.IsActive != nil {
		b.add("i.is_active = " + b.arg(*f.IsActive))
	}
	if f.LowStock {
		b.add("i.quantity_in_stock <= i.minimum_stock_level")
	}
	if f.NeedsReorder {
		b.add("i.quantity_in_stock <= i.reorder_point")
	}
	if f.MinPrice != nil {
		b.add("i.price >= " + b.arg(*f.MinPrice))
	}
	if f.MaxPrice != nil {
		b.add("i.price <= " + b.arg(*f.MaxPrice))
	}
	if s := strings.TrimSpace(f.Brand); s != "" {
		b.contains(s, "i.brand")
	}
	if s := strings.TrimSpace(f.Supplier); s != "" {
		b.contains(s, "i.supplier")
	}

	q := Query{Args: b.args}
	if len(b.conds) > 0 {
		q.Where = " WHERE " + strings.Join(b.conds, " AND ")
	}
	switch f.OrderBy {
	case repository.OrderByQuantity:
		q.OrderBy = " ORDER BY i.quantity_in_stock ASC, i.name ASC"
	default:
		q.OrderBy = " ORDER BY i.name ASC"
	}
	return q
}

// ActiveScope predicado de activos para categorías y subcategorías (alias dado).
func ActiveScope(alias string) string {
	return alias + ".is_active = TRUE"
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
