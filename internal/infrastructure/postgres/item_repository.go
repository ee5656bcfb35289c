package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/internal/infrastructure/sqlfilter"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación del puerto ItemRepository sobre PostgreSQL (usable con pool o tx).
type ItemRepo struct {
	q Querier
}

// NewItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewItemRepository(q Querier) *ItemRepo {
	return &ItemRepo{q: q}
}

const itemSelect = `
	SELECT i.id, i.name, i.sku, i.description, i.category_id, c.name, i.subcategory_id, s.name,
	       i.price, i.cost_price, i.unit_of_sale, i.quantity_in_stock, i.minimum_stock_level,
	       i.maximum_stock_level, i.reorder_point, i.barcode, i.brand, i.supplier, i.weight,
	       i.dimensions, i.expiry_date, i.location, i.image_url, i.notes, i.is_active,
	       i.created_at, i.updated_at
	FROM items i
	JOIN categories c ON c.id = i.category_id
	LEFT JOIN subcategories s ON s.id = i.subcategory_id`

// Create persiste un ítem. SKU repetido -> ErrDuplicateSKU.
func (r *ItemRepo) Create(ctx context.Context, it *entity.Item) error {
	query := `
		INSERT INTO items (id, name, sku, description, category_id, subcategory_id, price, cost_price,
			unit_of_sale, quantity_in_stock, minimum_stock_level, maximum_stock_level, reorder_point,
			barcode, brand, supplier, weight, dimensions, expiry_date, location, image_url, notes,
			is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19,
			$20, $21, $22, $23, $24, $25)`
	_, err := r.q.Exec(ctx, query,
		it.ID, it.Name, it.SKU, it.Description, it.CategoryID, it.SubCategoryID, it.Price, it.CostPrice,
		string(it.UnitOfSale), it.QuantityInStock, it.MinimumStockLevel, it.MaximumStockLevel, it.ReorderPoint,
		it.Barcode, it.Brand, it.Supplier, it.Weight, it.Dimensions, it.ExpiryDate, it.Location, it.ImageURL, it.Notes,
		it.IsActive, it.CreatedAt, it.UpdatedAt,
	)
	return mapItemWriteError("insert item", err)
}

func (r *ItemRepo) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	return r.getOne(ctx, ` WHERE i.id = $1`, id)
}

func (r *ItemRepo) GetBySKU(ctx context.Context, sku string) (*entity.Item, error) {
	return r.getOne(ctx, ` WHERE i.sku = $1`, sku)
}

// Update sobrescribe todos los campos. ErrItemNotFound si el id no existe.
func (r *ItemRepo) Update(ctx context.Context, it *entity.Item) error {
	query := `
		UPDATE items SET name = $1, sku = $2, description = $3, category_id = $4, subcategory_id = $5,
			price = $6, cost_price = $7, unit_of_sale = $8, quantity_in_stock = $9, minimum_stock_level = $10,
			maximum_stock_level = $11, reorder_point = $12, barcode = $13, brand = $14, supplier = $15,
			weight = $16, dimensions = $17, expiry_date = $18, location = $19, image_url = $20, notes = $21,
			is_active = $22, updated_at = $23
		WHERE id = $24`
	tag, err := r.q.Exec(ctx, query,
		it.Name, it.SKU, it.Description, it.CategoryID, it.SubCategoryID,
		it.Price, it.CostPrice, string(it.UnitOfSale), it.QuantityInStock, it.MinimumStockLevel,
		it.MaximumStockLevel, it.ReorderPoint, it.Barcode, it.Brand, it.Supplier,
		it.Weight, it.Dimensions, it.ExpiryDate, it.Location, it.ImageURL, it.Notes,
		it.IsActive, it.UpdatedAt, it.ID,
	)
	if err != nil {
		return mapItemWriteError("update item", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrItemNotFound
	}
	return nil
}

func (r *ItemRepo) SoftDelete(ctx context.Context, id string, at time.Time) (bool, error) {
	tag, err := r.q.Exec(ctx, `UPDATE items SET is_active = FALSE, updated_at = $1 WHERE id = $2`, at, id)
	if err != nil {
		return false, fmt.Errorf("delete item: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *ItemRepo) List(ctx context.Context, f repository.ItemFilter) ([]*entity.Item, error) {
	q := sqlfilter.Items(f, sqlfilter.Postgres)
	rows, err := r.q.Query(ctx, itemSelect+q.Where+q.OrderBy, q.Args...)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	defer rows.Close()

	var list []*entity.Item
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, fmt.Errorf("scan item: %w", err)
		}
		list = append(list, it)
	}
	return list, rows.Err()
}

func (r *ItemRepo) SKUExists(ctx context.Context, sku, excludeID string) (bool, error) {
	var ok bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM items WHERE sku = $1 AND ($2 = '' OR id <> $2))`, sku, excludeID,
	).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("sku exists: %w", err)
	}
	return ok, nil
}

func (r *ItemRepo) getOne(ctx context.Context, where string, arg any) (*entity.Item, error) {
	it, err := scanItem(r.q.QueryRow(ctx, itemSelect+where, arg))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get item: %w", err)
	}
	return it, nil
}

func mapItemWriteError(op string, err error) error {
	switch {
	case err == nil:
		return nil
	case isUniqueViolation(err):
		return domain.ErrDuplicateSKU
	case isForeignKeyViolation(err):
		return fmt.Errorf("%w: categoría o subcategoría inexistente", domain.ErrInvalidReference)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func scanItem(row pgxScanner) (*entity.Item, error) {
	var it entity.Item
	var unit string
	err := row.Scan(
		&it.ID, &it.Name, &it.SKU, &it.Description, &it.CategoryID, &it.CategoryName, &it.SubCategoryID, &it.SubCategoryName,
		&it.Price, &it.CostPrice, &unit, &it.QuantityInStock, &it.MinimumStockLevel,
		&it.MaximumStockLevel, &it.ReorderPoint, &it.Barcode, &it.Brand, &it.Supplier, &it.Weight,
		&it.Dimensions, &it.ExpiryDate, &it.Location, &it.ImageURL, &it.Notes, &it.IsActive,
		&it.CreatedAt, &it.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	it.UnitOfSale = entity.UnitOfSale(unit)
	return &it, nil
}
