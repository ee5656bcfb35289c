package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jhoicas/almacen-api/internal/domain"
	"github.com/jhoicas/almacen-api/internal/domain/entity"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/internal/infrastructure/sqlfilter"
)

var _ repository.ItemRepository = (*ItemRepo)(nil)

// ItemRepo implementación de ItemRepository sobre SQLite.
type ItemRepo struct {
	db dbtx
}

// NewItemRepository construye el repositorio.
func NewItemRepository(db *sql.DB) *ItemRepo {
	return &ItemRepo{db: db}
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

func (r *ItemRepo) Create(ctx context.Context, it *entity.Item) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO items (id, name, sku, description, category_id, subcategory_id, price, cost_price,
			unit_of_sale, quantity_in_stock, minimum_stock_level, maximum_stock_level, reorder_point,
			barcode, brand, supplier, weight, dimensions, expiry_date, location, image_url, notes,
			is_active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		it.ID, it.Name, it.SKU, it.Description, it.CategoryID, it.SubCategoryID, it.Price, it.CostPrice,
		string(it.UnitOfSale), it.QuantityInStock, it.MinimumStockLevel, it.MaximumStockLevel, it.ReorderPoint,
		it.Barcode, it.Brand, it.Supplier, it.Weight, it.Dimensions, it.ExpiryDate, it.Location, it.ImageURL, it.Notes,
		it.IsActive, it.CreatedAt, it.UpdatedAt,
	)
	return mapItemWriteError("insert item", err)
}

func (r *ItemRepo) GetByID(ctx context.Context, id string) (*entity.Item, error) {
	return r.getOne(ctx, ` WHERE i.id = ?`, id)
}

func (r *ItemRepo) GetBySKU(ctx context.Context, sku string) (*entity.Item, error) {
	return r.getOne(ctx, ` WHERE i.sku = ?`, sku)
}

func (r *ItemRepo) Update(ctx context.Context, it *entity.Item) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE items SET name = ?, sku = ?, description = ?, category_id = ?, subcategory_id = ?,
			price = ?, cost_price = ?, unit_of_sale = ?, quantity_in_stock = ?, minimum_stock_level = ?,
			maximum_stock_level = ?, reorder_point = ?, barcode = ?, brand = ?, supplier = ?, weight = ?,
			dimensions = ?, expiry_date = ?, location = ?, image_url = ?, notes = ?, is_active = ?,
			updated_at = ?
		WHERE id = ?`,
		it.Name, it.SKU, it.Description, it.CategoryID, it.SubCategoryID,
		it.Price, it.CostPrice, string(it.UnitOfSale), it.QuantityInStock, it.MinimumStockLevel,
		it.MaximumStockLevel, it.ReorderPoint, it.Barcode, it.Brand, it.Supplier, it.Weight,
		it.Dimensions, it.ExpiryDate, it.Location, it.ImageURL, it.Notes, it.IsActive,
		it.UpdatedAt, it.ID,
	)
	if err != nil {
		return mapItemWriteError("update item", err)
	}
	ok, err := affected(res)
	if err != nil {
		return fmt.Errorf("update item: %w", err)
	}
	if !ok {
		return domain.ErrItemNotFound
	}
	return nil
}

func (r *ItemRepo) SoftDelete(ctx context.Context, id string, at time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE items SET is_active = FALSE, updated_at = ? WHERE id = ?`, at, id)
	if err != nil {
		return false, fmt.Errorf("delete item: %w", err)
	}
	return affected(res)
}

func (r *ItemRepo) List(ctx context.Context, f repository.ItemFilter) ([]*entity.Item, error) {
	q := sqlfilter.Items(f, sqlfilter.SQLite)
	rows, err := r.db.QueryContext(ctx, itemSelect+q.Where+q.OrderBy, q.Args...)
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
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM items WHERE sku = ? AND (? = '' OR id <> ?))`,
		sku, excludeID, excludeID,
	).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("sku exists: %w", err)
	}
	return ok, nil
}

func (r *ItemRepo) getOne(ctx context.Context, where string, arg any) (*entity.Item, error) {
	it, err := scanItem(r.db.QueryRowContext(ctx, itemSelect+where, arg))
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

func scanItem(s scanner) (*entity.Item, error) {
	var it entity.Item
	var unit string
	err := s.Scan(
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
