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

var _ repository.SubCategoryRepository = (*SubCategoryRepo)(nil)

var activeSubCategory = sqlfilter.ActiveScope("s")

// SubCategoryRepo implementación de SubCategoryRepository sobre SQLite.
type SubCategoryRepo struct {
	db dbtx
}

// NewSubCategoryRepository construye el repositorio.
func NewSubCategoryRepository(db *sql.DB) *SubCategoryRepo {
	return &SubCategoryRepo{db: db}
}

const subCategorySelect = `
	SELECT s.id, s.name, s.description, s.category_id, c.name, s.is_active, s.created_at, s.updated_at
	FROM subcategories s
	JOIN categories c ON c.id = s.category_id`

func (r *SubCategoryRepo) Create(ctx context.Context, s *entity.SubCategory) error {
	_, err := r.db.ExecContext(ctx,
		`INSERT INTO subcategories (id, name, description, category_id, is_active, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		s.ID, s.Name, s.Description, s.CategoryID, s.IsActive, s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return domain.ErrDuplicateSubCategoryName
		case isForeignKeyViolation(err):
			return domain.ErrCategoryNotFound
		}
		return fmt.Errorf("insert subcategory: %w", err)
	}
	return nil
}

func (r *SubCategoryRepo) GetByID(ctx context.Context, id string) (*entity.SubCategory, error) {
	s, err := scanSubCategory(r.db.QueryRowContext(ctx, subCategorySelect+` WHERE s.id = ?`, id))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subcategory: %w", err)
	}
	return s, nil
}

func (r *SubCategoryRepo) List(ctx context.Context) ([]*entity.SubCategory, error) {
	return r.query(ctx, subCategorySelect+` WHERE `+activeSubCategory+` ORDER BY c.name, s.name`)
}

func (r *SubCategoryRepo) ListByCategory(ctx context.Context, categoryID string) ([]*entity.SubCategory, error) {
	return r.query(ctx, subCategorySelect+` WHERE s.category_id = ? AND `+activeSubCategory+` ORDER BY s.name`, categoryID)
}

func (r *SubCategoryRepo) Update(ctx context.Context, s *entity.SubCategory) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE subcategories SET name = ?, description = ?, category_id = ?, is_active = ?, updated_at = ?
		 WHERE id = ?`,
		s.Name, s.Description, s.CategoryID, s.IsActive, s.UpdatedAt, s.ID,
	)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return false, domain.ErrDuplicateSubCategoryName
		case isForeignKeyViolation(err):
			return false, domain.ErrCategoryNotFound
		}
		return false, fmt.Errorf("update subcategory: %w", err)
	}
	return affected(res)
}

func (r *SubCategoryRepo) SoftDelete(ctx context.Context, id string, at time.Time) (bool, error) {
	res, err := r.db.ExecContext(ctx,
		`UPDATE subcategories SET is_active = FALSE, updated_at = ? WHERE id = ?`, at, id)
	if err != nil {
		return false, fmt.Errorf("delete subcategory: %w", err)
	}
	return affected(res)
}

func (r *SubCategoryRepo) Exists(ctx context.Context, id string) (bool, error) {
	var ok bool
	if err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM subcategories WHERE id = ?)`, id).Scan(&ok); err != nil {
		return false, fmt.Errorf("subcategory exists: %w", err)
	}
	return ok, nil
}

func (r *SubCategoryRepo) ExistsByNameInCategory(ctx context.Context, name, categoryID, excludeID string) (bool, error) {
	var ok bool
	err := r.db.QueryRowContext(ctx,
		`SELECT EXISTS (SELECT 1 FROM subcategories
		 WHERE ulower(name) = ulower(?) AND category_id = ? AND (? = '' OR id <> ?))`,
		name, categoryID, excludeID, excludeID,
	).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("subcategory name exists: %w", err)
	}
	return ok, nil
}

func (r *SubCategoryRepo) query(ctx context.Context, q string, args ...any) ([]*entity.SubCategory, error) {
	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("list subcategories: %w", err)
	}
	defer rows.Close()

	var list []*entity.SubCategory
	for rows.Next() {
		s, err := scanSubCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("scan subcategory: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func scanSubCategory(sc scanner) (*entity.SubCategory, error) {
	var s entity.SubCategory
	if err := sc.Scan(&s.ID, &s.Name, &s.Description, &s.CategoryID, &s.CategoryName, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}
