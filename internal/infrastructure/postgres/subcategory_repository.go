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

var _ repository.SubCategoryRepository = (*SubCategoryRepo)(nil)

var activeSubCategory = sqlfilter.ActiveScope("s")

// SubCategoryRepo implementación del puerto SubCategoryRepository sobre PostgreSQL.
type SubCategoryRepo struct {
	q Querier
}

// NewSubCategoryRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSubCategoryRepository(q Querier) *SubCategoryRepo {
	return &SubCategoryRepo{q: q}
}

const subCategorySelect = `
	SELECT s.id, s.name, s.description, s.category_id, c.name, s.is_active, s.created_at, s.updated_at
	FROM subcategories s
	JOIN categories c ON c.id = s.category_id`

func (r *SubCategoryRepo) Create(ctx context.Context, s *entity.SubCategory) error {
	query := `
		INSERT INTO subcategories (id, name, description, category_id, is_active, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(ctx, query, s.ID, s.Name, s.Description, s.CategoryID, s.IsActive, s.CreatedAt, s.UpdatedAt)
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
	s, err := scanSubCategory(r.q.QueryRow(ctx, subCategorySelect+` WHERE s.id = $1`, id))
	if err != nil {
		if noRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get subcategory: %w", err)
	}
	return s, nil
}

func (r *SubCategoryRepo) List(ctx context.Context) ([]*entity.SubCategory, error) {
	return r.list(ctx, subCategorySelect+` WHERE `+activeSubCategory+` ORDER BY c.name, s.name`)
}

func (r *SubCategoryRepo) ListByCategory(ctx context.Context, categoryID string) ([]*entity.SubCategory, error) {
	return r.list(ctx, subCategorySelect+` WHERE s.category_id = $1 AND `+activeSubCategory+` ORDER BY s.name`, categoryID)
}

func (r *SubCategoryRepo) Update(ctx context.Context, s *entity.SubCategory) (bool, error) {
	query := `
		UPDATE subcategories SET name = $1, description = $2, category_id = $3, is_active = $4, updated_at = $5
		WHERE id = $6`
	tag, err := r.q.Exec(ctx, query, s.Name, s.Description, s.CategoryID, s.IsActive, s.UpdatedAt, s.ID)
	if err != nil {
		switch {
		case isUniqueViolation(err):
			return false, domain.ErrDuplicateSubCategoryName
		case isForeignKeyViolation(err):
			return false, domain.ErrCategoryNotFound
		}
		return false, fmt.Errorf("update subcategory: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *SubCategoryRepo) SoftDelete(ctx context.Context, id string, at time.Time) (bool, error) {
	tag, err := r.q.Exec(ctx, `UPDATE subcategories SET is_active = FALSE, updated_at = $1 WHERE id = $2`, at, id)
	if err != nil {
		return false, fmt.Errorf("delete subcategory: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *SubCategoryRepo) Exists(ctx context.Context, id string) (bool, error) {
	var ok bool
	if err := r.q.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM subcategories WHERE id = $1)`, id).Scan(&ok); err != nil {
		return false, fmt.Errorf("subcategory exists: %w", err)
	}
	return ok, nil
}

func (r *SubCategoryRepo) ExistsByNameInCategory(ctx context.Context, name, categoryID, excludeID string) (bool, error) {
	var ok bool
	err := r.q.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM subcategories
		WHERE LOWER(name) = LOWER($1) AND category_id = $2 AND ($3 = '' OR id <> $3))`,
		name, categoryID, excludeID,
	).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("subcategory name exists: %w", err)
	}
	return ok, nil
}

func (r *SubCategoryRepo) list(ctx context.Context, query string, args ...any) ([]*entity.SubCategory, error) {
	rows, err := r.q.Query(ctx, query, args...)
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

func scanSubCategory(row pgxScanner) (*entity.SubCategory, error) {
	var s entity.SubCategory
	if err := row.Scan(&s.ID, &s.Name, &s.Description, &s.CategoryID, &s.CategoryName, &s.IsActive, &s.CreatedAt, &s.UpdatedAt); err != nil {
		return nil, err
	}
	return &s, nil
}
