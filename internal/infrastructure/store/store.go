// Package store abre el almacenamiento configurado (PostgreSQL o SQLite) y expone
// los repositorios ya construidos sobre él.
package store

import (
	"context"
	"fmt"

	"github.com/jhoicas/almacen-api/internal/application/usecase"
	"github.com/jhoicas/almacen-api/internal/domain/repository"
	"github.com/jhoicas/almacen-api/internal/infrastructure/postgres"
	"github.com/jhoicas/almacen-api/internal/infrastructure/sqlite"
	"github.com/jhoicas/almacen-api/pkg/config"
)

// Store repositorios de un mismo backend.
type Store struct {
	Categories    repository.CategoryRepository
	SubCategories repository.SubCategoryRepository
	Items         repository.ItemRepository
	Users         repository.UserRepository
	Tx            usecase.ItemTxRunner

	close func()
}

// Open conecta según cfg.Driver y aplica el esquema (idempotente).
func Open(ctx context.Context, cfg config.DBConfig) (*Store, error) {
	switch cfg.Driver {
	case config.DriverPostgres:
		pool, err := postgres.NewPool(ctx, cfg)
		if err != nil {
			return nil, err
		}
		if err := postgres.EnsureSchema(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
		return &Store{
			Categories:    postgres.NewCategoryRepository(pool),
			SubCategories: postgres.NewSubCategoryRepository(pool),
			Items:         postgres.NewItemRepository(pool),
			Users:         postgres.NewUserRepository(pool),
			Tx:            postgres.NewTxRunner(pool),
			close:         pool.Close,
		}, nil
	case config.DriverSQLite:
		db, err := sqlite.Open(cfg.SQLitePath)
		if err != nil {
			return nil, err
		}
		if err := sqlite.EnsureSchema(ctx, db); err != nil {
			_ = db.Close()
			return nil, err
		}
		return &Store{
			Categories:    sqlite.NewCategoryRepository(db),
			SubCategories: sqlite.NewSubCategoryRepository(db),
			Items:         sqlite.NewItemRepository(db),
			Users:         sqlite.NewUserRepository(db),
			Tx:            sqlite.NewTxRunner(db),
			close:         func() { _ = db.Close() },
		}, nil
	}
	return nil, fmt.Errorf("store: driver desconocido %q", cfg.Driver)
}

// Close libera el pool o la conexión.
func (s *Store) Close() {
	if s.close != nil {
		s.close()
	}
}
