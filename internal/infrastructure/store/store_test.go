package store_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/almacen-api/internal/infrastructure/store"
	"github.com/jhoicas/almacen-api/pkg/config"
)

func TestOpen_SQLiteArchivo_EsquemaIdempotente(t *testing.T) {
	path := filepath.Join(t.TempDir(), "almacen.db")
	cfg := config.DBConfig{Driver: config.DriverSQLite, SQLitePath: path}

	s, err := store.Open(context.Background(), cfg)
	require.NoError(t, err)
	s.Close()

	// Reabrir sobre el mismo archivo vuelve a aplicar el esquema sin error.
	s, err = store.Open(context.Background(), cfg)
	require.NoError(t, err)
	defer s.Close()

	list, err := s.Categories.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestOpen_DriverDesconocido(t *testing.T) {
	_, err := store.Open(context.Background(), config.DBConfig{Driver: "mysql"})
	assert.Error(t, err)
}
