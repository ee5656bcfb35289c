// Package sqlitetest ayuda a los tests a levantar una base SQLite en memoria.
package sqlitetest

import (
	"context"
	"database/sql"
	"testing"

	"github.com/jhoicas/almacen-api/internal/infrastructure/sqlite"
)

// NewDB base en memoria con el esquema aplicado; se cierra al terminar el test.
func NewDB(t testing.TB) *sql.DB {
	t.Helper()

	db, err := sqlite.Open(":memory:")
	if err != nil {
		t.Fatalf("abrir base de test: %v", err)
	}
	if err := sqlite.EnsureSchema(context.Background(), db); err != nil {
		db.Close()
		t.Fatalf("crear esquema de test: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}
