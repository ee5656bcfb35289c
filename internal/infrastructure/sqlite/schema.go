package sqlite

import (
	"context"
	"database/sql"
	"fmt"
)

const schema = `
CREATE TABLE IF NOT EXISTS categories (
    id          TEXT PRIMARY KEY,
    name        TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    is_active   BOOLEAN NOT NULL DEFAULT 1,
    created_at  DATETIME NOT NULL,
    updated_at  DATETIME
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_categories_name ON categories(name);

CREATE TABLE IF NOT EXISTS subcategories (
    id          TEXT PRIMARY KEY,
    name        TEXT NOT NULL,
    description TEXT NOT NULL DEFAULT '',
    category_id TEXT NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
    is_active   BOOLEAN NOT NULL DEFAULT 1,
    created_at  DATETIME NOT NULL,
    updated_at  DATETIME
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_subcategories_name_category ON subcategories(name, category_id);

CREATE TABLE IF NOT EXISTS items (
    id                  TEXT PRIMARY KEY,
    name                TEXT NOT NULL,
    sku                 TEXT NOT NULL,
    description         TEXT NOT NULL DEFAULT '',
    category_id         TEXT NOT NULL REFERENCES categories(id) ON DELETE RESTRICT,
    subcategory_id      TEXT REFERENCES subcategories(id) ON DELETE RESTRICT,
    price               NUMERIC NOT NULL CHECK (price >= 0),
    cost_price          NUMERIC CHECK (cost_price >= 0),
    unit_of_sale        TEXT NOT NULL DEFAULT 'Piece',
    quantity_in_stock   INTEGER NOT NULL DEFAULT 0 CHECK (quantity_in_stock >= 0),
    minimum_stock_level INTEGER NOT NULL DEFAULT 0 CHECK (minimum_stock_level >= 0),
    maximum_stock_level INTEGER CHECK (maximum_stock_level >= 0),
    reorder_point       INTEGER NOT NULL DEFAULT 0 CHECK (reorder_point >= 0),
    barcode             TEXT NOT NULL DEFAULT '',
    brand               TEXT NOT NULL DEFAULT '',
    supplier            TEXT NOT NULL DEFAULT '',
    weight              NUMERIC CHECK (weight >= 0),
    dimensions          TEXT NOT NULL DEFAULT '',
    expiry_date         DATETIME,
    location            TEXT NOT NULL DEFAULT '',
    image_url           TEXT NOT NULL DEFAULT '',
    notes               TEXT NOT NULL DEFAULT '',
    is_active           BOOLEAN NOT NULL DEFAULT 1,
    created_at          DATETIME NOT NULL,
    updated_at          DATETIME
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_items_sku ON items(sku);
CREATE INDEX IF NOT EXISTS idx_items_category ON items(category_id);
CREATE INDEX IF NOT EXISTS idx_items_subcategory ON items(subcategory_id);

CREATE TABLE IF NOT EXISTS users (
    id            TEXT PRIMARY KEY,
    username      TEXT NOT NULL,
    email         TEXT NOT NULL,
    password_hash TEXT NOT NULL,
    first_name    TEXT NOT NULL,
    last_name     TEXT NOT NULL,
    role          TEXT NOT NULL DEFAULT 'Staff' CHECK (role IN ('SuperAdmin', 'Admin', 'Manager', 'Staff')),
    is_active     BOOLEAN NOT NULL DEFAULT 1,
    created_at    DATETIME NOT NULL,
    updated_at    DATETIME,
    last_login_at DATETIME
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_username ON users(username);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(email);
`

// EnsureSchema crea tablas e índices si no existen. Es idempotente.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("crear esquema sqlite: %w", err)
	}
	return nil
}
