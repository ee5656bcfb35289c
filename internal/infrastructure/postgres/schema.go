package postgres

import (
	"context"
	"fmt"
)

// Los IDs son UUID en texto para compartir formato con el store SQLite.
const schema = `
CREATE TABLE IF NOT EXISTS categories (
    id          TEXT PRIMARY KEY,
    name        VARCHAR(100) NOT NULL,
    description VARCHAR(500) NOT NULL DEFAULT '',
    is_active   BOOLEAN NOT NULL DEFAULT TRUE,
    created_at  TIMESTAMPTZ NOT NULL,
    updated_at  TIMESTAMPTZ
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_categories_name ON categories(name);

CREATE TABLE IF NOT EXISTS subcategories (
    id          TEXT PRIMARY KEY,
    name        VARCHAR(100) NOT NULL,
    description VARCHAR(500) NOT NULL DEFAULT '',
    category_id TEXT NOT NULL REFERENCES categories(id) ON DELETE CASCADE,
    is_active   BOOLEAN NOT NULL DEFAULT TRUE,
    created_at  TIMESTAMPTZ NOT NULL,
    updated_at  TIMESTAMPTZ
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_subcategories_name_category ON subcategories(name, category_id);

CREATE TABLE IF NOT EXISTS items (
    id                  TEXT PRIMARY KEY,
    name                VARCHAR(200) NOT NULL,
    sku                 VARCHAR(100) NOT NULL,
    description         VARCHAR(1000) NOT NULL DEFAULT '',
    category_id         TEXT NOT NULL REFERENCES categories(id) ON DELETE RESTRICT,
    subcategory_id      TEXT REFERENCES subcategories(id) ON DELETE RESTRICT,
    price               NUMERIC(18,2) NOT NULL CHECK (price >= 0),
    cost_price          NUMERIC(18,2) CHECK (cost_price >= 0),
    unit_of_sale        VARCHAR(20) NOT NULL DEFAULT 'Piece',
    quantity_in_stock   INTEGER NOT NULL DEFAULT 0 CHECK (quantity_in_stock >= 0),
    minimum_stock_level INTEGER NOT NULL DEFAULT 0 CHECK (minimum_stock_level >= 0),
    maximum_stock_level INTEGER CHECK (maximum_stock_level >= 0),
    reorder_point       INTEGER NOT NULL DEFAULT 0 CHECK (reorder_point >= 0),
    barcode             VARCHAR(200) NOT NULL DEFAULT '',
    brand               VARCHAR(200) NOT NULL DEFAULT '',
    supplier            VARCHAR(200) NOT NULL DEFAULT '',
    weight              NUMERIC(10,3) CHECK (weight >= 0),
    dimensions          VARCHAR(100) NOT NULL DEFAULT '',
    expiry_date         TIMESTAMPTZ,
    location            VARCHAR(200) NOT NULL DEFAULT '',
    image_url           VARCHAR(500) NOT NULL DEFAULT '',
    notes               VARCHAR(1000) NOT NULL DEFAULT '',
    is_active           BOOLEAN NOT NULL DEFAULT TRUE,
    created_at          TIMESTAMPTZ NOT NULL,
    updated_at          TIMESTAMPTZ
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_items_sku ON items(sku);
CREATE INDEX IF NOT EXISTS idx_items_category ON items(category_id);
CREATE INDEX IF NOT EXISTS idx_items_subcategory ON items(subcategory_id);

CREATE TABLE IF NOT EXISTS users (
    id            TEXT PRIMARY KEY,
    username      VARCHAR(100) NOT NULL,
    email         VARCHAR(255) NOT NULL,
    password_hash TEXT NOT NULL,
    first_name    VARCHAR(100) NOT NULL,
    last_name     VARCHAR(100) NOT NULL,
    role          VARCHAR(20) NOT NULL DEFAULT 'Staff' CHECK (role IN ('SuperAdmin', 'Admin', 'Manager', 'Staff')),
    is_active     BOOLEAN NOT NULL DEFAULT TRUE,
    created_at    TIMESTAMPTZ NOT NULL,
    updated_at    TIMESTAMPTZ,
    last_login_at TIMESTAMPTZ
);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_username ON users(username);
CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users(email);
`

// EnsureSchema crea tablas e índices si no existen. Es idempotente.
func EnsureSchema(ctx context.Context, q Querier) error {
	if _, err := q.Exec(ctx, schema); err != nil {
		return fmt.Errorf("crear esquema postgres: %w", err)
	}
	return nil
}
