package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema DDL completo del almacén. Idempotente: todas las sentencias usan
// IF NOT EXISTS / OR REPLACE, así EnsureSchema puede correr en cada arranque.
//
// Las claves foráneas son RESTRICT al borrar: no se puede eliminar un cliente
// o producto que todavía tiene registros apuntándole.
const schema = `
CREATE TABLE IF NOT EXISTS users (
	username      TEXT PRIMARY KEY,
	password_hash CHAR(64) NOT NULL,
	salt          CHAR(32) NOT NULL,
	level         INT  NOT NULL CHECK (level BETWEEN 1 AND 3)
);

CREATE TABLE IF NOT EXISTS clients (
	code    TEXT PRIMARY KEY,
	name    TEXT NOT NULL,
	address TEXT NOT NULL,
	phone   TEXT NOT NULL,
	city    TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS products (
	code        TEXT PRIMARY KEY,
	name        TEXT NOT NULL,
	description TEXT NOT NULL DEFAULT '',
	tax_rate    NUMERIC(12,4) NOT NULL DEFAULT 0 CHECK (tax_rate >= 0),
	unit_price  NUMERIC(14,2) NOT NULL DEFAULT 0 CHECK (unit_price >= 0)
);

CREATE TABLE IF NOT EXISTS providers (
	id           TEXT PRIMARY KEY,
	product_code TEXT NOT NULL REFERENCES products(code)
	             ON UPDATE CASCADE ON DELETE RESTRICT,
	description  TEXT NOT NULL DEFAULT '',
	cost         NUMERIC(14,2) NOT NULL DEFAULT 0 CHECK (cost >= 0),
	address      TEXT NOT NULL DEFAULT '',
	phone        TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS inventory (
	product_code TEXT PRIMARY KEY REFERENCES products(code)
	             ON UPDATE CASCADE ON DELETE RESTRICT,
	quantity     INT NOT NULL CHECK (quantity >= 0),
	min_stock    INT NOT NULL CHECK (min_stock >= 0),
	tax_rate     NUMERIC(12,4) NOT NULL DEFAULT 0 CHECK (tax_rate >= 0),
	unit_price   NUMERIC(14,2) NOT NULL DEFAULT 0 CHECK (unit_price >= 0),
	CHECK (quantity >= min_stock)
);

CREATE TABLE IF NOT EXISTS sales (
	id           BIGINT GENERATED ALWAYS AS IDENTITY PRIMARY KEY,
	date         DATE NOT NULL,
	client_code  TEXT NOT NULL REFERENCES clients(code)
	             ON UPDATE CASCADE ON DELETE RESTRICT,
	product_code TEXT NOT NULL REFERENCES products(code)
	             ON UPDATE CASCADE ON DELETE RESTRICT,
	product_name TEXT NOT NULL,
	unit_price   NUMERIC(14,2) NOT NULL CHECK (unit_price >= 0),
	quantity     INT NOT NULL CHECK (quantity > 0),
	tax_amount   NUMERIC(14,2) NOT NULL CHECK (tax_amount >= 0),
	subtotal     NUMERIC(14,2) NOT NULL CHECK (subtotal >= 0),
	total        NUMERIC(14,2) NOT NULL CHECK (total >= 0)
);

CREATE INDEX IF NOT EXISTS idx_sales_date ON sales (date);
CREATE INDEX IF NOT EXISTS idx_sales_client ON sales (client_code);
CREATE INDEX IF NOT EXISTS idx_inventory_min_stock ON inventory (min_stock);

CREATE OR REPLACE VIEW sales_detail AS
SELECT s.id           AS sale_id,
       s.date         AS date,
       s.client_code  AS client_code,
       c.name         AS client_name,
       s.product_code AS product_code,
       p.name         AS catalog_name,
       s.product_name AS sold_name,
       s.quantity     AS quantity,
       s.unit_price   AS unit_price,
       s.tax_amount   AS tax_amount,
       s.subtotal     AS subtotal,
       s.total        AS total
FROM sales s
JOIN clients c  ON c.code = s.client_code
JOIN products p ON p.code = s.product_code;
`

// EnsureSchema crea o actualiza el esquema del almacén.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
