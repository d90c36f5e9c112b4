package postgres

import (
	"context"
	"fmt"
)

// CreateSchema crea las dos relaciones del sistema si no existen.
// quantity lleva CHECK (quantity >= 0) como última línea de defensa del
// invariante de stock; la validación de negocio vive en los casos de uso.
func CreateSchema(ctx context.Context, q Querier) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS stock_items (
			serial     VARCHAR(40) PRIMARY KEY,
			kind       VARCHAR(35) NOT NULL,
			brand      VARCHAR(35) NOT NULL,
			model      VARCHAR(35) NOT NULL,
			quantity   BIGINT NOT NULL CHECK (quantity >= 0),
			unit_price NUMERIC(14,2) NOT NULL,
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		)`,
		`CREATE TABLE IF NOT EXISTS purchases (
			customer_id   VARCHAR(40) PRIMARY KEY,
			customer_name TEXT NOT NULL,
			birth_date    TEXT NOT NULL,
			purchase_at   TEXT NOT NULL,
			serial        VARCHAR(40) NOT NULL,
			kind          VARCHAR(35) NOT NULL,
			brand         VARCHAR(35) NOT NULL,
			model         VARCHAR(35) NOT NULL,
			quantity      BIGINT NOT NULL CHECK (quantity > 0),
			unit_price    NUMERIC(14,2) NOT NULL,
			total_price   NUMERIC(14,2) NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_stock_items_kind ON stock_items (kind)`,
	}
	for _, stmt := range statements {
		if _, err := q.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}
