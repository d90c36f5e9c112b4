package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/ventas-pro/internal/domain"
	"github.com/jhoicas/ventas-pro/internal/domain/entity"
	"github.com/jhoicas/ventas-pro/internal/domain/repository"
)

var _ repository.StockItemRepository = (*StockItemRepo)(nil)

// StockItemRepo implementación de StockItemRepository sobre PostgreSQL
// (usable con pool o tx).
type StockItemRepo struct {
	q Querier
}

// NewStockItemRepository construye el adaptador. Pasar pool o tx (Querier).
func NewStockItemRepository(q Querier) *StockItemRepo {
	return &StockItemRepo{q: q}
}

const stockItemColumns = `serial, kind, brand, model, quantity, unit_price, updated_at`

// Exists indica si hay una fila con esa serie.
func (r *StockItemRepo) Exists(serial string) (bool, error) {
	var one int
	err := r.q.QueryRow(context.Background(),
		`SELECT 1 FROM stock_items WHERE serial = $1`, serial).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("exists stock item: %w", err)
	}
	return true, nil
}

// GetBySerial obtiene la fila completa del ítem; (nil, nil) si no existe.
func (r *StockItemRepo) GetBySerial(serial string) (*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM stock_items WHERE serial = $1`
	return r.scanOne(query, serial)
}

// GetBySerialForUpdate obtiene el ítem y bloquea la fila (SELECT FOR UPDATE).
func (r *StockItemRepo) GetBySerialForUpdate(serial string) (*entity.StockItem, error) {
	query := `SELECT ` + stockItemColumns + ` FROM stock_items WHERE serial = $1 FOR UPDATE`
	return r.scanOne(query, serial)
}

func (r *StockItemRepo) scanOne(query, serial string) (*entity.StockItem, error) {
	var it entity.StockItem
	err := r.q.QueryRow(context.Background(), query, serial).Scan(
		&it.Serial, &it.Kind, &it.Brand, &it.Model, &it.Quantity, &it.UnitPrice, &it.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get stock item: %w", err)
	}
	return &it, nil
}

// Create inserta un ítem nuevo. ErrDuplicate si la serie ya existe.
func (r *StockItemRepo) Create(item *entity.StockItem) error {
	query := `
		INSERT INTO stock_items (serial, kind, brand, model, quantity, unit_price, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := r.q.Exec(context.Background(), query,
		item.Serial, item.Kind, item.Brand, item.Model, item.Quantity, item.UnitPrice, item.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert stock item: %w", err)
	}
	return nil
}

// Update escribe la fila completa (la fusión de campos ocurre en el caso de uso).
func (r *StockItemRepo) Update(item *entity.StockItem) error {
	query := `
		UPDATE stock_items
		SET kind = $2, brand = $3, model = $4, quantity = $5, unit_price = $6, updated_at = $7
		WHERE serial = $1`
	_, err := r.q.Exec(context.Background(), query,
		item.Serial, item.Kind, item.Brand, item.Model, item.Quantity, item.UnitPrice, item.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("update stock item: %w", err)
	}
	return nil
}

// Delete elimina la fila por serie.
func (r *StockItemRepo) Delete(serial string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM stock_items WHERE serial = $1`, serial)
	if err != nil {
		return fmt.Errorf("delete stock item: %w", err)
	}
	return nil
}

// ListAll devuelve todos los ítems en orden de almacenamiento.
func (r *StockItemRepo) ListAll() ([]*entity.StockItem, error) {
	return r.list(`SELECT ` + stockItemColumns + ` FROM stock_items`)
}

// ListByKind filtra por tipo con coincidencia exacta.
func (r *StockItemRepo) ListByKind(kind string) ([]*entity.StockItem, error) {
	return r.list(`SELECT `+stockItemColumns+` FROM stock_items WHERE kind = $1`, kind)
}

func (r *StockItemRepo) list(query string, args ...any) ([]*entity.StockItem, error) {
	rows, err := r.q.Query(context.Background(), query, args...)
	if err != nil {
		return nil, fmt.Errorf("list stock items: %w", err)
	}
	defer rows.Close()
	var items []*entity.StockItem
	for rows.Next() {
		var it entity.StockItem
		if err := rows.Scan(&it.Serial, &it.Kind, &it.Brand, &it.Model, &it.Quantity, &it.UnitPrice, &it.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scan stock item: %w", err)
		}
		items = append(items, &it)
	}
	return items, rows.Err()
}
