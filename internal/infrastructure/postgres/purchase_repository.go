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

var _ repository.PurchaseRepository = (*PurchaseRepo)(nil)

// PurchaseRepo implementación de PurchaseRepository sobre PostgreSQL
// (usable con pool o tx).
type PurchaseRepo struct {
	q Querier
}

// NewPurchaseRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPurchaseRepository(q Querier) *PurchaseRepo {
	return &PurchaseRepo{q: q}
}

const purchaseColumns = `customer_id, customer_name, birth_date, purchase_at,
	serial, kind, brand, model, quantity, unit_price, total_price`

// Create persiste una compra nueva. ErrDuplicate si el cliente ya tiene una.
func (r *PurchaseRepo) Create(p *entity.Purchase) error {
	query := `
		INSERT INTO purchases (` + purchaseColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	_, err := r.q.Exec(context.Background(), query,
		p.CustomerID, p.CustomerName, p.BirthDate, p.PurchaseAt,
		p.Serial, p.Kind, p.Brand, p.Model, p.Quantity, p.UnitPrice, p.TotalPrice,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

// GetByCustomerID obtiene la compra del cliente; (nil, nil) si no existe.
func (r *PurchaseRepo) GetByCustomerID(customerID string) (*entity.Purchase, error) {
	query := `SELECT ` + purchaseColumns + ` FROM purchases WHERE customer_id = $1`
	var p entity.Purchase
	err := r.q.QueryRow(context.Background(), query, customerID).Scan(
		&p.CustomerID, &p.CustomerName, &p.BirthDate, &p.PurchaseAt,
		&p.Serial, &p.Kind, &p.Brand, &p.Model, &p.Quantity, &p.UnitPrice, &p.TotalPrice,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get purchase: %w", err)
	}
	return &p, nil
}

// Update escribe la fila completa (la fusión de campos ocurre en el caso de uso).
func (r *PurchaseRepo) Update(p *entity.Purchase) error {
	query := `
		UPDATE purchases
		SET customer_name = $2, birth_date = $3, purchase_at = $4, serial = $5,
			kind = $6, brand = $7, model = $8, quantity = $9, unit_price = $10, total_price = $11
		WHERE customer_id = $1`
	_, err := r.q.Exec(context.Background(), query,
		p.CustomerID, p.CustomerName, p.BirthDate, p.PurchaseAt,
		p.Serial, p.Kind, p.Brand, p.Model, p.Quantity, p.UnitPrice, p.TotalPrice,
	)
	if err != nil {
		return fmt.Errorf("update purchase: %w", err)
	}
	return nil
}

// Delete elimina la compra por cliente.
func (r *PurchaseRepo) Delete(customerID string) error {
	_, err := r.q.Exec(context.Background(), `DELETE FROM purchases WHERE customer_id = $1`, customerID)
	if err != nil {
		return fmt.Errorf("delete purchase: %w", err)
	}
	return nil
}

// ListAll devuelve todas las compras en orden de almacenamiento.
func (r *PurchaseRepo) ListAll() ([]*entity.Purchase, error) {
	rows, err := r.q.Query(context.Background(), `SELECT `+purchaseColumns+` FROM purchases`)
	if err != nil {
		return nil, fmt.Errorf("list purchases: %w", err)
	}
	defer rows.Close()
	var list []*entity.Purchase
	for rows.Next() {
		var p entity.Purchase
		if err := rows.Scan(
			&p.CustomerID, &p.CustomerName, &p.BirthDate, &p.PurchaseAt,
			&p.Serial, &p.Kind, &p.Brand, &p.Model, &p.Quantity, &p.UnitPrice, &p.TotalPrice,
		); err != nil {
			return nil, fmt.Errorf("scan purchase: %w", err)
		}
		list = append(list, &p)
	}
	return list, rows.Err()
}
