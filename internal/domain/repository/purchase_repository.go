package repository

import "github.com/jhoicas/ventas-pro/internal/domain/entity"

// PurchaseRepository define el puerto de persistencia del libro de ventas.
// GetByCustomerID devuelve (nil, nil) cuando el cliente no tiene compra registrada.
type PurchaseRepository interface {
	Create(purchase *entity.Purchase) error
	GetByCustomerID(customerID string) (*entity.Purchase, error)
	Update(purchase *entity.Purchase) error
	Delete(customerID string) error
	ListAll() ([]*entity.Purchase, error)
}
