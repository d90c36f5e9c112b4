package repository

import "github.com/jhoicas/ventas-pro/internal/domain/entity"

// StockItemRepository define el puerto de persistencia del inventario.
// Las lecturas por clave devuelven (nil, nil) cuando la serie no existe.
type StockItemRepository interface {
	Exists(serial string) (bool, error)
	GetBySerial(serial string) (*entity.StockItem, error)
	// GetBySerialForUpdate bloquea la fila para update (SELECT FOR UPDATE).
	// Usar solo dentro de una transacción.
	GetBySerialForUpdate(serial string) (*entity.StockItem, error)
	Create(item *entity.StockItem) error
	Update(item *entity.StockItem) error
	Delete(serial string) error
	ListAll() ([]*entity.StockItem, error)
	ListByKind(kind string) ([]*entity.StockItem, error)
}
