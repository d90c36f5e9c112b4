package stock

import (
	"context"

	"github.com/jhoicas/ventas-pro/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando un
// repositorio de inventario atado a esa tx. Garantiza que un update parcial
// (leer, fusionar, escribir) sea atómico.
type TxRunner interface {
	Run(ctx context.Context, fn func(stockRepo repository.StockItemRepository) error) error
}
