package sales

import (
	"context"

	"github.com/jhoicas/ventas-pro/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción de BD, pasando
// repositorios de inventario y ventas atados a esa tx. El commit de una venta
// y la cancelación de una venta confirmada cruzan ambas relaciones y deben ser
// atómicos: o se aplican los dos efectos o ninguno.
type TxRunner interface {
	RunSales(ctx context.Context, fn func(
		stockRepo repository.StockItemRepository,
		purchaseRepo repository.PurchaseRepository,
	) error) error
}
