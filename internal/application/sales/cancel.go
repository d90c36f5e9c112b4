package sales

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/ventas-pro/internal/domain"
	"github.com/jhoicas/ventas-pro/internal/domain/repository"
)

// RestoreStock devuelve al inventario unidades de una venta no confirmada:
// suma la cantidad a la fila existente conservando tipo/marca/modelo y escribe
// el precio unitario indicado. No toca el libro de ventas (la compra nunca se
// escribió).
func (uc *UseCase) RestoreStock(ctx context.Context, serial string, quantity int64, unitPrice decimal.Decimal) error {
	if strings.TrimSpace(serial) == "" || quantity <= 0 || !unitPrice.GreaterThan(decimal.Zero) {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.RunSales(ctx, func(
		stockRepo repository.StockItemRepository,
		_ repository.PurchaseRepository,
	) error {
		item, err := stockRepo.GetBySerialForUpdate(serial)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		item.Quantity += quantity
		item.UnitPrice = unitPrice
		item.UpdatedAt = time.Now()
		return stockRepo.Update(item)
	})
}

// CancelPurchase revierte una venta ya confirmada: en una sola transacción
// elimina la compra del cliente y devuelve su cantidad al inventario. Ambos
// efectos se aplican juntos o ninguno.
func (uc *UseCase) CancelPurchase(ctx context.Context, customerID string) error {
	if strings.TrimSpace(customerID) == "" {
		return domain.ErrInvalidInput
	}
	return uc.txRunner.RunSales(ctx, func(
		stockRepo repository.StockItemRepository,
		purchaseRepo repository.PurchaseRepository,
	) error {
		purchase, err := purchaseRepo.GetByCustomerID(customerID)
		if err != nil {
			return err
		}
		if purchase == nil {
			return domain.ErrNotFound
		}

		item, err := stockRepo.GetBySerialForUpdate(purchase.Serial)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}

		if err := purchaseRepo.Delete(customerID); err != nil {
			return err
		}
		item.Quantity += purchase.Quantity
		item.UpdatedAt = time.Now()
		return stockRepo.Update(item)
	})
}
