package sales

import (
	"context"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/ventas-pro/internal/domain"
	"github.com/jhoicas/ventas-pro/internal/domain/entity"
	"github.com/jhoicas/ventas-pro/internal/domain/repository"
)

// UpdatePurchaseInput actualización parcial de una compra registrada. Los
// campos nil conservan el valor almacenado. Si cambian cantidad o precio
// unitario, el total se recalcula.
type UpdatePurchaseInput struct {
	CustomerID   string
	CustomerName *string
	BirthDate    *string
	PurchaseAt   *string
	Serial       *string
	Kind         *string
	Brand        *string
	Model        *string
	Quantity     *int64
	UnitPrice    *decimal.Decimal
}

// ListPurchases devuelve todas las compras registradas.
func (uc *UseCase) ListPurchases(_ context.Context) ([]*entity.Purchase, error) {
	return uc.purchaseRepo.ListAll()
}

// GetPurchase devuelve la compra del cliente o ErrNotFound.
func (uc *UseCase) GetPurchase(_ context.Context, customerID string) (*entity.Purchase, error) {
	p, err := uc.purchaseRepo.GetByCustomerID(customerID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	return p, nil
}

// UpdatePurchase fusiona los campos presentes sobre la compra almacenada y
// recalcula el total. La transacción hace atómico el leer-fusionar-escribir.
func (uc *UseCase) UpdatePurchase(ctx context.Context, in UpdatePurchaseInput) (*entity.Purchase, error) {
	if strings.TrimSpace(in.CustomerID) == "" {
		return nil, domain.ErrInvalidInput
	}

	var updated *entity.Purchase
	err := uc.txRunner.RunSales(ctx, func(
		_ repository.StockItemRepository,
		purchaseRepo repository.PurchaseRepository,
	) error {
		p, err := purchaseRepo.GetByCustomerID(in.CustomerID)
		if err != nil {
			return err
		}
		if p == nil {
			return domain.ErrNotFound
		}

		if in.CustomerName != nil {
			p.CustomerName = *in.CustomerName
		}
		if in.BirthDate != nil {
			p.BirthDate = *in.BirthDate
		}
		if in.PurchaseAt != nil {
			p.PurchaseAt = *in.PurchaseAt
		}
		if in.Serial != nil {
			p.Serial = *in.Serial
		}
		if in.Kind != nil {
			p.Kind = *in.Kind
		}
		if in.Brand != nil {
			p.Brand = *in.Brand
		}
		if in.Model != nil {
			p.Model = *in.Model
		}
		if in.Quantity != nil {
			p.Quantity = *in.Quantity
		}
		if in.UnitPrice != nil {
			p.UnitPrice = *in.UnitPrice
		}

		if p.CustomerName == "" || p.BirthDate == "" || p.Serial == "" {
			return domain.ErrInvalidInput
		}
		if p.Quantity <= 0 || !p.UnitPrice.GreaterThan(decimal.Zero) {
			return domain.ErrInvalidInput
		}

		p.RecomputeTotal()
		if err := purchaseRepo.Update(p); err != nil {
			return err
		}
		updated = p
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeletePurchase elimina el registro de compra sin devolver stock (para eso
// está CancelPurchase). ErrNotFound si el cliente no tiene compra.
func (uc *UseCase) DeletePurchase(_ context.Context, customerID string) error {
	p, err := uc.purchaseRepo.GetByCustomerID(customerID)
	if err != nil {
		return err
	}
	if p == nil {
		return domain.ErrNotFound
	}
	return uc.purchaseRepo.Delete(customerID)
}
