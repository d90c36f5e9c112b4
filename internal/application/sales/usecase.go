package sales

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/jhoicas/ventas-pro/internal/domain"
	"github.com/jhoicas/ventas-pro/internal/domain/entity"
	"github.com/jhoicas/ventas-pro/internal/domain/repository"
)

// PurchaseTimeLayout formato por defecto de la fecha de compra cuando el
// llamador no la provee (DD/MM/AAAA HH:MM:SS, igual que en pantalla).
const PurchaseTimeLayout = "02/01/2006 15:04:05"

// UseCase coordina una venta o su cancelación como unidad que cruza el
// inventario y el libro de ventas.
type UseCase struct {
	stockRepo    repository.StockItemRepository
	purchaseRepo repository.PurchaseRepository
	txRunner     TxRunner
}

// NewUseCase construye el coordinador de ventas.
func NewUseCase(
	stockRepo repository.StockItemRepository,
	purchaseRepo repository.PurchaseRepository,
	txRunner TxRunner,
) *UseCase {
	return &UseCase{stockRepo: stockRepo, purchaseRepo: purchaseRepo, txRunner: txRunner}
}

// Quote cotización de una venta: identidad del ítem, precio unitario del
// inventario (fuente autoritativa) y total calculado. No modifica estado.
type Quote struct {
	Serial     string
	Kind       string
	Brand      string
	Model      string
	Quantity   int64
	UnitPrice  decimal.Decimal
	TotalPrice decimal.Decimal
}

// CommitInput entrada para confirmar una venta. PurchaseAt vacío usa la fecha
// actual con PurchaseTimeLayout.
type CommitInput struct {
	CustomerID   string
	CustomerName string
	BirthDate    string
	Serial       string
	Quantity     int64
	PurchaseAt   string
}

// Receipt resultado de una venta confirmada: número de comprobante y la
// compra tal como quedó persistida.
type Receipt struct {
	Number   string
	Purchase entity.Purchase
}

// BuildQuote resuelve el ítem por serie, valida disponibilidad y calcula el
// total con el precio unitario del inventario. El llamador presenta el total
// al usuario; si este declina, no hay nada que deshacer.
func (uc *UseCase) BuildQuote(_ context.Context, serial string, quantity int64) (*Quote, error) {
	if strings.TrimSpace(serial) == "" || quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}
	item, err := uc.stockRepo.GetBySerial(serial)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	if quantity > item.Quantity {
		return nil, domain.ErrInsufficientStock
	}
	return &Quote{
		Serial:     item.Serial,
		Kind:       item.Kind,
		Brand:      item.Brand,
		Model:      item.Model,
		Quantity:   quantity,
		UnitPrice:  item.UnitPrice,
		TotalPrice: item.UnitPrice.Mul(decimal.NewFromInt(quantity)),
	}, nil
}

// Commit confirma la venta en una sola transacción: relee el ítem con bloqueo,
// revalida disponibilidad, inserta la compra (ErrDuplicate si el cliente ya
// tiene una, con rollback que deja el stock intacto) y descuenta la cantidad
// vendida conservando el mismo precio unitario.
func (uc *UseCase) Commit(ctx context.Context, in CommitInput) (*Receipt, error) {
	if strings.TrimSpace(in.CustomerID) == "" || strings.TrimSpace(in.CustomerName) == "" ||
		strings.TrimSpace(in.BirthDate) == "" || strings.TrimSpace(in.Serial) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity <= 0 {
		return nil, domain.ErrInvalidInput
	}

	purchaseAt := in.PurchaseAt
	if purchaseAt == "" {
		purchaseAt = time.Now().Format(PurchaseTimeLayout)
	}

	var purchase *entity.Purchase
	err := uc.txRunner.RunSales(ctx, func(
		stockRepo repository.StockItemRepository,
		purchaseRepo repository.PurchaseRepository,
	) error {
		item, err := stockRepo.GetBySerialForUpdate(in.Serial)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}
		if in.Quantity > item.Quantity {
			return domain.ErrInsufficientStock
		}

		p := &entity.Purchase{
			CustomerID:   in.CustomerID,
			CustomerName: in.CustomerName,
			BirthDate:    in.BirthDate,
			PurchaseAt:   purchaseAt,
			Serial:       item.Serial,
			Kind:         item.Kind,
			Brand:        item.Brand,
			Model:        item.Model,
			Quantity:     in.Quantity,
			UnitPrice:    item.UnitPrice,
		}
		p.RecomputeTotal()
		if err := purchaseRepo.Create(p); err != nil {
			return err
		}

		item.Quantity -= in.Quantity
		item.UpdatedAt = time.Now()
		if err := stockRepo.Update(item); err != nil {
			return err
		}
		purchase = p
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &Receipt{Number: uuid.New().String(), Purchase: *purchase}, nil
}
