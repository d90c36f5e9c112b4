package stock

import (
	"context"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"github.com/jhoicas/ventas-pro/internal/domain"
	"github.com/jhoicas/ventas-pro/internal/domain/entity"
	"github.com/jhoicas/ventas-pro/internal/domain/repository"
)

// UseCase es la fuente de verdad del inventario: cantidad y precio por serie.
type UseCase struct {
	stockRepo repository.StockItemRepository
	txRunner  TxRunner
}

// NewUseCase construye el caso de uso de inventario.
func NewUseCase(stockRepo repository.StockItemRepository, txRunner TxRunner) *UseCase {
	return &UseCase{stockRepo: stockRepo, txRunner: txRunner}
}

// AddInput entrada para dar de alta un ítem. Todos los campos son obligatorios.
type AddInput struct {
	Serial    string
	Kind      string
	Brand     string
	Model     string
	Quantity  int64
	UnitPrice decimal.Decimal
}

// UpdateInput entrada para actualización parcial. Los campos nil conservan el
// valor almacenado (semántica de fusión); un puntero a string vacío significa
// "borrar el campo" y se rechaza en los descriptivos obligatorios.
type UpdateInput struct {
	Serial    string
	Kind      *string
	Brand     *string
	Model     *string
	Quantity  *int64
	UnitPrice *decimal.Decimal
}

// Exists indica si hay un ítem registrado con esa serie. Sin efectos.
func (uc *UseCase) Exists(_ context.Context, serial string) (bool, error) {
	if strings.TrimSpace(serial) == "" {
		return false, domain.ErrInvalidInput
	}
	return uc.stockRepo.Exists(serial)
}

// Lookup devuelve la fila completa del ítem o ErrNotFound.
func (uc *UseCase) Lookup(_ context.Context, serial string) (*entity.StockItem, error) {
	item, err := uc.stockRepo.GetBySerial(serial)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, domain.ErrNotFound
	}
	return item, nil
}

// Add registra un ítem nuevo. Falla con ErrDuplicate si la serie ya existe y
// con ErrInvalidInput si falta algún campo o cantidad/precio no son positivos.
func (uc *UseCase) Add(_ context.Context, in AddInput) (*entity.StockItem, error) {
	if strings.TrimSpace(in.Serial) == "" || strings.TrimSpace(in.Kind) == "" ||
		strings.TrimSpace(in.Brand) == "" || strings.TrimSpace(in.Model) == "" {
		return nil, domain.ErrInvalidInput
	}
	if in.Quantity <= 0 || !in.UnitPrice.GreaterThan(decimal.Zero) {
		return nil, domain.ErrInvalidInput
	}

	item := &entity.StockItem{
		Serial:    in.Serial,
		Kind:      in.Kind,
		Brand:     in.Brand,
		Model:     in.Model,
		Quantity:  in.Quantity,
		UnitPrice: in.UnitPrice,
		UpdatedAt: time.Now(),
	}
	if err := uc.stockRepo.Create(item); err != nil {
		return nil, err
	}
	return item, nil
}

// Update aplica una actualización parcial dentro de una transacción: lee la
// fila con bloqueo, fusiona los campos presentes y escribe la fila completa.
// Revalida cantidad >= 0 y precio > 0 (ErrInvalidInput).
func (uc *UseCase) Update(ctx context.Context, in UpdateInput) (*entity.StockItem, error) {
	if strings.TrimSpace(in.Serial) == "" {
		return nil, domain.ErrInvalidInput
	}

	var updated *entity.StockItem
	err := uc.txRunner.Run(ctx, func(stockRepo repository.StockItemRepository) error {
		item, err := stockRepo.GetBySerialForUpdate(in.Serial)
		if err != nil {
			return err
		}
		if item == nil {
			return domain.ErrNotFound
		}

		if in.Kind != nil {
			item.Kind = *in.Kind
		}
		if in.Brand != nil {
			item.Brand = *in.Brand
		}
		if in.Model != nil {
			item.Model = *in.Model
		}
		if in.Quantity != nil {
			item.Quantity = *in.Quantity
		}
		if in.UnitPrice != nil {
			item.UnitPrice = *in.UnitPrice
		}

		if item.Kind == "" || item.Brand == "" || item.Model == "" {
			return domain.ErrInvalidInput
		}
		if item.Quantity < 0 || !item.UnitPrice.GreaterThan(decimal.Zero) {
			return domain.ErrInvalidInput
		}

		item.UpdatedAt = time.Now()
		if err := stockRepo.Update(item); err != nil {
			return err
		}
		updated = item
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// Remove elimina el ítem por serie. ErrNotFound si no existe; la segunda
// llamada sobre la misma serie falla sin alterar el efecto de la primera.
func (uc *UseCase) Remove(_ context.Context, serial string) error {
	ok, err := uc.stockRepo.Exists(serial)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound
	}
	return uc.stockRepo.Delete(serial)
}

// ListAll devuelve todos los ítems en orden de almacenamiento.
func (uc *UseCase) ListAll(_ context.Context) ([]*entity.StockItem, error) {
	return uc.stockRepo.ListAll()
}

// FindByKind filtra por tipo con coincidencia exacta.
func (uc *UseCase) FindByKind(_ context.Context, kind string) ([]*entity.StockItem, error) {
	if strings.TrimSpace(kind) == "" {
		return nil, domain.ErrInvalidInput
	}
	return uc.stockRepo.ListByKind(kind)
}
