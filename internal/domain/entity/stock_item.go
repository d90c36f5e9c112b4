package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// StockItem representa una unidad de inventario identificada por su número de serie.
// Quantity nunca es negativa; UnitPrice es el precio autoritativo usado al vender.
type StockItem struct {
	Serial    string // clave primaria, inmutable
	Kind      string // tipo (ej. "Notebook")
	Brand     string
	Model     string
	Quantity  int64
	UnitPrice decimal.Decimal
	UpdatedAt time.Time
}
