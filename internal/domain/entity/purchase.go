package entity

import "github.com/shopspring/decimal"

// Purchase representa una venta registrada a un cliente.
// Serial/Kind/Brand/Model son una copia desnormalizada del ítem al momento de la
// venta, no una referencia viva al stock. Las fechas cruzan la frontera como
// strings con formato DD/MM/AAAA [HH:MM:SS] (las formatea el llamador).
type Purchase struct {
	CustomerID   string // clave primaria (CPF / cédula)
	CustomerName string
	BirthDate    string
	PurchaseAt   string
	Serial       string
	Kind         string
	Brand        string
	Model        string
	Quantity     int64
	UnitPrice    decimal.Decimal
	TotalPrice   decimal.Decimal
}

// RecomputeTotal rederiva TotalPrice desde UnitPrice y Quantity.
// Debe llamarse siempre que cambie cualquiera de los dos factores.
func (p *Purchase) RecomputeTotal() {
	p.TotalPrice = p.UnitPrice.Mul(decimal.NewFromInt(p.Quantity))
}
