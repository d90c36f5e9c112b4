// Package console implementa el menú interactivo del punto de venta: captura
// y valida la entrada del usuario, invoca los casos de uso y traduce los
// errores de dominio a mensajes legibles. Toda la lógica de negocio vive en
// internal/application.
package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jhoicas/ventas-pro/internal/application/sales"
	"github.com/jhoicas/ventas-pro/internal/application/stock"
	"github.com/jhoicas/ventas-pro/internal/domain"
	"github.com/jhoicas/ventas-pro/pkg/logger"
)

// ReceiptGenerator puerto hacia el generador de comprobantes PDF.
type ReceiptGenerator interface {
	Generate(receipt *sales.Receipt) ([]byte, error)
}

// Console menú interactivo del punto de venta.
type Console struct {
	stockUC    *stock.UseCase
	salesUC    *sales.UseCase
	receipts   ReceiptGenerator
	receiptDir string
	log        *logger.Logger
	p          *prompter
}

// New construye la consola leyendo de stdin y escribiendo a stdout.
func New(stockUC *stock.UseCase, salesUC *sales.UseCase, receipts ReceiptGenerator, receiptDir string, log *logger.Logger) *Console {
	return &Console{
		stockUC:    stockUC,
		salesUC:    salesUC,
		receipts:   receipts,
		receiptDir: receiptDir,
		log:        log,
		p: &prompter{
			in: bufio.NewReader(os.Stdin),
			out: func(format string, args ...any) {
				fmt.Printf(format, args...)
			},
		},
	}
}

const menuText = `
VENTAS -----------
[1] Vender
[2] Listar ventas
[3] Actualizar venta
[4] Eliminar registro de venta
[5] Cancelar venta (devuelve stock)

INVENTARIO -------
[6] Agregar ítem
[7] Listar inventario
[8] Buscar por tipo
[9] Actualizar ítem
[10] Eliminar ítem

[0] Salir
`

// Run ejecuta el bucle del menú hasta que el usuario elige salir o se cancela
// el contexto.
func (c *Console) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		c.p.out("%s\n", menuText)
		switch c.p.readLine("Elija una opción: ") {
		case "1":
			c.sell(ctx)
		case "2":
			c.listPurchases(ctx)
		case "3":
			c.updatePurchase(ctx)
		case "4":
			c.deletePurchase(ctx)
		case "5":
			c.cancelPurchase(ctx)
		case "6":
			c.addStockItem(ctx)
		case "7":
			c.listStock(ctx)
		case "8":
			c.findByKind(ctx)
		case "9":
			c.updateStockItem(ctx)
		case "10":
			c.removeStockItem(ctx)
		case "0":
			c.p.out("Saliendo...\n")
			return
		default:
			c.p.out("Opción inválida. Intente de nuevo.\n")
		}
	}
}

// sell flujo de venta: cotizar, confirmar con el usuario, confirmar la venta y
// emitir el comprobante PDF.
func (c *Console) sell(ctx context.Context) {
	customerID := c.p.readRequired("Documento del cliente: ")
	customerName := c.p.readRequired("Nombre: ")
	birthDate := c.p.readRequired("Fecha de nacimiento (DD/MM/AAAA): ")
	serial := c.p.readRequired("Serie del ítem: ")
	quantity := c.p.readInt("Cantidad: ")

	quote, err := c.salesUC.BuildQuote(ctx, serial, quantity)
	if err != nil {
		c.printErr(err)
		return
	}

	c.p.out("\nDetalle de la venta:\n")
	c.p.out("  Artículo:        %s %s %s (serie %s)\n", quote.Kind, quote.Brand, quote.Model, quote.Serial)
	c.p.out("  Precio unitario: %s\n", formatMoney(quote.UnitPrice))
	c.p.out("  Cantidad:        %d\n", quote.Quantity)
	c.p.out("  Total:           %s\n", formatMoney(quote.TotalPrice))

	if !c.p.confirm("¿Confirma la venta? (s/n): ") {
		c.p.out("Venta cancelada.\n")
		return
	}

	purchaseAt := c.p.readLine("Fecha de la compra (DD/MM/AAAA HH:MM:SS) [Enter para actual]: ")

	receipt, err := c.salesUC.Commit(ctx, sales.CommitInput{
		CustomerID:   customerID,
		CustomerName: customerName,
		BirthDate:    birthDate,
		Serial:       serial,
		Quantity:     quantity,
		PurchaseAt:   purchaseAt,
	})
	if err != nil {
		c.printErr(err)
		return
	}

	c.p.out("Venta registrada. Comprobante N° %s\n", receipt.Number)
	c.writeReceipt(receipt)
}

// writeReceipt guarda el PDF del comprobante; un fallo aquí no revierte la venta.
func (c *Console) writeReceipt(receipt *sales.Receipt) {
	data, err := c.receipts.Generate(receipt)
	if err != nil {
		c.log.Error().Err(err).Str("receipt", receipt.Number).Msg("generar comprobante PDF")
		return
	}
	if err := os.MkdirAll(c.receiptDir, 0o755); err != nil {
		c.log.Error().Err(err).Str("dir", c.receiptDir).Msg("crear directorio de comprobantes")
		return
	}
	path := filepath.Join(c.receiptDir, "venta-"+receipt.Number+".pdf")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		c.log.Error().Err(err).Str("path", path).Msg("guardar comprobante PDF")
		return
	}
	c.p.out("Comprobante guardado en %s\n", path)
}

func (c *Console) listPurchases(ctx context.Context) {
	purchases, err := c.salesUC.ListPurchases(ctx)
	if err != nil {
		c.printErr(err)
		return
	}
	if len(purchases) == 0 {
		c.p.out("No hay ventas registradas.\n")
		return
	}
	for _, p := range purchases {
		c.p.out("%s | %s | %s | %s %s %s (serie %s) | x%d | %s | total %s\n",
			p.CustomerID, p.CustomerName, p.PurchaseAt,
			p.Kind, p.Brand, p.Model, p.Serial,
			p.Quantity, formatMoney(p.UnitPrice), formatMoney(p.TotalPrice))
	}
}

func (c *Console) updatePurchase(ctx context.Context) {
	in := sales.UpdatePurchaseInput{
		CustomerID: c.p.readRequired("Documento del cliente a actualizar: "),
	}
	in.CustomerName = c.p.readOptional("Nuevo nombre (Enter para mantener): ")
	in.BirthDate = c.p.readOptional("Nueva fecha de nacimiento (Enter para mantener): ")
	in.Serial = c.p.readOptional("Nueva serie (Enter para mantener): ")
	in.Kind = c.p.readOptional("Nuevo tipo (Enter para mantener): ")
	in.Brand = c.p.readOptional("Nueva marca (Enter para mantener): ")
	in.Model = c.p.readOptional("Nuevo modelo (Enter para mantener): ")

	qty, err := c.p.readOptionalInt("Nueva cantidad (Enter para mantener): ")
	if err != nil {
		c.p.out("%v\n", err)
		return
	}
	in.Quantity = qty

	price, err := c.p.readOptionalDecimal("Nuevo precio unitario (Enter para mantener): ")
	if err != nil {
		c.p.out("%v\n", err)
		return
	}
	in.UnitPrice = price
	in.PurchaseAt = c.p.readOptional("Nueva fecha de compra (Enter para mantener): ")

	p, err := c.salesUC.UpdatePurchase(ctx, in)
	if err != nil {
		c.printErr(err)
		return
	}
	c.p.out("Venta actualizada. Nuevo total: %s\n", formatMoney(p.TotalPrice))
}

func (c *Console) deletePurchase(ctx context.Context) {
	customerID := c.p.readRequired("Documento del cliente a eliminar: ")
	if err := c.salesUC.DeletePurchase(ctx, customerID); err != nil {
		c.printErr(err)
		return
	}
	c.p.out("Registro de venta eliminado.\n")
}

func (c *Console) cancelPurchase(ctx context.Context) {
	customerID := c.p.readRequired("Documento del cliente cuya venta se cancela: ")
	if err := c.salesUC.CancelPurchase(ctx, customerID); err != nil {
		c.printErr(err)
		return
	}
	c.p.out("Venta cancelada. Las unidades volvieron al inventario.\n")
}

// addStockItem da de alta un ítem; si la serie ya existe, ofrece actualizarla
// (comportamiento del menú original).
func (c *Console) addStockItem(ctx context.Context) {
	serial := c.p.readRequired("Serie: ")

	exists, err := c.stockUC.Exists(ctx, serial)
	if err != nil {
		c.printErr(err)
		return
	}
	if exists {
		c.p.out("La serie ya existe; se actualiza el ítem.\n")
		c.updateStockFields(ctx, serial)
		return
	}

	in := stock.AddInput{
		Serial: serial,
		Kind:   c.p.readRequired("Tipo: "),
		Brand:  c.p.readRequired("Marca: "),
		Model:  c.p.readRequired("Modelo: "),
	}
	in.Quantity = c.p.readInt("Cantidad: ")
	in.UnitPrice = c.p.readDecimal("Precio unitario: ")

	if _, err := c.stockUC.Add(ctx, in); err != nil {
		c.printErr(err)
		return
	}
	c.p.out("Ítem agregado al inventario.\n")
}

func (c *Console) listStock(ctx context.Context) {
	items, err := c.stockUC.ListAll(ctx)
	if err != nil {
		c.printErr(err)
		return
	}
	if len(items) == 0 {
		c.p.out("No hay ítems en el inventario.\n")
		return
	}
	for _, it := range items {
		c.p.out("%s | %s %s %s | x%d | %s\n",
			it.Serial, it.Kind, it.Brand, it.Model, it.Quantity, formatMoney(it.UnitPrice))
	}
}

func (c *Console) findByKind(ctx context.Context) {
	kind := c.p.readRequired("Tipo a buscar: ")
	items, err := c.stockUC.FindByKind(ctx, kind)
	if err != nil {
		c.printErr(err)
		return
	}
	if len(items) == 0 {
		c.p.out("Ningún ítem encontrado para ese tipo.\n")
		return
	}
	for _, it := range items {
		c.p.out("%s | %s %s %s | x%d | %s\n",
			it.Serial, it.Kind, it.Brand, it.Model, it.Quantity, formatMoney(it.UnitPrice))
	}
}

func (c *Console) updateStockItem(ctx context.Context) {
	serial := c.p.readRequired("Serie del ítem a actualizar: ")
	c.updateStockFields(ctx, serial)
}

func (c *Console) updateStockFields(ctx context.Context, serial string) {
	in := stock.UpdateInput{Serial: serial}
	in.Kind = c.p.readOptional("Nuevo tipo (Enter para mantener): ")
	in.Brand = c.p.readOptional("Nueva marca (Enter para mantener): ")
	in.Model = c.p.readOptional("Nuevo modelo (Enter para mantener): ")

	qty, err := c.p.readOptionalInt("Nueva cantidad (Enter para mantener): ")
	if err != nil {
		c.p.out("%v\n", err)
		return
	}
	in.Quantity = qty

	price, err := c.p.readOptionalDecimal("Nuevo precio unitario (Enter para mantener): ")
	if err != nil {
		c.p.out("%v\n", err)
		return
	}
	in.UnitPrice = price

	if _, err := c.stockUC.Update(ctx, in); err != nil {
		c.printErr(err)
		return
	}
	c.p.out("Ítem actualizado.\n")
}

func (c *Console) removeStockItem(ctx context.Context) {
	serial := c.p.readRequired("Serie del ítem a eliminar: ")
	if err := c.stockUC.Remove(ctx, serial); err != nil {
		c.printErr(err)
		return
	}
	c.p.out("Ítem eliminado del inventario.\n")
}

// printErr traduce errores de dominio a mensajes para el usuario; los errores
// inesperados se registran y se muestra un mensaje genérico.
func (c *Console) printErr(err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.p.out("Error: no encontrado.\n")
	case errors.Is(err, domain.ErrDuplicate):
		c.p.out("Error: la clave ya existe.\n")
	case errors.Is(err, domain.ErrInsufficientStock):
		c.p.out("Error: cantidad insuficiente en el inventario.\n")
	case errors.Is(err, domain.ErrInvalidInput):
		c.p.out("Error: datos inválidos.\n")
	default:
		c.log.Error().Err(err).Msg("operación falló")
		c.p.out("Error inesperado; revise el log.\n")
	}
}
