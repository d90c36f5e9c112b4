package console

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// prompter lee valores tipados de stdin reintentando hasta recibir una entrada
// válida, como hacía el menú original. Las variantes "opcionales" devuelven nil
// ante un Enter vacío (mantener valor actual).
type prompter struct {
	in  *bufio.Reader
	out func(format string, args ...any)
}

func (p *prompter) readLine(label string) string {
	p.out("%s", label)
	line, _ := p.in.ReadString('\n')
	return strings.TrimSpace(line)
}

// readRequired insiste hasta recibir un valor no vacío.
func (p *prompter) readRequired(label string) string {
	for {
		v := p.readLine(label)
		if v != "" {
			return v
		}
		p.out("El campo es obligatorio.\n")
	}
}

// readInt insiste hasta recibir un entero válido.
func (p *prompter) readInt(label string) int64 {
	for {
		v := p.readLine(label)
		n, err := strconv.ParseInt(v, 10, 64)
		if err == nil {
			return n
		}
		p.out("Valor inválido. Ingrese un número entero.\n")
	}
}

// readDecimal insiste hasta recibir un decimal válido.
func (p *prompter) readDecimal(label string) decimal.Decimal {
	for {
		v := p.readLine(label)
		d, err := decimal.NewFromString(v)
		if err == nil {
			return d
		}
		p.out("Valor inválido. Ingrese un número.\n")
	}
}

// readOptional devuelve nil si el usuario presiona Enter (mantener valor).
func (p *prompter) readOptional(label string) *string {
	v := p.readLine(label)
	if v == "" {
		return nil
	}
	return &v
}

func (p *prompter) readOptionalInt(label string) (*int64, error) {
	v := p.readLine(label)
	if v == "" {
		return nil, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("entero inválido: %q", v)
	}
	return &n, nil
}

func (p *prompter) readOptionalDecimal(label string) (*decimal.Decimal, error) {
	v := p.readLine(label)
	if v == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(v)
	if err != nil {
		return nil, fmt.Errorf("número inválido: %q", v)
	}
	return &d, nil
}

// confirm pregunta s/n; cualquier cosa distinta de "s" es no.
func (p *prompter) confirm(label string) bool {
	return strings.EqualFold(p.readLine(label), "s")
}
