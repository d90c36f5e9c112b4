package console

import (
	"bufio"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPrompter(input string) (*prompter, *strings.Builder) {
	var out strings.Builder
	p := &prompter{
		in: bufio.NewReader(strings.NewReader(input)),
		out: func(format string, args ...any) {
			fmt.Fprintf(&out, format, args...)
		},
	}
	return p, &out
}

func TestReadInt_ReintentaHastaValorValido(t *testing.T) {
	p, out := newTestPrompter("abc\n\n42\n")

	got := p.readInt("Cantidad: ")
	assert.Equal(t, int64(42), got)
	assert.Contains(t, out.String(), "Valor inválido")
}

func TestReadRequired_InsisteAnteVacio(t *testing.T) {
	p, out := newTestPrompter("\n\nS1\n")

	got := p.readRequired("Serie: ")
	assert.Equal(t, "S1", got)
	assert.Contains(t, out.String(), "obligatorio")
}

func TestReadOptional_EnterDevuelveNil(t *testing.T) {
	p, _ := newTestPrompter("\n")
	assert.Nil(t, p.readOptional("Nuevo tipo: "))

	p, _ = newTestPrompter("Tablet\n")
	v := p.readOptional("Nuevo tipo: ")
	require.NotNil(t, v)
	assert.Equal(t, "Tablet", *v)
}

func TestReadOptionalInt(t *testing.T) {
	p, _ := newTestPrompter("\n")
	v, err := p.readOptionalInt("Cantidad: ")
	require.NoError(t, err)
	assert.Nil(t, v)

	p, _ = newTestPrompter("7\n")
	v, err = p.readOptionalInt("Cantidad: ")
	require.NoError(t, err)
	require.NotNil(t, v)
	assert.Equal(t, int64(7), *v)

	p, _ = newTestPrompter("siete\n")
	_, err = p.readOptionalInt("Cantidad: ")
	assert.Error(t, err)
}

func TestReadDecimal_ReintentaHastaValorValido(t *testing.T) {
	p, _ := newTestPrompter("x\n25.50\n")
	got := p.readDecimal("Precio: ")
	assert.Equal(t, "25.50", got.StringFixed(2))
}

func TestConfirm(t *testing.T) {
	p, _ := newTestPrompter("s\n")
	assert.True(t, p.confirm("¿Confirma? "))

	p, _ = newTestPrompter("S\n")
	assert.True(t, p.confirm("¿Confirma? "), "la confirmación no distingue mayúsculas")

	p, _ = newTestPrompter("n\n")
	assert.False(t, p.confirm("¿Confirma? "))

	p, _ = newTestPrompter("\n")
	assert.False(t, p.confirm("¿Confirma? "), "cualquier cosa distinta de 's' es no")
}
