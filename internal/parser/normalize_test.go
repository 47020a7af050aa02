package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDecimal(t *testing.T) {
	tests := []struct {
		tok  string
		want float64
		ok   bool
	}{
		{"45", 45, true},
		{"30.98", 30.98, true},
		{"0,5", 0.5, true},
		{"1.234,56", 1234.56, true},
		{"1.234", 1234, true},
		{"1.234.567", 1234567, true},
		{"R$1.460,10", 1460.10, true},
		{"abc", 0, false},
		{"", 0, false},
		{"5/16", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseDecimal(tt.tok)
		require.Equal(t, tt.ok, ok, "token %q", tt.tok)
		assert.InDelta(t, tt.want, got, 1e-9, "token %q", tt.tok)
	}
}

func TestNormalizeDescription(t *testing.T) {
	assert.Equal(t, "CIMENTO CP II", NormalizeDescription("  CIMENTO   CP II  "))
	assert.Equal(t, "AREIA LAVADA", NormalizeDescription("12 - AREIA LAVADA"))
	assert.Equal(t, "BLOCO CERAMICO", NormalizeDescription("003. BLOCO CERAMICO ***"))
	assert.Equal(t, "VERG CA50 5/16", NormalizeDescription("VERG CA50 5/16"))
}

func TestValidDescription(t *testing.T) {
	assert.True(t, ValidDescription("CIMENTO"))
	assert.False(t, ValidDescription("CP"))
	assert.False(t, ValidDescription("12345"))
	assert.False(t, ValidDescription(""))
}

func TestIsNoiseLine(t *testing.T) {
	noise := []string{
		"Total: R$ 1.234,56",
		"TOTAL GERAL",
		"Página 1/2",
		"pag. 2/3",
		"Observações: entrega em 10 dias",
		"CNPJ 12.345.678/0001-90",
		"Fone (11) 4002-8922",
		"vendas@fornecedor.com.br",
	}
	for _, line := range noise {
		assert.True(t, IsNoiseLine(line), "line %q", line)
	}

	assert.False(t, IsNoiseLine("CIMENTO PORTLAND CP II 50KG"))
	assert.False(t, IsNoiseLine("1 4725 VERG CA50 5/16 UN 45 30.98"))
}

func TestIsTableEnd(t *testing.T) {
	assert.True(t, IsTableEnd("Total: R$ 1.460,10"))
	assert.True(t, IsTableEnd("OBSERVAÇÕES"))
	assert.True(t, IsTableEnd("Página 1/2"))
	assert.False(t, IsTableEnd("2 8310 CIMENTO PORTLAND CP II KG 120 0,55"))
}
