package parser

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/obratech/obras-tracker/internal/entity"
)

const budgetWithTable = `ORCAMENTO N 1234
FERRAGENS SILVA LTDA
CNPJ 12.345.678/0001-90
Fone (11) 4002-8922

ITEM CODIGO DESCRICAO UND QTDE VLR UNIT VLR TOTAL
1 4725 VERG CA50 5/16 UN 45 30.98 1394.10
2 8310 CIMENTO PORTLAND CP II KG 120 0,55 66,00
3 1150 AREIA MEDIA LAVADA M3 8 95,00 760,00
Total: R$ 2.220,10
Página 1/1`

func TestDetectTable(t *testing.T) {
	offset, ok := DetectTable(budgetWithTable)
	require.True(t, ok)

	lines := strings.Split(budgetWithTable, "\n")
	assert.True(t, strings.HasPrefix(lines[offset], "1 4725"))
}

func TestDetectTableAbsent(t *testing.T) {
	_, ok := DetectTable("MASSA CORRIDA 18L UN 2 45,90\nTINTA ACRILICA 3,6L UN 1 89,90")
	assert.False(t, ok)
}

func TestDetectTableAccentedHeader(t *testing.T) {
	text := "Item Código Descrição Unid. Quant. Valor\n1 10 PREGO 17X21 KG 5 12,50"
	offset, ok := DetectTable(text)
	require.True(t, ok)
	assert.Equal(t, 1, offset)
}

func TestParseStrictTable(t *testing.T) {
	p := NewParser(nil)
	items := p.Parse(budgetWithTable)
	require.Len(t, items, 3)

	assert.Equal(t, "VERG CA50 5/16", items[0].Description)
	assert.Equal(t, "UN", items[0].Unit)
	assert.Equal(t, 45.0, items[0].Quantity)
	assert.InDelta(t, 30.98, items[0].UnitPrice, 1e-9)

	assert.Equal(t, "CIMENTO PORTLAND CP II", items[1].Description)
	assert.Equal(t, "KG", items[1].Unit)
	assert.Equal(t, 120.0, items[1].Quantity)
	assert.InDelta(t, 0.55, items[1].UnitPrice, 1e-9)

	assert.Equal(t, "AREIA MEDIA LAVADA", items[2].Description)
	assert.Equal(t, "M3", items[2].Unit)
}

func TestParseStopsAtTotal(t *testing.T) {
	p := NewParser(nil)
	items := p.Parse(budgetWithTable)
	for _, it := range items {
		assert.NotContains(t, strings.ToLower(it.Description), "total")
		assert.NotContains(t, strings.ToLower(it.Description), "página")
	}
}

func TestParseLooseRegexFallback(t *testing.T) {
	// No header line, so the strict strategy yields nothing and the loose
	// regex chain takes over.
	text := `MASSA CORRIDA 18L UN 2 45,90 91,80
TINTA ACRILICA BRANCO NEVE UN 1 89,90 89,90`

	p := NewParser(nil)
	items := p.Parse(text)
	require.Len(t, items, 2)

	assert.Equal(t, "MASSA CORRIDA 18L", items[0].Description)
	assert.Equal(t, "UN", items[0].Unit)
	assert.Equal(t, 2.0, items[0].Quantity)
	assert.InDelta(t, 45.90, items[0].UnitPrice, 1e-9)
}

func TestTokenPositionalStrategy(t *testing.T) {
	items := tokenPositionalStrategy("4725 VERG CA50 45 30.98", 0, false)
	require.Len(t, items, 1)
	assert.Equal(t, "VERG CA50", items[0].Description)
	assert.Equal(t, 45.0, items[0].Quantity)
	assert.InDelta(t, 30.98, items[0].UnitPrice, 1e-9)
}

func TestParseDegenerateFallback(t *testing.T) {
	// Letters and digits but no usable numeric columns: the degenerate
	// strategy keeps the line as a priceless single-quantity item.
	text := `VERGALHAO CA50 DE 5/16 POLEGADAS
Página 1/2`

	p := NewParser(nil)
	items := p.Parse(text)
	require.Len(t, items, 1)

	assert.Equal(t, "VERGALHAO CA50 DE 5/16 POLEGADAS", items[0].Description)
	assert.Equal(t, 1.0, items[0].Quantity)
	assert.Equal(t, "UN", items[0].Unit)
	assert.Equal(t, entity.PriceUnknown, items[0].UnitPrice)
	assert.False(t, items[0].HasKnownPrice())
}

func TestParseDeduplicatesDescriptions(t *testing.T) {
	text := `ITEM CODIGO DESCRICAO UND QTDE VLR UNIT
1 100 CIMENTO PORTLAND CP II KG 10 0,55
2 101 Cimento Portland CP II KG 20 0,60`

	p := NewParser(nil)
	items := p.Parse(text)
	require.Len(t, items, 1)
	assert.Equal(t, 10.0, items[0].Quantity)
	assert.InDelta(t, 0.55, items[0].UnitPrice, 1e-9)
}

func TestParseEmptyText(t *testing.T) {
	p := NewParser(nil)
	assert.Empty(t, p.Parse(""))
	assert.Empty(t, p.Parse("Total: R$ 0,00\nPágina 1/1"))
}
