package resolve

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeName(t *testing.T) {
	assert.Equal(t, "cimento portland cp ii", NormalizeName("CIMENTO PORTLAND CP-II"))
	assert.Equal(t, "cimento portland cp ii", NormalizeName("  Cimento   Portland CP II "))
	assert.Equal(t, "verg ca50 5 16", NormalizeName("VERG CA50 5/16"))
	assert.Equal(t, "pagina", NormalizeName("Página"))
	assert.Equal(t, "", NormalizeName("---"))
}

func TestJaccard(t *testing.T) {
	a := TokenSet(NormalizeName("CIMENTO PORTLAND CP II"))
	b := TokenSet(NormalizeName("Cimento Portland CP-II"))
	assert.Equal(t, 1.0, Jaccard(a, b))

	c := TokenSet(NormalizeName("CIMENTO PORTLAND CP IV"))
	// three shared tokens out of five distinct
	assert.InDelta(t, 0.6, Jaccard(a, c), 1e-9)

	d := TokenSet(NormalizeName("AREIA MEDIA LAVADA"))
	assert.Equal(t, 0.0, Jaccard(a, d))

	empty := TokenSet("")
	assert.Equal(t, 0.0, Jaccard(empty, empty))
	assert.Equal(t, 0.0, Jaccard(a, empty))
}

func TestJaccardThreshold(t *testing.T) {
	a := TokenSet(NormalizeName("CIMENTO PORTLAND CP II 50KG"))
	b := TokenSet(NormalizeName("Cimento Portland CP-II 50kg"))
	assert.GreaterOrEqual(t, Jaccard(a, b), SimilarityThreshold)

	c := TokenSet(NormalizeName("CAL HIDRATADA CH III 20KG"))
	assert.Less(t, Jaccard(a, c), SimilarityThreshold)
}
