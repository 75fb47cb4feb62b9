package utils

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeCompanyName(t *testing.T) {
	assert.Equal(t, "laboratorios acme", NormalizeCompanyName("Laboratorios Acme, S.A. de C.V."))
	assert.Equal(t, "farmaceutica del bajio", NormalizeCompanyName("Farmacéutica del Bajío SA de CV"))
	assert.Equal(t, "acme", NormalizeCompanyName("ACME Inc"))
	assert.Equal(t, "acme", NormalizeCompanyName("  Acme  "))

	// Sufijos encadenados se quitan en cascada.
	assert.Equal(t, "acme", NormalizeCompanyName("Acme Group SA"))

	// Un nombre que es sólo un sufijo legal no queda vacío.
	assert.Equal(t, "sa", NormalizeCompanyName("SA"))

	assert.Equal(t, "", NormalizeCompanyName(""))
}

func TestIsCompanyPrefixMatch(t *testing.T) {
	assert.True(t, IsCompanyPrefixMatch("acme", "acme farma"))
	assert.True(t, IsCompanyPrefixMatch("acme farma", "acme"))

	assert.False(t, IsCompanyPrefixMatch("acme", "acme"))
	assert.False(t, IsCompanyPrefixMatch("acme", "acmefarma"))
	assert.False(t, IsCompanyPrefixMatch("", "acme"))
	assert.False(t, IsCompanyPrefixMatch("acme", ""))
}

func TestExtractDomain(t *testing.T) {
	assert.Equal(t, "acme.com", ExtractDomain("https://www.acme.com/contacto"))
	assert.Equal(t, "acme.com", ExtractDomain("http://acme.com"))
	assert.Equal(t, "acme.com", ExtractDomain("acme.com"))
	assert.Equal(t, "acme.com.mx", ExtractDomain("juan.perez@acme.com.mx"))
	assert.Equal(t, "acme.com", ExtractDomain("WWW.ACME.COM"))

	assert.Equal(t, "", ExtractDomain(""))
	assert.Equal(t, "", ExtractDomain("sin dominio"))
}

func TestSearchRegex(t *testing.T) {
	assert.Equal(t, "acme", SearchRegex("acme"))
	assert.Equal(t, `acme \(mx\)`, SearchRegex("acme (mx)"))

	// Un término con metacaracteres sueltos debe seguir siendo un patrón válido.
	_, err := regexp.Compile(SearchRegex("farma("))
	assert.NoError(t, err)
}
