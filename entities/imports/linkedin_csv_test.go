package imports

import (
	"api/schemas"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLinkedinCSVWithHeader(t *testing.T) {
	csv := "name,title,company,email,linkedin_url\n" +
		"Ana Pérez,Directora Médica,Acme Farma,ANA@acmefarma.mx,https://linkedin.com/in/ana-perez\n"

	rows, skipped := parseLinkedinCSV(strings.NewReader(csv))
	require.Len(t, rows, 1)
	assert.Equal(t, 0, skipped)
	assert.Equal(t, "Ana Pérez", rows[0].Name)
	assert.Equal(t, "ana@acmefarma.mx", rows[0].Email)
	assert.Equal(t, "https://linkedin.com/in/ana-perez", rows[0].LinkedinURL)
}

func TestParseLinkedinCSVWithoutHeader(t *testing.T) {
	csv := "Luis Gómez,Gerente de Compras,Farmacia Central,luis@farmaciacentral.mx\n"

	rows, skipped := parseLinkedinCSV(strings.NewReader(csv))
	require.Len(t, rows, 1)
	assert.Equal(t, 0, skipped)
	assert.Equal(t, "Luis Gómez", rows[0].Name)
	assert.Equal(t, "", rows[0].LinkedinURL)
}

func TestParseLinkedinCSVSkipsMalformedRows(t *testing.T) {
	csv := "name,title,company,email\n" +
		"Ana Pérez,Directora Médica,Acme Farma,ana@acmefarma.mx\n" +
		"fila,corta\n" +
		",Gerente,Sin Nombre Ni Correo,\n" +
		"Luis Gómez,Gerente,Farmacia Central,luis@farmaciacentral.mx\n"

	rows, skipped := parseLinkedinCSV(strings.NewReader(csv))
	require.Len(t, rows, 2)
	assert.Equal(t, 2, skipped)
	assert.Equal(t, "Ana Pérez", rows[0].Name)
	assert.Equal(t, "Luis Gómez", rows[1].Name)
}

func TestParseLinkedinCSVEmpty(t *testing.T) {
	rows, skipped := parseLinkedinCSV(strings.NewReader(""))
	assert.Empty(t, rows)
	assert.Equal(t, 0, skipped)
}

func TestAuditDetail(t *testing.T) {
	assert.Equal(t, "importados=10, omitidos=2", AuditDetail(schemas.ImportProgress{Imported: 10, Skipped: 2}))
	assert.Equal(t, "importados=0, omitidos=0, error=sin conexión",
		AuditDetail(schemas.ImportProgress{Error: "sin conexión"}))
}
