package prospection

import (
	"api/schemas"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchCompanyByName(t *testing.T) {
	companies := []schemas.Company{
		{Name: "Laboratorios Acme, S.A. de C.V."},
		{Name: "Farmacéutica del Norte"},
	}

	opportunity := schemas.ScraperOpportunity{CompanyName: "laboratorios acme"}
	company, found := matchCompany(&opportunity, companies)
	require.True(t, found)
	assert.Equal(t, "Laboratorios Acme, S.A. de C.V.", company.Name)
}

func TestMatchCompanyByAlias(t *testing.T) {
	companies := []schemas.Company{
		{Name: "Grupo Salud Integral", Aliases: []string{"GSI Clínicas"}},
	}

	opportunity := schemas.ScraperOpportunity{CompanyName: "GSI Clínicas"}
	_, found := matchCompany(&opportunity, companies)
	assert.True(t, found)
}

func TestMatchCompanyByDomain(t *testing.T) {
	companies := []schemas.Company{
		{Name: "Otro Nombre Comercial", Domains: []string{"acmefarma.mx"}},
	}

	opportunity := schemas.ScraperOpportunity{
		CompanyName: "Acme Farma Internacional",
		Website:     "https://www.acmefarma.mx/contacto",
	}
	company, found := matchCompany(&opportunity, companies)
	require.True(t, found)
	assert.Equal(t, "Otro Nombre Comercial", company.Name)
}

func TestMatchCompanyEmailDomainFallback(t *testing.T) {
	companies := []schemas.Company{
		{Name: "Acme", Domains: []string{"acme.com.mx"}},
	}

	opportunity := schemas.ScraperOpportunity{
		CompanyName: "Distribuidora Independiente",
		Email:       "compras@acme.com.mx",
	}
	_, found := matchCompany(&opportunity, companies)
	assert.True(t, found)
}

func TestMatchCompanyNoMatch(t *testing.T) {
	companies := []schemas.Company{
		{Name: "Acme", Domains: []string{"acme.com"}},
	}

	opportunity := schemas.ScraperOpportunity{CompanyName: "Beta Salud"}
	_, found := matchCompany(&opportunity, companies)
	assert.False(t, found)

	empty := schemas.ScraperOpportunity{}
	_, found = matchCompany(&empty, companies)
	assert.False(t, found)
}
