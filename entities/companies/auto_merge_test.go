package companies

import (
	"api/schemas"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCompaniesMatchByNormalizedName(t *testing.T) {
	a := schemas.Company{Name: "Laboratorios Acme, S.A. de C.V."}
	b := schemas.Company{Name: "laboratorios acme"}
	assert.True(t, companiesMatch(a, b))

	c := schemas.Company{Name: "Farmacéutica del Norte"}
	assert.False(t, companiesMatch(a, c))
}

func TestCompaniesMatchByDomain(t *testing.T) {
	a := schemas.Company{Name: "Acme", Domains: []string{"acme.com"}}
	b := schemas.Company{Name: "Otro Nombre", Domains: []string{"ACME.COM"}}
	assert.True(t, companiesMatch(a, b))

	c := schemas.Company{Name: "Otro Nombre", Domains: []string{"otro.com"}}
	assert.False(t, companiesMatch(a, c))
}

func TestCompaniesMatchByPrefix(t *testing.T) {
	a := schemas.Company{Name: "Acme"}
	b := schemas.Company{Name: "Acme Farma"}
	assert.True(t, companiesMatch(a, b))

	c := schemas.Company{Name: "Acmefarma"}
	assert.False(t, companiesMatch(a, c))
}

func TestBuildMergeGroups(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	companies := []schemas.Company{
		{Name: "Acme SA", CreatedAt: base.AddDate(0, 2, 0)},
		{Name: "Laboratorios Beta", CreatedAt: base},
		{Name: "Acme", CreatedAt: base},
		{Name: "Gamma Salud", CreatedAt: base.AddDate(0, 1, 0)},
	}

	groups := BuildMergeGroups(companies)

	assert.Len(t, groups, 1)
	assert.Len(t, groups[0], 2)
	// La más antigua del grupo queda primera: es la que sobrevive.
	assert.Equal(t, "Acme", groups[0][0].Name)
	assert.Equal(t, "Acme SA", groups[0][1].Name)
}

func TestBuildMergeGroupsTransitive(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	// "Acme" y "Acme Farma" coinciden por prefijo; "Acme Farma" y la tercera
	// por dominio. Las tres terminan en el mismo grupo.
	companies := []schemas.Company{
		{Name: "Acme", CreatedAt: base},
		{Name: "Acme Farma", Domains: []string{"acmefarma.mx"}, CreatedAt: base.AddDate(0, 0, 1)},
		{Name: "AF Distribución", Domains: []string{"acmefarma.mx"}, CreatedAt: base.AddDate(0, 0, 2)},
	}

	groups := BuildMergeGroups(companies)

	assert.Len(t, groups, 1)
	assert.Len(t, groups[0], 3)
	assert.Equal(t, "Acme", groups[0][0].Name)
}

func TestBuildMergeGroupsNoDuplicates(t *testing.T) {
	companies := []schemas.Company{
		{Name: "Alfa"},
		{Name: "Beta"},
		{Name: "Gamma"},
	}

	assert.Empty(t, BuildMergeGroups(companies))
}
