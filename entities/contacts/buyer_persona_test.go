package contacts

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyBuyerPersona(t *testing.T) {
	assert.Equal(t, 1, ClassifyBuyerPersona("Director Médico"))
	assert.Equal(t, 1, ClassifyBuyerPersona("CMO"))
	assert.Equal(t, 2, ClassifyBuyerPersona("Director General"))
	assert.Equal(t, 2, ClassifyBuyerPersona("CEO"))
	assert.Equal(t, 3, ClassifyBuyerPersona("Gerente de Marketing"))
	assert.Equal(t, 3, ClassifyBuyerPersona("Product Manager"))
	assert.Equal(t, 4, ClassifyBuyerPersona("Ejecutivo de Ventas"))
	assert.Equal(t, 5, ClassifyBuyerPersona("Médico internista"))

	assert.Equal(t, 0, ClassifyBuyerPersona(""))
	assert.Equal(t, 0, ClassifyBuyerPersona("Recepcionista"))
}

func TestClassifyBuyerPersonaFirstRuleWins(t *testing.T) {
	// "director medico" coincide con las reglas 1 y 2; gana la 1.
	assert.Equal(t, 1, ClassifyBuyerPersona("Director Médico Regional"))

	// "director de marketing" coincide con 2 y 3; gana la 2 por orden.
	assert.Equal(t, 2, ClassifyBuyerPersona("Director de Marketing"))
}
