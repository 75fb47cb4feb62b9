package cases

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidChecklistSegment(t *testing.T) {
	assert.True(t, isValidChecklistSegment("farmacovigilancia"))
	assert.True(t, isValidChecklistSegment("semana-12"))
	assert.True(t, isValidChecklistSegment("64f0c2a1b3d4e5f6a7b8c9d0"))

	assert.False(t, isValidChecklistSegment(""))
	assert.False(t, isValidChecklistSegment("grupo.extra"))
	assert.False(t, isValidChecklistSegment("$set"))
	assert.False(t, isValidChecklistSegment("columna.$"))
}
