package cases

import (
	"api/schemas"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidStage(t *testing.T) {
	assert.True(t, IsValidStage(schemas.CASE_STAGE_REQUESTED))
	assert.True(t, IsValidStage(schemas.CASE_STAGE_IN_PROGRESS))
	assert.True(t, IsValidStage(schemas.CASE_STAGE_DELIVERED))
	assert.True(t, IsValidStage(schemas.CASE_STAGE_CLOSED))
	assert.True(t, IsValidStage(schemas.CASE_STAGE_DISCARDED))

	assert.False(t, IsValidStage(""))
	assert.False(t, IsValidStage("caso_inventado"))
}

func TestIsValidStageTransitionForward(t *testing.T) {
	assert.True(t, IsValidStageTransition(schemas.CASE_STAGE_REQUESTED, schemas.CASE_STAGE_IN_PROGRESS))
	assert.True(t, IsValidStageTransition(schemas.CASE_STAGE_IN_PROGRESS, schemas.CASE_STAGE_DELIVERED))
	assert.True(t, IsValidStageTransition(schemas.CASE_STAGE_DELIVERED, schemas.CASE_STAGE_CLOSED))

	// Saltar etapas hacia adelante está permitido.
	assert.True(t, IsValidStageTransition(schemas.CASE_STAGE_REQUESTED, schemas.CASE_STAGE_CLOSED))
}

func TestIsValidStageTransitionBackward(t *testing.T) {
	// Retroceder un paso está permitido.
	assert.True(t, IsValidStageTransition(schemas.CASE_STAGE_IN_PROGRESS, schemas.CASE_STAGE_REQUESTED))
	assert.True(t, IsValidStageTransition(schemas.CASE_STAGE_DELIVERED, schemas.CASE_STAGE_IN_PROGRESS))

	// Retroceder dos pasos no.
	assert.False(t, IsValidStageTransition(schemas.CASE_STAGE_DELIVERED, schemas.CASE_STAGE_REQUESTED))
}

func TestIsValidStageTransitionClosed(t *testing.T) {
	// Un caso cerrado no se mueve a ninguna parte.
	assert.False(t, IsValidStageTransition(schemas.CASE_STAGE_CLOSED, schemas.CASE_STAGE_DELIVERED))
	assert.False(t, IsValidStageTransition(schemas.CASE_STAGE_CLOSED, schemas.CASE_STAGE_REQUESTED))
	assert.False(t, IsValidStageTransition(schemas.CASE_STAGE_CLOSED, schemas.CASE_STAGE_DISCARDED))
}

func TestIsValidStageTransitionDiscard(t *testing.T) {
	assert.True(t, IsValidStageTransition(schemas.CASE_STAGE_REQUESTED, schemas.CASE_STAGE_DISCARDED))
	assert.True(t, IsValidStageTransition(schemas.CASE_STAGE_IN_PROGRESS, schemas.CASE_STAGE_DISCARDED))
	assert.True(t, IsValidStageTransition(schemas.CASE_STAGE_DELIVERED, schemas.CASE_STAGE_DISCARDED))

	// Un caso descartado sólo puede reactivarse al inicio del embudo.
	assert.True(t, IsValidStageTransition(schemas.CASE_STAGE_DISCARDED, schemas.CASE_STAGE_REQUESTED))
	assert.False(t, IsValidStageTransition(schemas.CASE_STAGE_DISCARDED, schemas.CASE_STAGE_IN_PROGRESS))
	assert.False(t, IsValidStageTransition(schemas.CASE_STAGE_DISCARDED, schemas.CASE_STAGE_CLOSED))
}

func TestIsValidStageTransitionSameStage(t *testing.T) {
	assert.False(t, IsValidStageTransition(schemas.CASE_STAGE_REQUESTED, schemas.CASE_STAGE_REQUESTED))
}
