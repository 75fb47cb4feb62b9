package cases

import "api/schemas"

var stageOrder = map[string]int{
	schemas.CASE_STAGE_REQUESTED:   1,
	schemas.CASE_STAGE_IN_PROGRESS: 2,
	schemas.CASE_STAGE_DELIVERED:   3,
	schemas.CASE_STAGE_CLOSED:      4,
}

func IsValidStage(stage string) bool {
	if stage == schemas.CASE_STAGE_DISCARDED {
		return true
	}
	_, ok := stageOrder[stage]
	return ok
}

// IsValidStageTransition permite avanzar libremente, retroceder un solo paso
// y descartar desde cualquier etapa no cerrada. Un caso cerrado no se mueve y
// un caso descartado sólo puede volver a caso_solicitado.
func IsValidStageTransition(from, to string) bool {
	if !IsValidStage(from) || !IsValidStage(to) {
		return false
	}

	if from == to {
		return false
	}

	if from == schemas.CASE_STAGE_CLOSED {
		return false
	}

	if to == schemas.CASE_STAGE_DISCARDED {
		return true
	}

	if from == schemas.CASE_STAGE_DISCARDED {
		return to == schemas.CASE_STAGE_REQUESTED
	}

	return stageOrder[to] >= stageOrder[from]-1
}
