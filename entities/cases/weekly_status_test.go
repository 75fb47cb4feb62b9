package cases

import (
	"api/schemas"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCalculateWeeklyStatusGreen(t *testing.T) {
	now := time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)

	// Sin tareas.
	assert.Equal(t, schemas.WEEKLY_STATUS_GREEN, CalculateWeeklyStatus(schemas.Case{}, now))

	// Todas las tareas completadas.
	caseDoc := schemas.Case{
		Tasks: []schemas.CaseTask{
			{Title: "Enviar propuesta", Done: true},
			{Title: "Agendar demo", Done: true},
		},
	}
	assert.Equal(t, schemas.WEEKLY_STATUS_GREEN, CalculateWeeklyStatus(caseDoc, now))
}

func TestCalculateWeeklyStatusYellow(t *testing.T) {
	now := time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)

	caseDoc := schemas.Case{
		Tasks:          []schemas.CaseTask{{Title: "Enviar propuesta", Done: false}},
		LastActivityAt: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, schemas.WEEKLY_STATUS_YELLOW, CalculateWeeklyStatus(caseDoc, now))
}

func TestCalculateWeeklyStatusRed(t *testing.T) {
	now := time.Date(2025, 3, 12, 10, 0, 0, 0, time.UTC)

	// Actividad de la semana pasada.
	caseDoc := schemas.Case{
		Tasks:          []schemas.CaseTask{{Title: "Enviar propuesta", Done: false}},
		LastActivityAt: time.Date(2025, 3, 7, 9, 0, 0, 0, time.UTC),
	}
	assert.Equal(t, schemas.WEEKLY_STATUS_RED, CalculateWeeklyStatus(caseDoc, now))

	// Sin actividad registrada.
	caseDoc.LastActivityAt = time.Time{}
	assert.Equal(t, schemas.WEEKLY_STATUS_RED, CalculateWeeklyStatus(caseDoc, now))
}
