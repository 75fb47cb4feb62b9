package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsValidDate(t *testing.T) {
	assert.True(t, IsValidDate("2025-03-10"))
	assert.True(t, IsValidDate("2025-03-10T12:30:00Z"))
	assert.True(t, IsValidDate("2025-03-10T12:30:00-06:00"))

	assert.False(t, IsValidDate(""))
	assert.False(t, IsValidDate("10/03/2025"))
	assert.False(t, IsValidDate("no es fecha"))
}

func TestStartOfISOWeek(t *testing.T) {
	// Miércoles 12 de marzo de 2025 -> lunes 10.
	wednesday := time.Date(2025, 3, 12, 15, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), StartOfISOWeek(wednesday))

	// Domingo pertenece a la semana que empezó el lunes anterior.
	sunday := time.Date(2025, 3, 16, 23, 59, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC), StartOfISOWeek(sunday))

	monday := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, monday, StartOfISOWeek(monday))
}

func TestSameISOWeek(t *testing.T) {
	monday := time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)
	sunday := time.Date(2025, 3, 16, 22, 0, 0, 0, time.UTC)
	nextMonday := time.Date(2025, 3, 17, 9, 0, 0, 0, time.UTC)

	assert.True(t, SameISOWeek(monday, sunday))
	assert.False(t, SameISOWeek(sunday, nextMonday))

	// Fin de año: el 29 de diciembre de 2025 y el 1 de enero de 2026 caen en
	// la misma semana ISO.
	assert.True(t, SameISOWeek(
		time.Date(2025, 12, 29, 0, 0, 0, 0, time.UTC),
		time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
	))
}
