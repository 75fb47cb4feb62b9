package events

import (
	"api/schemas"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultBannerPrompt(t *testing.T) {
	event := &schemas.WebinarEvent{
		Title:       "Farmacovigilancia 2026",
		Description: "Nuevas guías regulatorias.",
	}

	prompt := defaultBannerPrompt(event)
	assert.Contains(t, prompt, `"Farmacovigilancia 2026"`)
	assert.Contains(t, prompt, "Nuevas guías regulatorias.")
}
