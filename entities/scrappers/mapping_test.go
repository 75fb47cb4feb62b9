package scrappers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapLinkedinItem(t *testing.T) {
	item := map[string]any{
		"url":         "https://linkedin.com/in/ana-perez",
		"fullName":    "Ana Pérez",
		"companyName": "Acme Farma",
		"email":       "ana@acmefarma.mx",
	}

	opportunity := mapLinkedinItem(item)
	require.NotNil(t, opportunity)
	assert.Equal(t, "https://linkedin.com/in/ana-perez", opportunity.SourceURL)
	assert.Equal(t, "Ana Pérez", opportunity.ContactName)
	assert.Equal(t, "Acme Farma", opportunity.CompanyName)
	assert.Equal(t, "ana@acmefarma.mx", opportunity.Email)
}

func TestMapLinkedinItemWithoutURL(t *testing.T) {
	assert.Nil(t, mapLinkedinItem(map[string]any{"fullName": "Ana Pérez"}))
}

func TestMapMapsItem(t *testing.T) {
	item := map[string]any{
		"url":     "https://maps.google.com/?cid=42",
		"title":   "Farmacia Central",
		"phone":   "555-0100",
		"website": "https://farmaciacentral.mx",
		"address": "Av. Reforma 100, CDMX",
	}

	opportunity := mapMapsItem(item)
	require.NotNil(t, opportunity)
	assert.Equal(t, "Farmacia Central", opportunity.CompanyName)
	assert.Equal(t, "555-0100", opportunity.Phone)
	assert.Equal(t, "https://farmaciacentral.mx", opportunity.Website)
}

func TestStringFieldFallbackKeys(t *testing.T) {
	item := map[string]any{"profileUrl": "https://linkedin.com/in/x", "edad": 30}

	assert.Equal(t, "https://linkedin.com/in/x", stringField(item, "url", "profileUrl"))
	assert.Equal(t, "", stringField(item, "edad"))
	assert.Equal(t, "", stringField(item, "inexistente"))
}
