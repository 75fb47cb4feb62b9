package google

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(server *httptest.Server) *Client {
	return &Client{
		ClientID:     "cliente-de-prueba",
		ClientSecret: "secreto",
		TokenURL:     server.URL + "/token",
		CalendarURL:  server.URL + "/calendar",
		DriveURL:     server.URL + "/drive",
		YoutubeURL:   server.URL + "/youtube",
		HTTPClient:   &http.Client{Timeout: 5 * time.Second},
	}
}

func TestCreateCalendarEvent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/calendar/calendars/primary/events", r.URL.Path)
		assert.Equal(t, "Bearer acceso", r.Header.Get("Authorization"))

		body := map[string]any{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "Webinar de farmacovigilancia", body["summary"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "evento-123"}`))
	}))
	defer server.Close()

	eventID, err := newTestClient(server).CreateCalendarEvent(context.Background(), "acceso", CalendarEvent{
		Summary:  "Webinar de farmacovigilancia",
		StartsAt: time.Date(2025, 4, 1, 16, 0, 0, 0, time.UTC),
		EndsAt:   time.Date(2025, 4, 1, 17, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, "evento-123", eventID)
}

func TestCreateLiveBroadcast(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/youtube/liveBroadcasts", r.URL.Path)

		body := map[string]any{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		status := body["status"].(map[string]any)
		assert.Equal(t, "unlisted", status["privacyStatus"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "yt-456"}`))
	}))
	defer server.Close()

	youtubeID, err := newTestClient(server).CreateLiveBroadcast(context.Background(), "acceso", "Webinar", time.Now())
	require.NoError(t, err)
	assert.Equal(t, "yt-456", youtubeID)
}

func TestListDriveFiles(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/drive/files", r.URL.Path)
		assert.Contains(t, r.URL.Query().Get("q"), "'carpeta-1' in parents")

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"files": [{"id": "f1", "name": "propuesta.pdf", "mimeType": "application/pdf"}]}`))
	}))
	defer server.Close()

	files, err := newTestClient(server).ListDriveFiles(context.Background(), "acceso", "carpeta-1")
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "propuesta.pdf", files[0].Name)
}

func TestAPIErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := newTestClient(server).ListDriveFiles(context.Background(), "expirado", "")
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
}
