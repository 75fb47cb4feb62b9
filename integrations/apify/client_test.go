package apify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(server *httptest.Server) *Client {
	return &Client{
		BaseURL:      server.URL,
		Token:        "token-de-prueba",
		PollInterval: 10 * time.Millisecond,
		HTTPClient:   &http.Client{Timeout: 5 * time.Second},
	}
}

func TestRunActor(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/acts/vendor~actor/runs", r.URL.Path)
		assert.Equal(t, "token-de-prueba", r.URL.Query().Get("token"))

		input := map[string]any{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&input))
		assert.Equal(t, "farmacias", input["query"])

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": {"id": "run-1", "status": "RUNNING", "defaultDatasetId": "ds-1"}}`))
	}))
	defer server.Close()

	run, err := newTestClient(server).RunActor(context.Background(), "vendor~actor", map[string]any{"query": "farmacias"})
	require.NoError(t, err)
	assert.Equal(t, "run-1", run.ID)
	assert.Equal(t, "ds-1", run.DefaultDatasetID)
}

func TestWaitRunPollsUntilFinished(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		status := "RUNNING"
		if atomic.AddInt32(&calls, 1) >= 3 {
			status = RUN_STATUS_SUCCEEDED
		}
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"data": map[string]any{"id": "run-1", "status": status, "defaultDatasetId": "ds-1"},
		})
	}))
	defer server.Close()

	run, err := newTestClient(server).WaitRun(context.Background(), "run-1")
	require.NoError(t, err)
	assert.Equal(t, RUN_STATUS_SUCCEEDED, run.Status)
	assert.GreaterOrEqual(t, atomic.LoadInt32(&calls), int32(3))
}

func TestWaitRunFailedStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": {"id": "run-1", "status": "FAILED"}}`))
	}))
	defer server.Close()

	_, err := newTestClient(server).WaitRun(context.Background(), "run-1")
	assert.Error(t, err)
}

func TestWaitRunContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data": {"id": "run-1", "status": "RUNNING"}}`))
	}))
	defer server.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Millisecond)
	defer cancel()

	_, err := newTestClient(server).WaitRun(ctx, "run-1")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestDatasetItems(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/datasets/ds-1/items", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("clean"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[{"title": "Farmacia Central", "phone": "555-0100"}]`))
	}))
	defer server.Close()

	items, err := newTestClient(server).DatasetItems(context.Background(), "ds-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "Farmacia Central", items[0]["title"])
}

func TestAPIErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "invalid token"}`))
	}))
	defer server.Close()

	_, err := newTestClient(server).GetRun(context.Background(), "run-1")
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "invalid token")
}
