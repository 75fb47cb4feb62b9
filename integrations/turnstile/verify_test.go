package turnstile

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(server *httptest.Server) *Client {
	return &Client{
		VerifyURL:  server.URL,
		Secret:     "secreto-de-prueba",
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func TestVerifySuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "secreto-de-prueba", r.Form.Get("secret"))
		assert.Equal(t, "token-valido", r.Form.Get("response"))
		assert.Equal(t, "10.0.0.1", r.Form.Get("remoteip"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": true}`))
	}))
	defer server.Close()

	ok, err := newTestClient(server).Verify(context.Background(), "token-valido", "10.0.0.1")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestVerifyRejected(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"success": false, "error-codes": ["invalid-input-response"]}`))
	}))
	defer server.Close()

	ok, err := newTestClient(server).Verify(context.Background(), "token-invalido", "")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestVerifyServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := newTestClient(server).Verify(context.Background(), "token", "")
	assert.Error(t, err)
}
