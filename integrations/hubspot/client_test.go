package hubspot

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
		BaseURL:    server.URL,
		Token:      "token-de-prueba",
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
	}
}

func TestGetContact(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/crm/v3/objects/contacts/123", r.URL.Path)
		assert.Equal(t, "Bearer token-de-prueba", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"id": "123", "properties": {"email": "ana@acme.com", "firstname": "Ana"}}`))
	}))
	defer server.Close()

	contact, err := newTestClient(server).GetContact(context.Background(), "123", []string{"email", "firstname"})
	require.NoError(t, err)
	assert.Equal(t, "123", contact.ID)
	assert.Equal(t, "ana@acme.com", contact.Properties["email"])
}

func TestBatchReadContacts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/crm/v3/objects/contacts/batch/read", r.URL.Path)

		body := map[string]any{}
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		inputs := body["inputs"].([]any)
		assert.Len(t, inputs, 2)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"results": [{"id": "1", "properties": {}}, {"id": "2", "properties": {}}]}`))
	}))
	defer server.Close()

	contacts, err := newTestClient(server).BatchReadContacts(context.Background(), []string{"1", "2"}, []string{"email"})
	require.NoError(t, err)
	assert.Len(t, contacts, 2)
}

func TestGetListMembershipsPagination(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.URL.Query().Get("after") == "" {
			w.Write([]byte(`{"results": [{"recordId": "1"}, {"recordId": "2"}], "paging": {"next": {"after": "cursor-1"}}}`))
			return
		}
		assert.Equal(t, "cursor-1", r.URL.Query().Get("after"))
		w.Write([]byte(`{"results": [{"recordId": "3"}]}`))
	}))
	defer server.Close()

	recordIDs, err := newTestClient(server).GetListMemberships(context.Background(), "lista-1")
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, recordIDs)
}

func TestAPIErrorIncludesBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message": "scope missing"}`))
	}))
	defer server.Close()

	_, err := newTestClient(server).GetContact(context.Background(), "123", nil)
	require.Error(t, err)

	apiErr, ok := err.(*APIError)
	require.True(t, ok)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "scope missing")
	assert.Contains(t, apiErr.Error(), "403")
}
