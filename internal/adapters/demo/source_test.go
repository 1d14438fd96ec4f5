package demo

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/apexworks/pitwall/internal/domain"
)

func newBundleStub(t *testing.T) *httptest.Server {
	t.Helper()

	manifest := []domain.SessionSummary{
		{Slug: "race-spa-2026-01-26-22-14-52", Track: "Spa", Date: "2026-01-26T22:14:52"},
	}
	doc := domain.Document{SessionInfo: domain.SessionInfo{Track: "Spa"}}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /demo/sessions.json", func(w http.ResponseWriter, _ *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(manifest))
	})
	mux.HandleFunc("GET /demo/race-spa-2026-01-26-22-14-52.json", func(w http.ResponseWriter, _ *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(doc))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestSourceList(t *testing.T) {
	server := newBundleStub(t)
	source := &Source{BaseURL: server.URL, HTTPClient: server.Client()}

	summaries, err := source.List(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "race-spa-2026-01-26-22-14-52", summaries[0].Slug)
}

func TestSourceFetch(t *testing.T) {
	server := newBundleStub(t)
	source := &Source{BaseURL: server.URL, HTTPClient: server.Client()}

	doc, err := source.Fetch(context.Background(), "race-spa-2026-01-26-22-14-52")
	require.NoError(t, err)
	assert.Equal(t, "Spa", doc.SessionInfo.Track)
}

func TestSourceFetchMissingEntry(t *testing.T) {
	server := newBundleStub(t)
	source := &Source{BaseURL: server.URL, HTTPClient: server.Client()}

	_, err := source.Fetch(context.Background(), "never-recorded")
	assert.ErrorIs(t, err, domain.ErrSessionNotFound)
}

func TestSourceListMissingManifest(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	t.Cleanup(server.Close)
	source := &Source{BaseURL: server.URL, HTTPClient: server.Client()}

	_, err := source.List(context.Background())
	assert.Error(t, err)
}
