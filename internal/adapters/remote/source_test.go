package remote

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

func newServiceStub(t *testing.T, summaries []domain.SessionSummary, docs map[string]domain.Document) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("GET /sessions", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(summaries))
	})
	mux.HandleFunc("GET /sessions/{slug}", func(w http.ResponseWriter, r *http.Request) {
		doc, ok := docs[r.PathValue("slug")]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		require.NoError(t, json.NewEncoder(w).Encode(doc))
	})

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return server
}

func TestSourceList(t *testing.T) {
	server := newServiceStub(t, []domain.SessionSummary{
		{Slug: "race-spa-2026-01-26-22-14-52", SessionType: "Race", Track: "Spa", Date: "2026-01-26T22:14:52", ValidLapCount: 12},
	}, nil)
	source := &Source{BaseURL: server.URL, HTTPClient: server.Client()}

	summaries, err := source.List(context.Background())
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "Spa", summaries[0].Track)
	assert.Equal(t, 12, summaries[0].ValidLapCount)
}

func TestSourceFetch(t *testing.T) {
	server := newServiceStub(t, nil, map[string]domain.Document{
		"race-spa-2026-01-26-22-14-52": {SessionInfo: domain.SessionInfo{Track: "Spa"}},
	})
	source := &Source{BaseURL: server.URL, HTTPClient: server.Client()}

	doc, err := source.Fetch(context.Background(), "race-spa-2026-01-26-22-14-52")
	require.NoError(t, err)
	assert.Equal(t, "Spa", doc.SessionInfo.Track)
}

func TestSourceFetchUnknownSlug(t *testing.T) {
	server := newServiceStub(t, nil, nil)
	source := &Source{BaseURL: server.URL, HTTPClient: server.Client()}

	_, err := source.Fetch(context.Background(), "missing")
	require.ErrorIs(t, err, domain.ErrSessionNotFound)
	assert.Contains(t, err.Error(), "missing")
}

func TestSourceListServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	t.Cleanup(server.Close)
	source := &Source{BaseURL: server.URL, HTTPClient: server.Client()}

	_, err := source.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status 500")
}

func TestSourceListUnreachable(t *testing.T) {
	source := &Source{BaseURL: "http://127.0.0.1:1"}

	_, err := source.List(context.Background())
	assert.Error(t, err)
}

func TestSourceRequiresBaseURL(t *testing.T) {
	source := &Source{}

	_, err := source.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "base url is required")
}
