// Package devserver serves a directory of recorded telemetry documents over
// the session-service contract, so a local recording folder can stand in
// for the real backend.
package devserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/apexworks/pitwall/internal/domain"
)

// Server indexes a directory once at construction. Documents with no valid
// laps and files that fail to parse are left out of the index, matching
// what the real service advertises.
type Server struct {
	summaries []domain.SessionSummary
	documents map[string]*domain.Document
}

func New(dir string) (*Server, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read session directory: %w", err)
	}

	server := &Server{
		summaries: []domain.SessionSummary{},
		documents: make(map[string]*domain.Document),
	}
	for _, entry := range entries {
		if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), domain.DocumentExtension) {
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			continue
		}
		var doc domain.Document
		if err := json.Unmarshal(data, &doc); err != nil {
			continue
		}
		summary, ok := domain.DeriveSummary(&doc, entry.Name())
		if !ok {
			continue
		}

		server.summaries = append(server.summaries, summary)
		server.documents[summary.Slug] = &doc
	}

	domain.SortSummaries(server.summaries)
	return server, nil
}

// SessionCount reports how many sessions the index accepted.
func (s *Server) SessionCount() int {
	return len(s.summaries)
}

// Handler returns the HTTP surface: GET /sessions and GET /sessions/{slug}.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /sessions", s.handleList)
	mux.HandleFunc("GET /sessions/{slug}", s.handleFetch)
	return mux
}

func (s *Server) handleList(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, s.summaries)
}

func (s *Server) handleFetch(w http.ResponseWriter, r *http.Request) {
	doc, ok := s.documents[r.PathValue("slug")]
	if !ok {
		http.NotFound(w, r)
		return
	}
	writeJSON(w, doc)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
