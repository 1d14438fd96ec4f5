// Package remote implements the session-service client: a SessionSource
// backed by the HTTP contract GET /sessions and GET /sessions/{slug}.
package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/apexworks/pitwall/internal/domain"
	"github.com/apexworks/pitwall/internal/ports"
)

// maxResponseBytes bounds how much of a response body is read. Telemetry
// documents are large but not unbounded.
const maxResponseBytes = 64 << 20

type Source struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
}

var _ ports.SessionSource = (*Source)(nil)

func (s *Source) List(ctx context.Context) ([]domain.SessionSummary, error) {
	var summaries []domain.SessionSummary
	if err := s.getJSON(ctx, "/sessions", &summaries); err != nil {
		return nil, fmt.Errorf("list sessions: %w", err)
	}
	return summaries, nil
}

func (s *Source) Fetch(ctx context.Context, slug string) (*domain.Document, error) {
	var doc domain.Document
	err := s.getJSON(ctx, "/sessions/"+url.PathEscape(slug), &doc)
	if err != nil {
		var statusErr *statusError
		if errors.As(err, &statusErr) && statusErr.code == http.StatusNotFound {
			return nil, domain.SessionNotFound(slug)
		}
		return nil, fmt.Errorf("fetch session %s: %w", slug, err)
	}
	return &doc, nil
}

func (s *Source) getJSON(ctx context.Context, path string, out interface{}) error {
	endpoint, err := joinURL(s.BaseURL, path)
	if err != nil {
		return err
	}

	requestCtx := ctx
	if s.RequestTimeout > 0 {
		var cancel context.CancelFunc
		requestCtx, cancel = context.WithTimeout(ctx, s.RequestTimeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(requestCtx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient().Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return &statusError{code: resp.StatusCode}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("read response: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func (s *Source) httpClient() *http.Client {
	if s.HTTPClient != nil {
		return s.HTTPClient
	}
	return http.DefaultClient
}

type statusError struct {
	code int
}

func (e *statusError) Error() string {
	return fmt.Sprintf("unexpected status %d", e.code)
}

func joinURL(base, path string) (string, error) {
	if base == "" {
		return "", errors.New("base url is required")
	}
	parsed, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("parse base url: %w", err)
	}
	parsed.Path = strings.TrimSuffix(parsed.Path, "/") + path
	return parsed.String(), nil
}
