// Package demo implements the bundled demo-set client. The bundle is a
// static collaborator: a manifest at /demo/sessions.json and one document
// per slug at /demo/{slug}.json.
package demo

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

const maxResponseBytes = 64 << 20

type Source struct {
	BaseURL        string
	HTTPClient     *http.Client
	RequestTimeout time.Duration
}

var _ ports.SessionSource = (*Source)(nil)

func (s *Source) List(ctx context.Context) ([]domain.SessionSummary, error) {
	var summaries []domain.SessionSummary
	if err := s.getJSON(ctx, "/demo/sessions.json", &summaries); err != nil {
		return nil, fmt.Errorf("list demo sessions: %w", err)
	}
	return summaries, nil
}

func (s *Source) Fetch(ctx context.Context, slug string) (*domain.Document, error) {
	var doc domain.Document
	err := s.getJSON(ctx, "/demo/"+url.PathEscape(slug)+".json", &doc)
	if err != nil {
		if errors.Is(err, errMissing) {
			return nil, domain.SessionNotFound(slug)
		}
		return nil, fmt.Errorf("fetch demo session %s: %w", slug, err)
	}
	return &doc, nil
}

func (s *Source) getJSON(ctx context.Context, path string, out interface{}) error {
	if s.BaseURL == "" {
		return errors.New("base url is required")
	}
	parsed, err := url.Parse(s.BaseURL)
	if err != nil {
		return fmt.Errorf("parse base url: %w", err)
	}
	parsed.Path = strings.TrimSuffix(parsed.Path, "/") + path

	requestCtx := ctx
	if s.RequestTimeout > 0 {
		var cancel context.CancelFunc
		requestCtx, cancel = context.WithTimeout(ctx, s.RequestTimeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(requestCtx, http.MethodGet, parsed.String(), nil)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.httpClient().Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode == http.StatusNotFound {
		return errMissing
	}
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status %d", resp.StatusCode)
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

var errMissing = errors.New("bundle entry missing")
