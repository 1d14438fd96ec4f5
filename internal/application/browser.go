package application

import (
	"context"
	"sync"

	"github.com/apexworks/pitwall/internal/domain"
	"github.com/apexworks/pitwall/internal/ports"
)

// Browser is the owned session context: it holds the settled source mode,
// the current summary list, the single-flight cache and, in archive mode,
// the in-memory document store. Constructed once per application session;
// every mode transition resets the cache and replaces the summary list
// wholesale.
type Browser struct {
	resolver *Resolver

	mu        sync.RWMutex
	mode      SourceMode
	summaries []domain.SessionSummary
	source    ports.SessionSource
	cache     *SessionCache
	store     map[string]*domain.Document
}

func NewBrowser(resolver *Resolver) *Browser {
	return &Browser{
		resolver: resolver,
		mode:     ModeDetecting,
	}
}

// Resolve runs the source-detection chain once and installs the result.
// It is a no-op after the mode has settled.
func (b *Browser) Resolve(ctx context.Context) SourceMode {
	b.mu.RLock()
	settled := b.mode != ModeDetecting
	b.mu.RUnlock()
	if settled {
		return b.Mode()
	}

	res := b.resolver.Resolve(ctx)

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.mode != ModeDetecting {
		// An archive upload settled the mode while we were probing;
		// the upload wins and is terminal.
		return b.mode
	}
	b.mode = res.Mode
	b.source = res.Source
	b.summaries = sortedCopy(res.Summaries)
	b.cache = b.newCacheLocked()
	return b.mode
}

// Mode reports the current source mode.
func (b *Browser) Mode() SourceMode {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.mode
}

// Summaries returns the current session list, sorted by date descending.
// The returned slice is the caller's to keep.
func (b *Browser) Summaries() []domain.SessionSummary {
	b.mu.RLock()
	defer b.mu.RUnlock()
	out := make([]domain.SessionSummary, len(b.summaries))
	copy(out, b.summaries)
	return out
}

// Fetch returns the full document for slug through the active source's
// cache. In archive mode no I/O happens: the in-memory store answers or the
// call fails with domain.ErrSessionNotFound.
func (b *Browser) Fetch(ctx context.Context, slug string) (*domain.Document, error) {
	b.mu.RLock()
	mode := b.mode
	cache := b.cache
	b.mu.RUnlock()

	if mode == ModeDetecting {
		return nil, domain.ErrNotResolved
	}
	return cache.Get(ctx, slug)
}

// LoadArchive installs an ingested session set as the authoritative source.
// The mode becomes archive permanently, any prior store is replaced and the
// cache is rebuilt.
func (b *Browser) LoadArchive(summaries []domain.SessionSummary, documents map[string]*domain.Document) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.mode = ModeArchive
	b.source = nil
	b.summaries = sortedCopy(summaries)
	b.store = documents
	b.cache = b.newCacheLocked()
}

// newCacheLocked builds the cache for the current mode. Callers hold b.mu.
func (b *Browser) newCacheLocked() *SessionCache {
	if b.mode == ModeArchive {
		store := b.store
		return NewSessionCache(func(_ context.Context, slug string) (*domain.Document, error) {
			if doc, ok := store[slug]; ok && doc != nil {
				return doc, nil
			}
			return nil, domain.SessionNotFound(slug)
		})
	}

	source := b.source
	return NewSessionCache(func(ctx context.Context, slug string) (*domain.Document, error) {
		if source == nil {
			return nil, domain.SessionNotFound(slug)
		}
		return source.Fetch(ctx, slug)
	})
}

func sortedCopy(summaries []domain.SessionSummary) []domain.SessionSummary {
	out := make([]domain.SessionSummary, len(summaries))
	copy(out, summaries)
	domain.SortSummaries(out)
	return out
}
