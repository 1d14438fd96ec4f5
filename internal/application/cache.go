package application

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/apexworks/pitwall/internal/domain"
)

// FetchFunc loads one full document from the active source.
type FetchFunc func(ctx context.Context, slug string) (*domain.Document, error)

// SessionCache memoizes resolved documents per slug and collapses concurrent
// requests for the same slug into a single underlying fetch. A failed fetch
// leaves no entry behind, so the next call starts fresh. The cache lives
// exactly as long as one source mode: mode switches build a new one.
type SessionCache struct {
	fetch  FetchFunc
	flight singleflight.Group

	mu   sync.RWMutex
	docs map[string]*domain.Document
}

func NewSessionCache(fetch FetchFunc) *SessionCache {
	return &SessionCache{
		fetch: fetch,
		docs:  make(map[string]*domain.Document),
	}
}

// Get returns the document for slug, fetching it at most once per settled
// result. Concurrent callers for the same slug share the in-flight fetch.
func (c *SessionCache) Get(ctx context.Context, slug string) (*domain.Document, error) {
	c.mu.RLock()
	doc := c.docs[slug]
	c.mu.RUnlock()
	if doc != nil {
		return doc, nil
	}

	v, err, _ := c.flight.Do(slug, func() (interface{}, error) {
		// A caller that lost the race to a just-settled fetch reads the
		// stored result instead of fetching again.
		c.mu.RLock()
		cached := c.docs[slug]
		c.mu.RUnlock()
		if cached != nil {
			return cached, nil
		}

		fetched, err := c.fetch(ctx, slug)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.docs[slug] = fetched
		c.mu.Unlock()
		return fetched, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*domain.Document), nil
}

// Len reports the number of resolved entries, for diagnostics.
func (c *SessionCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.docs)
}
