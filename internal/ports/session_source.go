package ports

import (
	"context"

	"github.com/apexworks/pitwall/internal/domain"
)

// SessionSource is the contract every backing origin implements: list the
// session summaries it knows about, fetch one full document by slug. Fetch
// reports a miss by wrapping domain.ErrSessionNotFound.
type SessionSource interface {
	List(ctx context.Context) ([]domain.SessionSummary, error)
	Fetch(ctx context.Context, slug string) (*domain.Document, error)
}
