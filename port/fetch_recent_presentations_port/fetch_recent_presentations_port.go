package fetch_recent_presentations_port

import (
	"context"

	"finconf/domain"
)

// FetchRecentPresentationsPort defines the interface for the
// newest-first listing on the home page.
type FetchRecentPresentationsPort interface {
	// FetchRecentPresentations restricts to one market type when
	// marketType is non-empty.
	FetchRecentPresentations(ctx context.Context, marketType domain.MarketType, limit int) ([]*domain.Presentation, error)
}
