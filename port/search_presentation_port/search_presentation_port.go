package search_presentation_port

import (
	"context"

	"finconf/domain"
)

// SearchPresentationsPort defines the interface for the paginated
// search path. The find and the count run against the same filter; the
// usecase issues them concurrently.
type SearchPresentationsPort interface {
	SearchPresentations(ctx context.Context, q domain.SearchQuery, limit, offset int) ([]*domain.Presentation, error)
	CountPresentations(ctx context.Context, q domain.SearchQuery) (int, error)
}
