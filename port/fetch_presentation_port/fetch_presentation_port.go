package fetch_presentation_port

import (
	"context"

	"finconf/domain"

	"github.com/google/uuid"
)

// FetchPresentationPort defines the interface for single-record lookup.
type FetchPresentationPort interface {
	// FetchPresentationByID returns domain.ErrPresentationNotFound when
	// no record matches.
	FetchPresentationByID(ctx context.Context, id uuid.UUID) (*domain.Presentation, error)
}
