package sitemap_port

import (
	"context"

	"finconf/domain"
)

// SitemapPort defines the store access the sitemap generator needs:
// the total for chunk arithmetic, one bounded chunk per request, and
// the raw per-record company activity for deduplication.
type SitemapPort interface {
	CountAllPresentations(ctx context.Context) (int, error)
	FetchSitemapChunk(ctx context.Context, limit, offset int) ([]domain.SitemapRecord, error)
	FetchCompanyActivity(ctx context.Context) ([]domain.CompanyActivity, error)
}
