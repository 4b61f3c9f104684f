package sitemap_usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"finconf/domain"
	"finconf/port/sitemap_port"
	"finconf/utils/logger"
)

const (
	// PresentationChunkSize bounds one presentation sitemap file well
	// under the 50k-URL protocol limit.
	PresentationChunkSize = 10000

	// indexEntryLimit is the protocol cap on entries in a sitemap
	// index file.
	indexEntryLimit = 50000
)

// SitemapUsecase assembles the sitemap XML family: the index, the
// static sitemap, the deduplicated companies sitemap and the
// fixed-size presentation chunks.
type SitemapUsecase struct {
	gateway sitemap_port.SitemapPort
	baseURL string
}

func NewSitemapUsecase(gateway sitemap_port.SitemapPort, baseURL string) *SitemapUsecase {
	return &SitemapUsecase{
		gateway: gateway,
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// ChunkCount returns how many presentation chunks the index must list
// for a collection of the given size.
func ChunkCount(total int) int {
	count := (total + PresentationChunkSize - 1) / PresentationChunkSize
	if count > indexEntryLimit {
		count = indexEntryLimit
	}
	return count
}

// BuildSitemapIndex lists the static sitemap, the companies sitemap
// and every presentation chunk.
func (u *SitemapUsecase) BuildSitemapIndex(ctx context.Context) (string, error) {
	total, err := u.gateway.CountAllPresentations(ctx)
	if err != nil {
		logger.SafeErrorContext(ctx, "failed to count presentations for sitemap index", "error", err)
		return "", err
	}

	logger.SafeInfoContext(ctx, "building sitemap index", "total", total, "chunks", ChunkCount(total))

	lastmod := time.Now().UTC().Format(time.RFC3339)

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<sitemapindex xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	writeIndexEntry(&b, u.baseURL+"/sitemap.xml", lastmod)
	writeIndexEntry(&b, u.baseURL+"/companies-sitemap.xml", lastmod)
	for i := 0; i < ChunkCount(total); i++ {
		writeIndexEntry(&b, fmt.Sprintf("%s/presentations-sitemap/%d", u.baseURL, i), lastmod)
	}
	b.WriteString(`</sitemapindex>` + "\n")

	return b.String(), nil
}

// BuildPresentationChunk returns the urlset for one zero-based chunk.
// A chunk past the end of the collection is a valid, empty urlset.
func (u *SitemapUsecase) BuildPresentationChunk(ctx context.Context, page int) (string, error) {
	if page < 0 {
		page = 0
	}

	records, err := u.gateway.FetchSitemapChunk(ctx, PresentationChunkSize, page*PresentationChunkSize)
	if err != nil {
		logger.SafeErrorContext(ctx, "failed to fetch sitemap chunk", "error", err, "page", page)
		return "", err
	}

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	for _, rec := range records {
		writeURLEntry(&b,
			fmt.Sprintf("%s/presentation/%s", u.baseURL, rec.ID),
			rec.LastModified().UTC().Format(time.RFC3339),
			"monthly", "0.6")
	}
	b.WriteString(`</urlset>` + "\n")

	return b.String(), nil
}

// BuildCompaniesSitemap emits one URL per distinct company, stamped
// with the latest activity date seen for that company.
func (u *SitemapUsecase) BuildCompaniesSitemap(ctx context.Context) (string, error) {
	activity, err := u.gateway.FetchCompanyActivity(ctx)
	if err != nil {
		logger.SafeErrorContext(ctx, "failed to fetch company activity for sitemap", "error", err)
		return "", err
	}

	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	for _, entry := range domain.DedupCompanies(activity) {
		writeURLEntry(&b,
			fmt.Sprintf("%s/company/%s", u.baseURL, entry.CompanyCode),
			entry.LastUpdate.UTC().Format(time.RFC3339),
			"weekly", "0.8")
	}
	b.WriteString(`</urlset>` + "\n")

	return b.String(), nil
}

// BuildStaticSitemap covers the fixed pages, currently the site root.
func (u *SitemapUsecase) BuildStaticSitemap() string {
	var b strings.Builder
	b.WriteString(`<?xml version="1.0" encoding="UTF-8"?>` + "\n")
	b.WriteString(`<urlset xmlns="http://www.sitemaps.org/schemas/sitemap/0.9">` + "\n")
	writeURLEntry(&b, u.baseURL+"/", time.Now().UTC().Format(time.RFC3339), "daily", "1.0")
	b.WriteString(`</urlset>` + "\n")
	return b.String()
}

// BuildRobotsTxt points crawlers at the sitemap index.
func (u *SitemapUsecase) BuildRobotsTxt() string {
	var b strings.Builder
	b.WriteString("User-agent: *\n")
	b.WriteString("Allow: /\n")
	b.WriteString("Disallow: /api/\n")
	b.WriteString("Disallow: /admin/\n")
	b.WriteString("\n")
	b.WriteString("Sitemap: " + u.baseURL + "/sitemap-index.xml\n")
	return b.String()
}

func writeIndexEntry(b *strings.Builder, loc, lastmod string) {
	b.WriteString("  <sitemap>\n")
	b.WriteString("    <loc>" + escapeXML(loc) + "</loc>\n")
	b.WriteString("    <lastmod>" + lastmod + "</lastmod>\n")
	b.WriteString("  </sitemap>\n")
}

func writeURLEntry(b *strings.Builder, loc, lastmod, changefreq, priority string) {
	b.WriteString("  <url>\n")
	b.WriteString("    <loc>" + escapeXML(loc) + "</loc>\n")
	b.WriteString("    <lastmod>" + lastmod + "</lastmod>\n")
	b.WriteString("    <changefreq>" + changefreq + "</changefreq>\n")
	b.WriteString("    <priority>" + priority + "</priority>\n")
	b.WriteString("  </url>\n")
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

func escapeXML(s string) string {
	return xmlEscaper.Replace(s)
}
