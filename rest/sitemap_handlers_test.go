package rest

import (
	"net/http"
	"strings"
	"testing"

	"finconf/domain"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sitemapCacheControl = "public, max-age=86400, s-maxage=86400"

func TestHandleSitemapIndex(t *testing.T) {
	store := &fakeStore{total: 15000}
	handler := handleSitemapIndex(testComponents(store), sitemapCacheControl)

	c, rec := testRequest(http.MethodGet, "/sitemap-index.xml")

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/xml", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, sitemapCacheControl, rec.Header().Get("Cache-Control"))
	assert.Contains(t, rec.Body.String(), "<sitemapindex")
	assert.Contains(t, rec.Body.String(), "/presentations-sitemap/1")
	assert.NotContains(t, rec.Body.String(), "/presentations-sitemap/2")
}

func TestHandleSitemapIndex_StoreFailure(t *testing.T) {
	store := &fakeStore{err: assert.AnError}
	handler := handleSitemapIndex(testComponents(store), sitemapCacheControl)

	c, rec := testRequest(http.MethodGet, "/sitemap-index.xml")

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal server error"}`, rec.Body.String())
}

func TestHandleStaticSitemap(t *testing.T) {
	handler := handleStaticSitemap(testComponents(&fakeStore{}), sitemapCacheControl)

	c, rec := testRequest(http.MethodGet, "/sitemap.xml")

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<loc>https://finmoconf.diveinvest.net/</loc>")
}

func TestHandleCompaniesSitemap(t *testing.T) {
	store := &fakeStore{presentations: []*domain.Presentation{samplePresentation(), samplePresentation()}}
	handler := handleCompaniesSitemap(testComponents(store), sitemapCacheControl)

	c, rec := testRequest(http.MethodGet, "/companies-sitemap.xml")

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	// both records are for the same company
	body := rec.Body.String()
	assert.Equal(t, 1, strings.Count(body, "/company/2330"))
}

func TestHandlePresentationsSitemap(t *testing.T) {
	p := samplePresentation()
	store := &fakeStore{presentations: []*domain.Presentation{p}}
	handler := handlePresentationsSitemap(testComponents(store), sitemapCacheControl)

	c, rec := testRequest(http.MethodGet, "/presentations-sitemap/0")
	c.SetParamNames("page")
	c.SetParamValues("0")

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "/presentation/"+p.ID.String())
}

func TestHandlePresentationsSitemap_BadPageFallsBack(t *testing.T) {
	store := &fakeStore{}
	handler := handlePresentationsSitemap(testComponents(store), sitemapCacheControl)

	c, rec := testRequest(http.MethodGet, "/presentations-sitemap/abc")
	c.SetParamNames("page")
	c.SetParamValues("abc")

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<urlset")
}

func TestHandleRobots(t *testing.T) {
	handler := handleRobots(testComponents(&fakeStore{}))

	c, rec := testRequest(http.MethodGet, "/robots.txt")

	require.NoError(t, handler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Sitemap: https://finmoconf.diveinvest.net/sitemap-index.xml")
}
