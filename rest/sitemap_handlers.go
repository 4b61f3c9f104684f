package rest

import (
	"fmt"
	"net/http"

	"finconf/config"
	"finconf/di"

	"github.com/labstack/echo/v4"
)

func registerSitemapRoutes(e *echo.Echo, container *di.ApplicationComponents, cfg *config.Config) {
	cacheControl := fmt.Sprintf("public, max-age=%d, s-maxage=%d",
		int(cfg.Cache.SitemapCacheExpiry.Seconds()),
		int(cfg.Cache.SitemapCacheExpiry.Seconds()))

	e.GET("/sitemap-index.xml", handleSitemapIndex(container, cacheControl))
	e.GET("/sitemap.xml", handleStaticSitemap(container, cacheControl))
	e.GET("/companies-sitemap.xml", handleCompaniesSitemap(container, cacheControl))
	e.GET("/presentations-sitemap/:page", handlePresentationsSitemap(container, cacheControl))
	e.GET("/robots.txt", handleRobots(container))
}

func handleSitemapIndex(container *di.ApplicationComponents, cacheControl string) echo.HandlerFunc {
	return func(c echo.Context) error {
		xml, err := container.SitemapUsecase.BuildSitemapIndex(c.Request().Context())
		if err != nil {
			return handleError(c, err, "sitemap_index")
		}

		c.Response().Header().Set("Cache-Control", cacheControl)
		return c.Blob(http.StatusOK, "application/xml", []byte(xml))
	}
}

func handleStaticSitemap(container *di.ApplicationComponents, cacheControl string) echo.HandlerFunc {
	return func(c echo.Context) error {
		c.Response().Header().Set("Cache-Control", cacheControl)
		return c.Blob(http.StatusOK, "application/xml", []byte(container.SitemapUsecase.BuildStaticSitemap()))
	}
}

func handleCompaniesSitemap(container *di.ApplicationComponents, cacheControl string) echo.HandlerFunc {
	return func(c echo.Context) error {
		xml, err := container.SitemapUsecase.BuildCompaniesSitemap(c.Request().Context())
		if err != nil {
			return handleError(c, err, "companies_sitemap")
		}

		c.Response().Header().Set("Cache-Control", cacheControl)
		return c.Blob(http.StatusOK, "application/xml", []byte(xml))
	}
}

func handlePresentationsSitemap(container *di.ApplicationComponents, cacheControl string) echo.HandlerFunc {
	return func(c echo.Context) error {
		// unparseable or negative page indexes fall back to chunk 0
		page := pathParamInt(c, "page", 0)

		xml, err := container.SitemapUsecase.BuildPresentationChunk(c.Request().Context(), page)
		if err != nil {
			return handleError(c, err, "presentations_sitemap")
		}

		c.Response().Header().Set("Cache-Control", cacheControl)
		return c.Blob(http.StatusOK, "application/xml", []byte(xml))
	}
}

func handleRobots(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		return c.String(http.StatusOK, container.SitemapUsecase.BuildRobotsTxt())
	}
}
