package rest

import (
	"fmt"
	"net/http"

	"finconf/config"
	"finconf/di"
	"finconf/domain"
	"finconf/usecase/company_presentations_usecase"
	"finconf/usecase/fetch_recent_presentations_usecase"
	"finconf/usecase/search_presentation_usecase"

	"github.com/labstack/echo/v4"
)

func registerPresentationRoutes(e *echo.Echo, container *di.ApplicationComponents, cfg *config.Config) {
	e.GET("/health", handleHealth)

	presentations := e.Group("/presentations")
	presentations.GET("/search", handleSearchPresentations(container, cfg))
	presentations.GET("/recent", handleRecentPresentations(container, cfg))
	presentations.GET("/company/:companyCode", handleCompanyPresentations(container))
	presentations.GET("/:id", handleGetPresentation(container))
}

func handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, HealthResponse{Status: "healthy"})
}

func handleSearchPresentations(container *di.ApplicationComponents, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		query := domain.NewSearchQuery(
			c.QueryParam("q"),
			c.QueryParam("companyCode"),
			c.QueryParam("companyName"),
			c.QueryParam("dateFrom"),
			c.QueryParam("dateTo"),
			c.QueryParam("type"),
		)

		out, err := container.SearchPresentationsUsecase.Execute(c.Request().Context(), search_presentation_usecase.SearchPresentationsInput{
			Query: query,
			Page:  queryParamInt(c, "page", 1),
			Limit: queryParamInt(c, "limit", search_presentation_usecase.DefaultLimit),
		})
		if err != nil {
			return handleError(c, err, "search_presentations")
		}

		// only successful responses are publicly cacheable
		c.Response().Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(cfg.Cache.SearchCacheExpiry.Seconds())))
		return c.JSON(http.StatusOK, out)
	}
}

func handleRecentPresentations(container *di.ApplicationComponents, cfg *config.Config) echo.HandlerFunc {
	return func(c echo.Context) error {
		// invalid type values fall through as "no filter"
		marketType, _ := domain.ParseMarketType(c.QueryParam("type"))

		out, err := container.FetchRecentPresentationsUsecase.Execute(c.Request().Context(), fetch_recent_presentations_usecase.FetchRecentPresentationsInput{
			Limit:      queryParamInt(c, "limit", fetch_recent_presentations_usecase.DefaultLimit),
			MarketType: marketType,
		})
		if err != nil {
			return handleError(c, err, "recent_presentations")
		}

		c.Response().Header().Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(cfg.Cache.SearchCacheExpiry.Seconds())))
		return c.JSON(http.StatusOK, out)
	}
}

func handleCompanyPresentations(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		out, err := container.CompanyPresentationsUsecase.Execute(c.Request().Context(), company_presentations_usecase.CompanyPresentationsInput{
			CompanyCode: c.Param("companyCode"),
			Page:        queryParamInt(c, "page", 1),
			Limit:       queryParamInt(c, "limit", company_presentations_usecase.DefaultLimit),
		})
		if err != nil {
			return handleError(c, err, "company_presentations")
		}

		return c.JSON(http.StatusOK, out)
	}
}

func handleGetPresentation(container *di.ApplicationComponents) echo.HandlerFunc {
	return func(c echo.Context) error {
		presentation, err := container.FetchPresentationUsecase.Execute(c.Request().Context(), c.Param("id"))
		if err != nil {
			return handleError(c, err, "get_presentation")
		}

		return c.JSON(http.StatusOK, PresentationResponse{Data: presentation})
	}
}
