package di

import (
	"finconf/config"
	"finconf/gateway/company_presentations_gateway"
	"finconf/gateway/fetch_presentation_gateway"
	"finconf/gateway/fetch_recent_presentations_gateway"
	"finconf/gateway/search_presentation_gateway"
	"finconf/gateway/sitemap_gateway"
	"finconf/usecase/company_presentations_usecase"
	"finconf/usecase/fetch_presentation_usecase"
	"finconf/usecase/fetch_recent_presentations_usecase"
	"finconf/usecase/search_presentation_usecase"
	"finconf/usecase/sitemap_usecase"

	"github.com/jackc/pgx/v5/pgxpool"
)

type ApplicationComponents struct {
	SearchPresentationsUsecase      *search_presentation_usecase.SearchPresentationsUsecase
	FetchPresentationUsecase        *fetch_presentation_usecase.FetchPresentationUsecase
	FetchRecentPresentationsUsecase *fetch_recent_presentations_usecase.FetchRecentPresentationsUsecase
	CompanyPresentationsUsecase     *company_presentations_usecase.CompanyPresentationsUsecase
	SitemapUsecase                  *sitemap_usecase.SitemapUsecase
}

func NewApplicationComponents(pool *pgxpool.Pool, cfg *config.Config) *ApplicationComponents {
	searchGatewayImpl := search_presentation_gateway.NewSearchPresentationGateway(pool)
	fetchGatewayImpl := fetch_presentation_gateway.NewFetchPresentationGateway(pool)
	recentGatewayImpl := fetch_recent_presentations_gateway.NewFetchRecentPresentationsGateway(pool)
	companyGatewayImpl := company_presentations_gateway.NewCompanyPresentationsGateway(pool)
	sitemapGatewayImpl := sitemap_gateway.NewSitemapGateway(pool)

	return &ApplicationComponents{
		SearchPresentationsUsecase:      search_presentation_usecase.NewSearchPresentationsUsecase(searchGatewayImpl),
		FetchPresentationUsecase:        fetch_presentation_usecase.NewFetchPresentationUsecase(fetchGatewayImpl),
		FetchRecentPresentationsUsecase: fetch_recent_presentations_usecase.NewFetchRecentPresentationsUsecase(recentGatewayImpl),
		CompanyPresentationsUsecase:     company_presentations_usecase.NewCompanyPresentationsUsecase(companyGatewayImpl),
		SitemapUsecase:                  sitemap_usecase.NewSitemapUsecase(sitemapGatewayImpl, cfg.Site.BaseURL),
	}
}
