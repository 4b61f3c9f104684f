package rest

import "finconf/domain"

type ErrorResponse struct {
	Error string `json:"error"`
}

type PresentationResponse struct {
	Data *domain.Presentation `json:"data"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
