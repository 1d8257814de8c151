package dto

import "github.com/gomesdev1/portfolio-api/internal/models"

type MessageResponse struct {
	Message string `json:"message"`
}

type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

type PortfolioResponse struct {
	Success bool             `json:"success"`
	Data    models.Portfolio `json:"data"`
}
