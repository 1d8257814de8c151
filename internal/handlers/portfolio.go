package handlers

import (
	"log"

	"github.com/gomesdev1/portfolio-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type PortfolioHandler struct {
	portfolioService PortfolioServiceInterface
}

func NewPortfolioHandler(portfolioService PortfolioServiceInterface) *PortfolioHandler {
	return &PortfolioHandler{portfolioService: portfolioService}
}

func (h *PortfolioHandler) Get(c *drift.Context) {
	portfolio, err := h.portfolioService.Snapshot(c.Request.Context())
	if err != nil {
		respondError(c, err, "personal info")
		return
	}

	_ = c.JSON(200, dto.PortfolioResponse{Success: true, Data: *portfolio})
}

type HealthHandler struct {
	db HealthChecker
}

func NewHealthHandler(db HealthChecker) *HealthHandler {
	return &HealthHandler{db: db}
}

func (h *HealthHandler) Check(c *drift.Context) {
	if err := h.db.Ping(c.Request.Context()); err != nil {
		log.Printf("health check failed: %v", err)
		_ = c.JSON(503, dto.HealthResponse{Status: "unhealthy", Database: "disconnected"})
		return
	}

	_ = c.JSON(200, dto.HealthResponse{Status: "healthy", Database: "connected"})
}
