package handlers

import (
	"github.com/gomesdev1/portfolio-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type EducationHandler struct {
	educationService EducationServiceInterface
}

func NewEducationHandler(educationService EducationServiceInterface) *EducationHandler {
	return &EducationHandler{educationService: educationService}
}

func (h *EducationHandler) List(c *drift.Context) {
	education, err := h.educationService.ListActive(c.Request.Context())
	if err != nil {
		respondError(c, err, "education")
		return
	}

	_ = c.JSON(200, education)
}

func (h *EducationHandler) Create(c *drift.Context) {
	var req dto.CreateEducationRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	education, err := h.educationService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "education")
		return
	}

	_ = c.JSON(201, education)
}

func (h *EducationHandler) Update(c *drift.Context) {
	var req dto.UpdateEducationRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	education, err := h.educationService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "education")
		return
	}

	_ = c.JSON(200, education)
}
