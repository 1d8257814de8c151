package handlers

import (
	"github.com/gomesdev1/portfolio-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type LearningHandler struct {
	learningService LearningServiceInterface
}

func NewLearningHandler(learningService LearningServiceInterface) *LearningHandler {
	return &LearningHandler{learningService: learningService}
}

func (h *LearningHandler) List(c *drift.Context) {
	items, err := h.learningService.ListActive(c.Request.Context())
	if err != nil {
		respondError(c, err, "learning item")
		return
	}

	_ = c.JSON(200, items)
}

func (h *LearningHandler) Create(c *drift.Context) {
	var req dto.CreateLearningItemRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	item, err := h.learningService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "learning item")
		return
	}

	_ = c.JSON(201, item)
}

func (h *LearningHandler) Update(c *drift.Context) {
	var req dto.UpdateLearningItemRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	item, err := h.learningService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "learning item")
		return
	}

	_ = c.JSON(200, item)
}
