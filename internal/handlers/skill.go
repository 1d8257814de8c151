package handlers

import (
	"github.com/gomesdev1/portfolio-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type SkillHandler struct {
	skillService SkillServiceInterface
}

func NewSkillHandler(skillService SkillServiceInterface) *SkillHandler {
	return &SkillHandler{skillService: skillService}
}

func (h *SkillHandler) List(c *drift.Context) {
	skills, err := h.skillService.ListActive(c.Request.Context())
	if err != nil {
		respondError(c, err, "skill")
		return
	}

	_ = c.JSON(200, skills)
}

func (h *SkillHandler) Create(c *drift.Context) {
	var req dto.CreateSkillRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	skill, err := h.skillService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "skill")
		return
	}

	_ = c.JSON(201, skill)
}

func (h *SkillHandler) Update(c *drift.Context) {
	var req dto.UpdateSkillRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	skill, err := h.skillService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "skill")
		return
	}

	_ = c.JSON(200, skill)
}

func (h *SkillHandler) Delete(c *drift.Context) {
	if err := h.skillService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err, "skill")
		return
	}

	_ = c.JSON(200, dto.MessageResponse{Message: "Skill deleted successfully"})
}
