package handlers

import (
	"github.com/gomesdev1/portfolio-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type GoalHandler struct {
	goalService GoalServiceInterface
}

func NewGoalHandler(goalService GoalServiceInterface) *GoalHandler {
	return &GoalHandler{goalService: goalService}
}

func (h *GoalHandler) List(c *drift.Context) {
	goals, err := h.goalService.ListActive(c.Request.Context())
	if err != nil {
		respondError(c, err, "goal")
		return
	}

	_ = c.JSON(200, goals)
}

func (h *GoalHandler) Create(c *drift.Context) {
	var req dto.CreateGoalRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	goal, err := h.goalService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "goal")
		return
	}

	_ = c.JSON(201, goal)
}

func (h *GoalHandler) Update(c *drift.Context) {
	var req dto.UpdateGoalRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	goal, err := h.goalService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "goal")
		return
	}

	_ = c.JSON(200, goal)
}
