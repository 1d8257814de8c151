package handlers

import (
	"github.com/gomesdev1/portfolio-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type ProjectHandler struct {
	projectService ProjectServiceInterface
}

func NewProjectHandler(projectService ProjectServiceInterface) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// List returns every project. Projects have no is_active flag.
func (h *ProjectHandler) List(c *drift.Context) {
	projects, err := h.projectService.List(c.Request.Context())
	if err != nil {
		respondError(c, err, "project")
		return
	}

	_ = c.JSON(200, projects)
}

func (h *ProjectHandler) Featured(c *drift.Context) {
	projects, err := h.projectService.ListFeatured(c.Request.Context())
	if err != nil {
		respondError(c, err, "project")
		return
	}

	_ = c.JSON(200, projects)
}

func (h *ProjectHandler) Create(c *drift.Context) {
	var req dto.CreateProjectRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	project, err := h.projectService.Create(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "project")
		return
	}

	_ = c.JSON(201, project)
}

func (h *ProjectHandler) Update(c *drift.Context) {
	var req dto.UpdateProjectRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	project, err := h.projectService.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		respondError(c, err, "project")
		return
	}

	_ = c.JSON(200, project)
}
