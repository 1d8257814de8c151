package handlers

import (
	"github.com/gomesdev1/portfolio-api/pkg/dto"
	"github.com/m1z23r/drift/pkg/drift"
)

type PersonalInfoHandler struct {
	personalInfoService PersonalInfoServiceInterface
}

func NewPersonalInfoHandler(personalInfoService PersonalInfoServiceInterface) *PersonalInfoHandler {
	return &PersonalInfoHandler{personalInfoService: personalInfoService}
}

func (h *PersonalInfoHandler) Get(c *drift.Context) {
	info, err := h.personalInfoService.Get(c.Request.Context())
	if err != nil {
		respondError(c, err, "personal info")
		return
	}

	_ = c.JSON(200, info)
}

func (h *PersonalInfoHandler) Update(c *drift.Context) {
	var req dto.UpdatePersonalInfoRequest
	if err := c.BindJSON(&req); err != nil {
		c.BadRequest("invalid request body")
		return
	}

	info, err := h.personalInfoService.Update(c.Request.Context(), req)
	if err != nil {
		respondError(c, err, "personal info")
		return
	}

	_ = c.JSON(200, info)
}
