package dto

import "github.com/gomesdev1/portfolio-api/internal/models"

type CreateSkillRequest struct {
	Category     *models.BilingualText `json:"category" validate:"required"`
	Technologies []string              `json:"technologies" validate:"required"`
	Order        int                   `json:"order"`
}

func (r CreateSkillRequest) ToSkill() models.Skill {
	return models.Skill{
		Category:     *r.Category,
		Technologies: r.Technologies,
		Order:        r.Order,
		IsActive:     true,
	}
}

type UpdateSkillRequest struct {
	Category     *models.BilingualText `json:"category,omitempty" bson:"category"`
	Technologies *[]string             `json:"technologies,omitempty" bson:"technologies"`
	Order        *int                  `json:"order,omitempty" bson:"order"`
	IsActive     *bool                 `json:"is_active,omitempty" bson:"is_active"`
}
