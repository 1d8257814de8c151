package dto

import "github.com/gomesdev1/portfolio-api/internal/models"

type CreateEducationRequest struct {
	Institution string                `json:"institution" validate:"required"`
	Degree      *models.BilingualText `json:"degree" validate:"required"`
	Period      string                `json:"period" validate:"required"`
	Status      *models.BilingualText `json:"status" validate:"required"`
	Order       int                   `json:"order"`
}

func (r CreateEducationRequest) ToEducation() models.Education {
	return models.Education{
		Institution: r.Institution,
		Degree:      *r.Degree,
		Period:      r.Period,
		Status:      *r.Status,
		Order:       r.Order,
		IsActive:    true,
	}
}

type UpdateEducationRequest struct {
	Institution *string               `json:"institution,omitempty" bson:"institution"`
	Degree      *models.BilingualText `json:"degree,omitempty" bson:"degree"`
	Period      *string               `json:"period,omitempty" bson:"period"`
	Status      *models.BilingualText `json:"status,omitempty" bson:"status"`
	Order       *int                  `json:"order,omitempty" bson:"order"`
	IsActive    *bool                 `json:"is_active,omitempty" bson:"is_active"`
}
