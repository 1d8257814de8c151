package dto

import "github.com/gomesdev1/portfolio-api/internal/models"

type CreateGoalRequest struct {
	Goal  *models.BilingualText `json:"goal" validate:"required"`
	Order int                   `json:"order"`
}

func (r CreateGoalRequest) ToGoal() models.Goal {
	return models.Goal{Goal: *r.Goal, Order: r.Order, IsActive: true}
}

type UpdateGoalRequest struct {
	Goal     *models.BilingualText `json:"goal,omitempty" bson:"goal"`
	Order    *int                  `json:"order,omitempty" bson:"order"`
	IsActive *bool                 `json:"is_active,omitempty" bson:"is_active"`
}
