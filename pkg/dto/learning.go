package dto

import "github.com/gomesdev1/portfolio-api/internal/models"

type CreateLearningItemRequest struct {
	Item  *models.BilingualText `json:"item" validate:"required"`
	Order int                   `json:"order"`
}

func (r CreateLearningItemRequest) ToLearningItem() models.LearningItem {
	return models.LearningItem{Item: *r.Item, Order: r.Order, IsActive: true}
}

type UpdateLearningItemRequest struct {
	Item     *models.BilingualText `json:"item,omitempty" bson:"item"`
	Order    *int                  `json:"order,omitempty" bson:"order"`
	IsActive *bool                 `json:"is_active,omitempty" bson:"is_active"`
}
