package dto

import "github.com/gomesdev1/portfolio-api/internal/models"

// UpdatePersonalInfoRequest is a partial update: nil fields are left untouched.
type UpdatePersonalInfoRequest struct {
	Name        *string               `json:"name,omitempty" bson:"name"`
	Title       *models.BilingualText `json:"title,omitempty" bson:"title"`
	Subtitle    *models.BilingualText `json:"subtitle,omitempty" bson:"subtitle"`
	Description *models.BilingualText `json:"description,omitempty" bson:"description"`
	Location    *string               `json:"location,omitempty" bson:"location"`
	Status      *models.BilingualText `json:"status,omitempty" bson:"status"`
	Contact     *models.ContactInfo   `json:"contact,omitempty" bson:"contact"`
}
