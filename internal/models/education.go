package models

import "time"

type Education struct {
	ID          string        `json:"id" bson:"_id,omitempty"`
	Institution string        `json:"institution" bson:"institution"`
	Degree      BilingualText `json:"degree" bson:"degree"`
	Period      string        `json:"period" bson:"period"`
	Status      BilingualText `json:"status" bson:"status"`
	Order       int           `json:"order" bson:"order"`
	IsActive    bool          `json:"is_active" bson:"is_active"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" bson:"updated_at"`
}
