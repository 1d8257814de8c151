package models

import "time"

type Skill struct {
	ID           string        `json:"id" bson:"_id,omitempty"`
	Category     BilingualText `json:"category" bson:"category"`
	Technologies []string      `json:"technologies" bson:"technologies"`
	Order        int           `json:"order" bson:"order"`
	IsActive     bool          `json:"is_active" bson:"is_active"`
	CreatedAt    time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at" bson:"updated_at"`
}
