package models

import "time"

// LearningItem is an entry of the "currently learning" list.
type LearningItem struct {
	ID        string        `json:"id" bson:"_id,omitempty"`
	Item      BilingualText `json:"item" bson:"item"`
	Order     int           `json:"order" bson:"order"`
	IsActive  bool          `json:"is_active" bson:"is_active"`
	CreatedAt time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt time.Time     `json:"updated_at" bson:"updated_at"`
}
