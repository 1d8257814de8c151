package models

import "time"

type ContactInfo struct {
	Email    string `json:"email" bson:"email" validate:"required"`
	LinkedIn string `json:"linkedin" bson:"linkedin" validate:"required"`
	GitHub   string `json:"github" bson:"github" validate:"required"`
}

// PersonalInfo is the singleton biography document.
type PersonalInfo struct {
	ID          string        `json:"id" bson:"_id,omitempty"`
	Name        string        `json:"name" bson:"name"`
	Title       BilingualText `json:"title" bson:"title"`
	Subtitle    BilingualText `json:"subtitle" bson:"subtitle"`
	Description BilingualText `json:"description" bson:"description"`
	Location    string        `json:"location" bson:"location"`
	Status      BilingualText `json:"status" bson:"status"`
	Contact     ContactInfo   `json:"contact" bson:"contact"`
	CreatedAt   time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at" bson:"updated_at"`
}
