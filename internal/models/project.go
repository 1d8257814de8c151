package models

import "time"

// Project statuses
const (
	ProjectStatusActive      = "active"
	ProjectStatusDevelopment = "development"
	ProjectStatusPlaceholder = "placeholder"
)

// Project has no is_active flag: every stored project is listed.
type Project struct {
	ID           string        `json:"id" bson:"_id,omitempty"`
	Title        BilingualText `json:"title" bson:"title"`
	Description  BilingualText `json:"description" bson:"description"`
	Technologies []string      `json:"technologies" bson:"technologies"`
	GitHubURL    *string       `json:"github_url" bson:"github_url"`
	LiveURL      *string       `json:"live_url" bson:"live_url"`
	ImageURL     *string       `json:"image_url" bson:"image_url"`
	Status       string        `json:"status" bson:"status"`
	Featured     bool          `json:"featured" bson:"featured"`
	Order        int           `json:"order" bson:"order"`
	CreatedAt    time.Time     `json:"created_at" bson:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at" bson:"updated_at"`
}
