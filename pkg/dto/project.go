package dto

import "github.com/gomesdev1/portfolio-api/internal/models"

type CreateProjectRequest struct {
	Title        *models.BilingualText `json:"title" validate:"required"`
	Description  *models.BilingualText `json:"description" validate:"required"`
	Technologies []string              `json:"technologies"`
	GitHubURL    *string               `json:"github_url,omitempty"`
	LiveURL      *string               `json:"live_url,omitempty"`
	ImageURL     *string               `json:"image_url,omitempty"`
	Status       string                `json:"status,omitempty" validate:"omitempty,oneof=active development placeholder"`
	Featured     bool                  `json:"featured"`
	Order        int                   `json:"order"`
}

func (r CreateProjectRequest) ToProject() models.Project {
	technologies := r.Technologies
	if technologies == nil {
		technologies = []string{}
	}
	status := r.Status
	if status == "" {
		status = models.ProjectStatusDevelopment
	}
	return models.Project{
		Title:        *r.Title,
		Description:  *r.Description,
		Technologies: technologies,
		GitHubURL:    r.GitHubURL,
		LiveURL:      r.LiveURL,
		ImageURL:     r.ImageURL,
		Status:       status,
		Featured:     r.Featured,
		Order:        r.Order,
	}
}

type UpdateProjectRequest struct {
	Title        *models.BilingualText `json:"title,omitempty" bson:"title"`
	Description  *models.BilingualText `json:"description,omitempty" bson:"description"`
	Technologies *[]string             `json:"technologies,omitempty" bson:"technologies"`
	GitHubURL    *string               `json:"github_url,omitempty" bson:"github_url"`
	LiveURL      *string               `json:"live_url,omitempty" bson:"live_url"`
	ImageURL     *string               `json:"image_url,omitempty" bson:"image_url"`
	Status       *string               `json:"status,omitempty" bson:"status" validate:"omitempty,oneof=active development placeholder"`
	Featured     *bool                 `json:"featured,omitempty" bson:"featured"`
	Order        *int                  `json:"order,omitempty" bson:"order"`
}
