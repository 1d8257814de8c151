package models

// Portfolio is the combined snapshot of every collection.
type Portfolio struct {
	PersonalInfo    PersonalInfo   `json:"personal_info"`
	Skills          []Skill        `json:"skills"`
	Education       []Education    `json:"education"`
	Projects        []Project      `json:"projects"`
	Goals           []Goal         `json:"goals"`
	CurrentLearning []LearningItem `json:"current_learning"`
}
