package database

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	PersonalInfoCollection    = "personal_info"
	SkillsCollection          = "skills"
	EducationCollection       = "education"
	ProjectsCollection        = "projects"
	GoalsCollection           = "goals"
	CurrentLearningCollection = "current_learning"
)

// Collections lists every collection the API owns, in seeding order.
var Collections = []string{
	PersonalInfoCollection,
	SkillsCollection,
	EducationCollection,
	ProjectsCollection,
	GoalsCollection,
	CurrentLearningCollection,
}

var activeOrder = mongo.IndexModel{
	Keys: bson.D{{Key: "is_active", Value: 1}, {Key: "order", Value: 1}},
}

var indexes = map[string][]mongo.IndexModel{
	SkillsCollection:          {activeOrder},
	EducationCollection:       {activeOrder},
	GoalsCollection:           {activeOrder},
	CurrentLearningCollection: {activeOrder},
	ProjectsCollection: {
		{Keys: bson.D{{Key: "order", Value: 1}}},
		{Keys: bson.D{{Key: "featured", Value: 1}, {Key: "order", Value: 1}}},
	},
}

// EnsureIndexes creates the filter/sort indexes backing the list reads.
func (db *DB) EnsureIndexes(ctx context.Context) error {
	for _, name := range Collections {
		models, ok := indexes[name]
		if !ok {
			continue
		}
		if _, err := db.Database.Collection(name).Indexes().CreateMany(ctx, models); err != nil {
			return fmt.Errorf("index creation on %s failed: %w", name, err)
		}
	}
	return nil
}
