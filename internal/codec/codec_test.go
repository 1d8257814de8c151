package codec

import (
	"errors"
	"testing"
	"time"

	"github.com/gomesdev1/portfolio-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func skillDoc(id primitive.ObjectID, now time.Time) bson.M {
	return bson.M{
		"_id":          id,
		"category":     bson.M{"pt": "Ferramentas", "en": "Tools"},
		"technologies": primitive.A{"Git", "Linux"},
		"order":        int32(3),
		"is_active":    true,
		"created_at":   primitive.NewDateTimeFromTime(now),
		"updated_at":   primitive.NewDateTimeFromTime(now),
	}
}

func TestStringifyIDs_Nested(t *testing.T) {
	top := primitive.NewObjectID()
	nested := primitive.NewObjectID()
	listed := primitive.NewObjectID()

	doc := bson.M{
		"_id":   top,
		"owner": bson.M{"ref": nested},
		"items": primitive.A{bson.M{"ref": listed}, "plain"},
		"pairs": primitive.D{{Key: "ref", Value: nested}},
		"count": 4,
	}

	out := StringifyIDs(doc).(primitive.M)

	assert.Equal(t, top.Hex(), out["_id"])
	assert.Equal(t, nested.Hex(), out["owner"].(primitive.M)["ref"])
	items := out["items"].(primitive.A)
	assert.Equal(t, listed.Hex(), items[0].(primitive.M)["ref"])
	assert.Equal(t, "plain", items[1])
	assert.Equal(t, nested.Hex(), out["pairs"].(primitive.D)[0].Value)
	assert.Equal(t, 4, out["count"])

	// input is left untouched
	assert.Equal(t, top, doc["_id"])
}

func TestDecode_Skill(t *testing.T) {
	id := primitive.NewObjectID()
	now := Timestamp(time.Now())

	skill, err := Decode[models.Skill](skillDoc(id, now))

	require.NoError(t, err)
	assert.Equal(t, id.Hex(), skill.ID)
	assert.Equal(t, models.Text("Ferramentas", "Tools"), skill.Category)
	assert.Equal(t, []string{"Git", "Linux"}, skill.Technologies)
	assert.Equal(t, 3, skill.Order)
	assert.True(t, skill.IsActive)
	assert.True(t, now.Equal(skill.CreatedAt))
}

func TestDecode_MissingField(t *testing.T) {
	doc := skillDoc(primitive.NewObjectID(), time.Now())
	delete(doc, "order")

	_, err := Decode[models.Skill](doc)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrShape))
	assert.Contains(t, err.Error(), `"order"`)
}

func TestDecode_BilingualMissingEN(t *testing.T) {
	doc := skillDoc(primitive.NewObjectID(), time.Now())
	doc["category"] = bson.M{"pt": "Backend"}

	_, err := Decode[models.Skill](doc)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrShape))
	assert.Contains(t, err.Error(), "category.en")
}

func TestDecode_WrongShape(t *testing.T) {
	doc := skillDoc(primitive.NewObjectID(), time.Now())
	doc["category"] = "Backend"

	_, err := Decode[models.Skill](doc)

	assert.True(t, errors.Is(err, ErrShape))
}

func TestDecode_OptionalProjectURLs(t *testing.T) {
	now := time.Now()
	doc := bson.M{
		"_id":          primitive.NewObjectID(),
		"title":        bson.M{"pt": "EM DESENVOLVIMENTO", "en": "IN DEVELOPMENT"},
		"description":  bson.M{"pt": "a", "en": "b"},
		"technologies": primitive.A{},
		"github_url":   nil,
		"status":       "placeholder",
		"featured":     false,
		"order":        int32(1),
		"created_at":   primitive.NewDateTimeFromTime(now),
		"updated_at":   primitive.NewDateTimeFromTime(now),
	}

	project, err := Decode[models.Project](doc)

	require.NoError(t, err)
	assert.Nil(t, project.GitHubURL)
	assert.Nil(t, project.LiveURL)
	assert.Equal(t, models.ProjectStatusPlaceholder, project.Status)
}

func TestEncodeNew_DropsIDAndStampsTimes(t *testing.T) {
	now := time.Date(2026, 1, 2, 3, 4, 5, 123456789, time.UTC)
	skill := models.Skill{
		ID:           "should-not-be-written",
		Category:     models.Text("Backend", "Backend"),
		Technologies: []string{"Go"},
		Order:        1,
		IsActive:     true,
	}

	doc, err := EncodeNew(skill, now)

	require.NoError(t, err)
	_, hasID := doc["_id"]
	assert.False(t, hasID)
	assert.Equal(t, Timestamp(now), doc["created_at"])
	assert.Equal(t, Timestamp(now), doc["updated_at"])
	assert.Equal(t, true, doc["is_active"])
}

func TestEncodeNew_EmptyIDOmitted(t *testing.T) {
	doc, err := EncodeNew(models.Goal{Goal: models.Text("a", "b")}, time.Now())

	require.NoError(t, err)
	_, hasID := doc["_id"]
	assert.False(t, hasID)
}

type testPatch struct {
	Category     *models.BilingualText `bson:"category"`
	Technologies *[]string             `bson:"technologies"`
	Order        *int                  `bson:"order"`
	IsActive     *bool                 `bson:"is_active"`
}

func TestEncodePatch_OnlySetFields(t *testing.T) {
	now := time.Now()
	techs := []string{"Go"}

	set, err := EncodePatch(testPatch{Technologies: &techs}, now)

	require.NoError(t, err)
	assert.Len(t, set, 2)
	assert.Equal(t, []string{"Go"}, set["technologies"])
	assert.Equal(t, Timestamp(now), set["updated_at"])
}

func TestEncodePatch_ExplicitZeroValuesWritten(t *testing.T) {
	zero := 0
	inactive := false
	empty := models.Text("", "")

	set, err := EncodePatch(&testPatch{Order: &zero, IsActive: &inactive, Category: &empty}, time.Now())

	require.NoError(t, err)
	assert.Equal(t, 0, set["order"])
	assert.Equal(t, false, set["is_active"])
	assert.Equal(t, empty, set["category"])
	_, hasTechs := set["technologies"]
	assert.False(t, hasTechs)
}

func TestEncodePatch_EmptyPatchRefreshesTimestamp(t *testing.T) {
	set, err := EncodePatch(testPatch{}, time.Now())

	require.NoError(t, err)
	assert.Len(t, set, 1)
	assert.Contains(t, set, "updated_at")
}

func TestEncodePatch_RejectsValueFields(t *testing.T) {
	_, err := EncodePatch(struct {
		Order int `bson:"order"`
	}{Order: 1}, time.Now())

	assert.True(t, errors.Is(err, ErrShape))
}
