package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"github.com/noah-isme/admissions-crm-api/internal/models"
)

func TestBuildFilter(t *testing.T) {
	filter := BuildFilter(models.StudentFilter{Country: "USA", Status: "Applying", Tags: []string{"STEM", "Athlete"}})

	assert.Equal(t, bson.D{
		{Key: "country", Value: "USA"},
		{Key: "applicationStatus", Value: "Applying"},
		{Key: "tags", Value: bson.D{{Key: "$in", Value: []string{"STEM", "Athlete"}}}},
	}, filter)
	assert.Empty(t, BuildFilter(models.StudentFilter{}))
}

func TestBuildSearchFilterPrefixOnlyForName(t *testing.T) {
	byName := BuildSearchFilter(models.StudentQuery{Sort: models.SortByName, Prefix: "Al"})
	require.Len(t, byName, 1)
	assert.Equal(t, "name", byName[0].Key)
	assert.Equal(t, bson.D{{Key: "$gte", Value: "Al"}, {Key: "$lte", Value: "Al\uf8ff"}}, byName[0].Value)

	byActivity := BuildSearchFilter(models.StudentQuery{Sort: models.SortByLastActive, Prefix: "Al"})
	assert.Empty(t, byActivity)
}

func TestBuildSearchFilterKeyset(t *testing.T) {
	seen := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	after := &models.Student{ID: "s20", Name: "Mia", LastActive: seen}

	filter := BuildSearchFilter(models.StudentQuery{Sort: models.SortByLastActive, After: after})
	require.Len(t, filter, 1)
	assert.Equal(t, "$or", filter[0].Key)
	assert.Equal(t, bson.A{
		bson.D{{Key: "lastActive", Value: bson.D{{Key: "$gt", Value: seen}}}},
		bson.D{{Key: "lastActive", Value: seen}, {Key: "_id", Value: bson.D{{Key: "$gt", Value: "s20"}}}},
	}, filter[0].Value)
}

func studentDoc(id, name, country, status string) bson.D {
	return bson.D{
		{Key: "_id", Value: id},
		{Key: "name", Value: name},
		{Key: "country", Value: country},
		{Key: "applicationStatus", Value: status},
		{Key: "tags", Value: bson.A{"STEM"}},
	}
}

func TestStudentRepositoryMongo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("search decodes page", func(mt *mtest.T) {
		repo := NewStudentRepository(mt.DB)
		ns := mt.DB.Name() + "." + CollectionStudents
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			studentDoc("s1", "Alan", "USA", "Applying"),
			studentDoc("s2", "Alice", "USA", "Prospect"),
		))

		students, err := repo.Search(context.Background(), models.StudentQuery{Sort: models.SortByName, Prefix: "Al", Limit: 21})
		require.NoError(t, err)
		require.Len(t, students, 2)
		assert.Equal(t, "Alan", students[0].Name)
		assert.Equal(t, models.StatusProspect, students[1].ApplicationStatus)
	})

	mt.Run("find by id missing", func(mt *mtest.T) {
		repo := NewStudentRepository(mt.DB)
		ns := mt.DB.Name() + "." + CollectionStudents
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch))

		_, err := repo.FindByID(context.Background(), "ghost")
		assert.True(t, errors.Is(err, mongo.ErrNoDocuments))
	})

	mt.Run("facets skip empty values and sort countries", func(mt *mtest.T) {
		repo := NewStudentRepository(mt.DB)
		mt.AddMockResponses(
			mtest.CreateSuccessResponse(bson.E{Key: "values", Value: bson.A{"USA", "", "Canada"}}),
			mtest.CreateSuccessResponse(bson.E{Key: "values", Value: bson.A{"Applying", "Prospect"}}),
		)

		facets, err := repo.Facets(context.Background(), models.StudentFilter{Status: "admitted"})
		require.NoError(t, err)
		assert.Equal(t, []string{"Canada", "USA"}, facets.Countries)
		assert.Equal(t, []string{"Applying", "Prospect"}, facets.Statuses)
	})

	mt.Run("count by status", func(mt *mtest.T) {
		repo := NewStudentRepository(mt.DB)
		ns := mt.DB.Name() + "." + CollectionStudents
		mt.AddMockResponses(mtest.CreateCursorResponse(0, ns, mtest.FirstBatch,
			bson.D{{Key: "_id", Value: "Applying"}, {Key: "count", Value: int32(3)}},
			bson.D{{Key: "_id", Value: nil}, {Key: "count", Value: int32(1)}},
		))

		counts, err := repo.CountByStatus(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []models.StatusCount{{Status: "Applying", Count: 3}, {Status: "", Count: 1}}, counts)
	})

	mt.Run("store failure surfaces", func(mt *mtest.T) {
		repo := NewStudentRepository(mt.DB)
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{Code: 2, Name: "BadValue", Message: "boom"}))

		_, err := repo.Search(context.Background(), models.StudentQuery{Sort: models.SortByName, Limit: 21})
		assert.Error(t, err)
	})
}
