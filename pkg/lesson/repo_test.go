package lesson_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"learnhub/pkg/lesson"
)

func TestGetAllRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("success skipping undecodable docs", func(mt *mtest.T) {
		lessons := []bson.D{
			{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "title", Value: "Photosynthesis"}},
			{{Key: "_id", Value: primitive.NewObjectID()}, {Key: "title", Value: "Fractions"}},
			{{Key: "_id", Value: "oops"}, {Key: "title", Value: "Broken"}},
		}
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "lessons.foo", mtest.FirstBatch, lessons...))
		repo := lesson.NewMongoRepo(mt.DB)

		results := repo.GetAll()

		assert.Len(t, results, 2)
		assert.NotEmpty(t, results[0].ID)
	})

	mt.Run("mongo Find error", func(mt *mtest.T) {
		repo := lesson.NewMongoRepo(mt.DB)

		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    123,
			Message: "some error",
		}))

		results := repo.GetAll()

		assert.Nil(t, results)
	})
}

func TestGetByIDRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("success", func(mt *mtest.T) {
		oid := primitive.NewObjectID()
		mt.AddMockResponses(mtest.CreateCursorResponse(1, "lessons.foo", mtest.FirstBatch, bson.D{
			{Key: "_id", Value: oid},
			{Key: "title", Value: "Photosynthesis"},
			{Key: "content", Value: "Plants turn light into sugar."},
		}))
		repo := lesson.NewMongoRepo(mt.DB)

		result, err := repo.GetByID(oid.Hex())

		assert.NoError(t, err)
		assert.Equal(t, oid.Hex(), result.ID)
		assert.Equal(t, "Photosynthesis", result.Title)
	})

	mt.Run("invalid id format", func(mt *mtest.T) {
		repo := lesson.NewMongoRepo(mt.DB)

		result, err := repo.GetByID("not-a-hex-id")

		assert.Nil(t, result)
		assert.ErrorIs(t, err, lesson.ErrNotFound)
	})

	mt.Run("not found", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCursorResponse(0, "lessons.foo", mtest.FirstBatch))
		repo := lesson.NewMongoRepo(mt.DB)

		result, err := repo.GetByID(primitive.NewObjectID().Hex())

		assert.Nil(t, result)
		assert.ErrorIs(t, err, lesson.ErrNotFound)
	})
}

func TestDeleteRepo(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("invalid id format", func(mt *mtest.T) {
		repo := lesson.NewMongoRepo(mt.DB)

		err := repo.Delete("not-a-hex-id")

		assert.ErrorIs(t, err, lesson.ErrNotFound)
	})

	mt.Run("not found", func(mt *mtest.T) {
		mt.AddMockResponses(bson.D{{Key: "ok", Value: 1}, {Key: "acknowledged", Value: true}, {Key: "n", Value: 0}})
		repo := lesson.NewMongoRepo(mt.DB)

		err := repo.Delete(primitive.NewObjectID().Hex())

		assert.ErrorIs(t, err, lesson.ErrNotFound)
	})
}
