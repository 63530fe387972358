package quiz

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoRepo struct {
	collection *mongo.Collection
}

func NewMongoRepo(db *mongo.Database) *MongoRepo {
	return &MongoRepo{
		collection: db.Collection("quizzes"),
	}
}

func (r *MongoRepo) Create(quiz *Quiz) error {
	ctx := context.TODO()

	result, err := r.collection.InsertOne(ctx, quiz)
	if err != nil {
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		quiz.MongoID = oid
		quiz.ID = oid.Hex()
	} else {
		return errors.New("failed to convert inserted ID to ObjectID")
	}

	return nil
}

// GetAll returns quizzes newest first.
func (r *MongoRepo) GetAll() []*Quiz {
	ctx := context.TODO()

	opts := options.Find().SetSort(bson.D{{Key: "created", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil
	}
	defer cursor.Close(ctx)

	var quizzes []*Quiz
	for cursor.Next(ctx) {
		var quiz Quiz
		if err := cursor.Decode(&quiz); err != nil {
			continue
		}
		quiz.ID = quiz.MongoID.Hex()
		quizzes = append(quizzes, &quiz)
	}

	return quizzes
}

func (r *MongoRepo) GetByID(id string) (*Quiz, error) {
	ctx := context.TODO()
	var quiz Quiz

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&quiz)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch quiz: %w", err)
	}

	quiz.ID = quiz.MongoID.Hex()
	return &quiz, nil
}
