package lesson

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
		collection: db.Collection("lessons"),
	}
}

func (r *MongoRepo) Create(lesson *Lesson) error {
	ctx := context.TODO()

	result, err := r.collection.InsertOne(ctx, lesson)
	if err != nil {
		return err
	}

	if oid, ok := result.InsertedID.(primitive.ObjectID); ok {
		lesson.MongoID = oid
		lesson.ID = oid.Hex()
	} else {
		return errors.New("failed to convert inserted ID to ObjectID")
	}

	return nil
}

// GetAll returns lessons newest first.
func (r *MongoRepo) GetAll() []*Lesson {
	ctx := context.TODO()

	opts := options.Find().SetSort(bson.D{{Key: "created", Value: -1}})
	cursor, err := r.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil
	}
	defer cursor.Close(ctx)

	var lessons []*Lesson
	for cursor.Next(ctx) {
		var lesson Lesson
		if err := cursor.Decode(&lesson); err != nil {
			continue
		}
		lesson.ID = lesson.MongoID.Hex()
		lessons = append(lessons, &lesson)
	}

	return lessons
}

func (r *MongoRepo) GetByID(id string) (*Lesson, error) {
	ctx := context.TODO()
	var lesson Lesson

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	err = r.collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&lesson)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch lesson: %w", err)
	}

	lesson.ID = lesson.MongoID.Hex()
	return &lesson, nil
}

func (r *MongoRepo) Update(id string, upd Update) (*Lesson, error) {
	ctx := context.TODO()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}

	set := bson.M{}
	if upd.Title != nil {
		set["title"] = *upd.Title
	}
	if upd.Content != nil {
		set["content"] = *upd.Content
	}
	if upd.Difficulty != nil {
		set["difficulty"] = *upd.Difficulty
	}
	if upd.Description != nil {
		set["description"] = *upd.Description
	}
	if upd.Tags != nil {
		set["tags"] = upd.Tags
	}

	var updated Lesson
	err = r.collection.FindOneAndUpdate(
		ctx,
		bson.M{"_id": objectID},
		bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&updated)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update lesson: %w", err)
	}

	updated.ID = updated.MongoID.Hex()
	return &updated, nil
}

func (r *MongoRepo) Delete(id string) error {
	ctx := context.TODO()

	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := r.collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}

	return nil
}
