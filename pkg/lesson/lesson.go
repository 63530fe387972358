package lesson

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound      = errors.New("lesson not found")
	ErrMissingFields = errors.New("title and content are required")
)

type Lesson struct {
	MongoID     primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID          string             `json:"id" bson:"-"`
	Title       string             `json:"title"`
	Content     string             `json:"content"`
	Difficulty  string             `json:"difficulty,omitempty" bson:"difficulty,omitempty"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	Tags        []string           `json:"tags"`
	CreatedBy   string             `json:"createdBy" bson:"created_by"`
	Created     time.Time          `json:"created"`
}

// Update carries the mutable fields of a lesson. Nil pointers mean
// "leave unchanged"; a non-nil Tags replaces the whole list.
type Update struct {
	Title       *string  `json:"title"`
	Content     *string  `json:"content"`
	Difficulty  *string  `json:"difficulty"`
	Description *string  `json:"description"`
	Tags        []string `json:"tags"`
}

type Repository interface {
	Create(lesson *Lesson) error
	GetAll() []*Lesson
	GetByID(id string) (*Lesson, error)
	Update(id string, upd Update) (*Lesson, error)
	Delete(id string) error
}
