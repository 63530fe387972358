package quiz

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

var (
	ErrNotFound      = errors.New("quiz not found")
	ErrMissingFields = errors.New("title and questions are required")
)

type Question struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer" bson:"correct_answer"`
}

type Quiz struct {
	MongoID   primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	ID        string             `json:"id" bson:"-"`
	Title     string             `json:"title"`
	Questions []Question         `json:"questions"`
	CreatedBy string             `json:"createdBy" bson:"created_by"`
	Created   time.Time          `json:"created"`
}

// Result is the outcome of a quiz submission.
type Result struct {
	TotalQuestions int `json:"totalQuestions"`
	Score          int `json:"score"`
}

type Repository interface {
	Create(quiz *Quiz) error
	GetAll() []*Quiz
	GetByID(id string) (*Quiz, error)
}
