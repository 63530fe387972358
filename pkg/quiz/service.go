package quiz

import (
	"strings"
	"time"
)

type ServiceInterface interface {
	Create(quiz *Quiz, creatorID string) error
	GetAll() []*Quiz
	GetByID(id string) (*Quiz, error)
	Submit(id string, answers []string) (*Result, error)
}

type Service struct {
	Repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repo: repo}
}

func (s *Service) Create(quiz *Quiz, creatorID string) error {
	if strings.TrimSpace(quiz.Title) == "" || len(quiz.Questions) == 0 {
		return ErrMissingFields
	}

	quiz.CreatedBy = creatorID
	quiz.Created = time.Now()

	return s.Repo.Create(quiz)
}

func (s *Service) GetAll() []*Quiz {
	return s.Repo.GetAll()
}

func (s *Service) GetByID(id string) (*Quiz, error) {
	return s.Repo.GetByID(id)
}

// Submit scores answers positionally: one point when answers[i] equals
// the stored correct answer for question i. No partial credit; answers
// beyond the question count and unanswered questions score nothing.
func (s *Service) Submit(id string, answers []string) (*Result, error) {
	quiz, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	n := len(quiz.Questions)
	if len(answers) < n {
		n = len(answers)
	}

	score := 0
	for i := 0; i < n; i++ {
		if quiz.Questions[i].CorrectAnswer == answers[i] {
			score++
		}
	}

	return &Result{
		TotalQuestions: len(quiz.Questions),
		Score:          score,
	}, nil
}
