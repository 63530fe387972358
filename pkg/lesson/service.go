package lesson

import (
	"strings"
	"time"
)

type ServiceInterface interface {
	Create(lesson *Lesson, creatorID string) error
	GetAll() []*Lesson
	GetByID(id string) (*Lesson, error)
	Update(id string, upd Update) (*Lesson, error)
	Delete(id string) error
}

type Service struct {
	Repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repo: repo}
}

func (s *Service) Create(lesson *Lesson, creatorID string) error {
	if strings.TrimSpace(lesson.Title) == "" || strings.TrimSpace(lesson.Content) == "" {
		return ErrMissingFields
	}

	lesson.CreatedBy = creatorID
	lesson.Created = time.Now()
	lesson.Tags = normalizeTags(lesson.Tags)

	return s.Repo.Create(lesson)
}

func (s *Service) GetAll() []*Lesson {
	return s.Repo.GetAll()
}

func (s *Service) GetByID(id string) (*Lesson, error) {
	return s.Repo.GetByID(id)
}

func (s *Service) Update(id string, upd Update) (*Lesson, error) {
	if upd.Tags != nil {
		upd.Tags = normalizeTags(upd.Tags)
	}
	return s.Repo.Update(id, upd)
}

func (s *Service) Delete(id string) error {
	return s.Repo.Delete(id)
}

// normalizeTags trims and dedupes, preserving first-seen order. Done
// here explicitly rather than as a store-side hook.
func normalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	result := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		result = append(result, t)
	}
	return result
}
