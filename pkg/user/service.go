package user

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLen = 6

var emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

type ServiceInterface interface {
	Register(name, email, password string) (*User, error)
	Login(email, password string) (*User, error)
	Profile(id string) (*User, error)
}

type Service struct {
	Repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{Repo: repo}
}

// Register validates the input, hashes the password and persists the
// user. Hashing happens here, before the store write: the store never
// sees a plaintext password.
func (s *Service) Register(name, email, password string) (*User, error) {
	if err := validateRegistration(name, email, password); err != nil {
		return nil, err
	}

	exist, err := s.Repo.FindByEmail(email)
	if exist != nil && err == nil {
		return nil, ErrDuplicateEmail
	}
	if err != nil && !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hashing password error: %s", err)
	}

	user := &User{
		ID:       uuid.NewString(),
		Name:     strings.TrimSpace(name),
		Email:    email,
		Password: string(hashedPassword),
	}

	if err := s.Repo.Create(user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login deliberately reports the same ErrInvalidCredentials for an
// unknown email and for a wrong password, so the endpoint cannot be
// used to enumerate accounts.
func (s *Service) Login(email, password string) (*User, error) {
	user, err := s.Repo.FindByEmail(email)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

func (s *Service) Profile(id string) (*User, error) {
	return s.Repo.FindByID(id)
}

func validateRegistration(name, email, password string) error {
	if strings.TrimSpace(name) == "" {
		return &ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if !emailRe.MatchString(email) {
		return &ValidationError{Field: "email", Reason: "invalid format"}
	}
	if len(password) < minPasswordLen {
		return &ValidationError{Field: "password", Reason: "must be at least 6 characters"}
	}
	return nil
}
