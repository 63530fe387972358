package user_test

import (
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"

	"learnhub/pkg/user"
)

func setupTestDB(t *testing.T) *sql.DB {
	db, err := sql.Open("sqlite3", ":memory:")
	assert.NoError(t, err)

	schema := `
	CREATE TABLE users (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		email TEXT NOT NULL UNIQUE,
		password TEXT NOT NULL
	);`

	_, err = db.Exec(schema)
	assert.NoError(t, err)

	return db
}

func TestMySQLRepo_CreateAndFind(t *testing.T) {
	db := setupTestDB(t)
	repo := user.NewMySQLRepo(db)

	alice := &user.User{
		ID:       "user123",
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "hashed_pass",
	}
	err := repo.Create(alice)
	assert.NoError(t, err)

	duplicate := &user.User{
		ID:       "user456",
		Name:     "Other Alice",
		Email:    "alice@example.com", // same email
		Password: "other_hash",
	}
	err = repo.Create(duplicate)
	assert.ErrorIs(t, err, user.ErrDuplicateEmail)

	u, err := repo.FindByEmail("alice@example.com")
	assert.NoError(t, err)
	assert.NotNil(t, u)
	assert.Equal(t, "user123", u.ID)
	assert.Equal(t, "Alice", u.Name)

	u, err = repo.FindByEmail("nobody@example.com")
	assert.Nil(t, u)
	assert.ErrorIs(t, err, user.ErrNotFound)

	u, err = repo.FindByID("user123")
	assert.NoError(t, err)
	assert.Equal(t, "alice@example.com", u.Email)

	u, err = repo.FindByID("user999")
	assert.Nil(t, u)
	assert.ErrorIs(t, err, user.ErrNotFound)
}

func TestMySQLRepo_QueryErrors(t *testing.T) {
	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	defer db.Close()

	repo := user.NewMySQLRepo(db)

	mock.ExpectQuery("SELECT id, name, email, password FROM users WHERE email").
		WithArgs("alice@example.com").
		WillReturnError(errors.New("connection reset"))

	u, err := repo.FindByEmail("alice@example.com")
	assert.Nil(t, u)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, user.ErrNotFound)

	mock.ExpectExec("INSERT INTO users").
		WithArgs("id", "name", "mail", "hash").
		WillReturnError(errors.New("connection reset"))

	err = repo.Create(&user.User{ID: "id", Name: "name", Email: "mail", Password: "hash"})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, user.ErrDuplicateEmail)

	assert.NoError(t, mock.ExpectationsWereMet())
}
