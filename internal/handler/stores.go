package handler

import (
	"time"

	"mathboard/internal/entity"
	"mathboard/internal/quiz"
)

// Интерфейсы хранилищ, чтобы обработчики собирались в тестах
// без живой БД. Реализации - internal/repository.

type UserStore interface {
	Create(username, passwordHash string, publicAccount bool) (entity.User, error)
	GetByUsername(username string) (entity.User, error)
	GetByID(id int) (entity.User, error)
}

type CommentStore interface {
	Create(userID int, content string) (entity.Comment, error)
	List() ([]entity.Comment, error)
	GetByID(id int) (entity.Comment, error)
	IncrementLikes(id int) error
	Delete(id int) error
	CountPostedSince(userID int, since time.Time) (int, error)
}

type QuestionStore interface {
	GetSet(day time.Time) (entity.QuizSet, []entity.Question, error)
	EnsureSet(day time.Time, gen *quiz.Generator) (entity.QuizSet, []entity.Question, error)
}

type ResultStore interface {
	Create(res entity.Result) (entity.Result, error)
	HasResultSince(userID int, since time.Time) (bool, error)
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
