package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"mathboard/internal/entity"
	"mathboard/internal/quiz"
)

type QuestionRepository struct {
	db *sql.DB
}

func NewQuestionRepository(db *sql.DB) *QuestionRepository {
	return &QuestionRepository{db: db}
}

// GetSet возвращает набор вопросов на указанный день.
func (r *QuestionRepository) GetSet(day time.Time) (entity.QuizSet, []entity.Question, error) {
	var set entity.QuizSet

	err := r.db.QueryRow(`
		SELECT id, active_on, created_at
		FROM quiz_sets
		WHERE active_on = $1
	`, dateOf(day)).Scan(&set.ID, &set.ActiveOn, &set.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return entity.QuizSet{}, nil, ErrNotFound
	}
	if err != nil {
		return entity.QuizSet{}, nil, err
	}

	questions, err := r.questionsBySet(set.ID)
	if err != nil {
		return entity.QuizSet{}, nil, err
	}

	return set, questions, nil
}

// EnsureSet возвращает набор на день, при отсутствии - генерирует и сохраняет.
// Повторный вызов без генерации ничего не меняет. При гонке двух первых
// запросов дня выигрывает один insert, второй перечитывает готовый набор.
func (r *QuestionRepository) EnsureSet(day time.Time, gen *quiz.Generator) (entity.QuizSet, []entity.Question, error) {
	set, questions, err := r.GetSet(day)
	if err == nil {
		return set, questions, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return entity.QuizSet{}, nil, err
	}

	equations := gen.GenerateSet()

	tx, err := r.db.Begin()
	if err != nil {
		return entity.QuizSet{}, nil, err
	}
	defer tx.Rollback()

	setID := uuid.New()
	_, err = tx.Exec(`
		INSERT INTO quiz_sets (id, active_on)
		VALUES ($1, $2)
	`, setID, dateOf(day))
	if err != nil {
		if isUniqueViolation(err) {
			return r.GetSet(day)
		}
		return entity.QuizSet{}, nil, fmt.Errorf("ошибка сохранения набора: %w", err)
	}

	for i, eq := range equations {
		_, err = tx.Exec(`
			INSERT INTO questions (set_id, position, equation, answer)
			VALUES ($1, $2, $3, $4)
		`, setID, i, eq.Text, eq.Answer)
		if err != nil {
			return entity.QuizSet{}, nil, fmt.Errorf("ошибка сохранения вопроса %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return entity.QuizSet{}, nil, err
	}

	return r.GetSet(day)
}

func (r *QuestionRepository) questionsBySet(setID uuid.UUID) ([]entity.Question, error) {
	rows, err := r.db.Query(`
		SELECT id, set_id, position, equation, answer, created_at
		FROM questions
		WHERE set_id = $1
		ORDER BY position ASC
	`, setID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var questions []entity.Question
	for rows.Next() {
		var q entity.Question
		if err := rows.Scan(&q.ID, &q.SetID, &q.Position, &q.Equation, &q.Answer, &q.CreatedAt); err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}

	return questions, rows.Err()
}

func dateOf(t time.Time) string {
	return t.Format("2006-01-02")
}
