package repository

import (
	"database/sql"
	"time"

	"mathboard/internal/entity"
)

type ResultRepository struct {
	db *sql.DB
}

func NewResultRepository(db *sql.DB) *ResultRepository {
	return &ResultRepository{db: db}
}

// Create добавляет строку результата. Дедупликацию по дням
// решает политика на уровне обработчика.
func (r *ResultRepository) Create(res entity.Result) (entity.Result, error) {
	err := r.db.QueryRow(`
		INSERT INTO results (user_id, set_id, score)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`, res.UserID, res.SetID, res.Score).Scan(&res.ID, &res.CreatedAt)

	if err != nil {
		return entity.Result{}, err
	}

	return res, nil
}

func (r *ResultRepository) HasResultSince(userID int, since time.Time) (bool, error) {
	var exists bool

	err := r.db.QueryRow(`
		SELECT EXISTS (
			SELECT 1 FROM results
			WHERE user_id = $1 AND created_at >= $2
		)
	`, userID, since).Scan(&exists)

	return exists, err
}

func (r *ResultRepository) ListByUser(userID int) ([]entity.Result, error) {
	rows, err := r.db.Query(`
		SELECT id, user_id, set_id, score, created_at
		FROM results
		WHERE user_id = $1
		ORDER BY created_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []entity.Result
	for rows.Next() {
		var res entity.Result
		if err := rows.Scan(&res.ID, &res.UserID, &res.SetID, &res.Score, &res.CreatedAt); err != nil {
			return nil, err
		}
		results = append(results, res)
	}

	return results, rows.Err()
}
