package repository

import (
	"database/sql"
	"errors"
	"time"

	"mathboard/internal/entity"
)

type CommentRepository struct {
	db *sql.DB
}

func NewCommentRepository(db *sql.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(userID int, content string) (entity.Comment, error) {
	var c entity.Comment

	err := r.db.QueryRow(`
		INSERT INTO comments (user_id, content)
		VALUES ($1, $2)
		RETURNING id, user_id, content, likes, created_at
	`, userID, content).Scan(&c.ID, &c.UserID, &c.Content, &c.Likes, &c.CreatedAt)

	if err != nil {
		return entity.Comment{}, err
	}

	return c, nil
}

// List возвращает все комментарии по возрастанию даты создания.
func (r *CommentRepository) List() ([]entity.Comment, error) {
	rows, err := r.db.Query(`
		SELECT c.id, c.user_id, u.username, c.content, c.likes, c.created_at
		FROM comments c
		JOIN users u ON u.id = c.user_id
		ORDER BY c.created_at ASC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var comments []entity.Comment
	for rows.Next() {
		var c entity.Comment
		if err := rows.Scan(&c.ID, &c.UserID, &c.Username, &c.Content, &c.Likes, &c.CreatedAt); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}

	return comments, rows.Err()
}

func (r *CommentRepository) GetByID(id int) (entity.Comment, error) {
	var c entity.Comment

	err := r.db.QueryRow(`
		SELECT c.id, c.user_id, u.username, c.content, c.likes, c.created_at
		FROM comments c
		JOIN users u ON u.id = c.user_id
		WHERE c.id = $1
	`, id).Scan(&c.ID, &c.UserID, &c.Username, &c.Content, &c.Likes, &c.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return entity.Comment{}, ErrNotFound
	}

	return c, err
}

// IncrementLikes увеличивает счетчик ровно на единицу.
func (r *CommentRepository) IncrementLikes(id int) error {
	res, err := r.db.Exec(`
		UPDATE comments
		SET likes = likes + 1
		WHERE id = $1
	`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

func (r *CommentRepository) Delete(id int) error {
	res, err := r.db.Exec(`
		DELETE FROM comments
		WHERE id = $1
	`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}

// CountPostedSince - для дневного лимита комментариев.
func (r *CommentRepository) CountPostedSince(userID int, since time.Time) (int, error) {
	var count int

	err := r.db.QueryRow(`
		SELECT COUNT(*)
		FROM comments
		WHERE user_id = $1 AND created_at >= $2
	`, userID, since).Scan(&count)

	return count, err
}
