package repository

import (
	"database/sql"
	"errors"

	"mathboard/internal/entity"
)

type UserRepository struct {
	db *sql.DB
}

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create сохраняет нового пользователя.
// Занятое имя возвращается как ErrDuplicateUsername.
func (r *UserRepository) Create(username, passwordHash string, publicAccount bool) (entity.User, error) {
	var u entity.User

	err := r.db.QueryRow(`
		INSERT INTO users (username, password_hash, public_account)
		VALUES ($1, $2, $3)
		RETURNING id, username, password_hash, public_account, created_at
	`, username, passwordHash, publicAccount).Scan(
		&u.ID, &u.Username, &u.PasswordHash, &u.PublicAccount, &u.CreatedAt,
	)

	if err != nil {
		if isUniqueViolation(err) {
			return entity.User{}, ErrDuplicateUsername
		}
		return entity.User{}, err
	}

	return u, nil
}

func (r *UserRepository) GetByUsername(username string) (entity.User, error) {
	var u entity.User

	err := r.db.QueryRow(`
		SELECT id, username, password_hash, public_account, created_at
		FROM users
		WHERE username = $1
	`, username).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.PublicAccount, &u.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return entity.User{}, ErrNotFound
	}

	return u, err
}

func (r *UserRepository) GetByID(id int) (entity.User, error) {
	var u entity.User

	err := r.db.QueryRow(`
		SELECT id, username, password_hash, public_account, created_at
		FROM users
		WHERE id = $1
	`, id).Scan(&u.ID, &u.Username, &u.PasswordHash, &u.PublicAccount, &u.CreatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return entity.User{}, ErrNotFound
	}

	return u, err
}
