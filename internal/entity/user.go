package entity

import "time"

type User struct {
	ID            int       `json:"id"`
	Username      string    `json:"username"`
	PasswordHash  string    `json:"-"`
	PublicAccount bool      `json:"public_account"`
	CreatedAt     time.Time `json:"created_at"`
}
