package entity

import "time"

// MaxContentLength ограничивает длину комментария (как в колонке content).
const MaxContentLength = 380

type Comment struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Username  string    `json:"username"`
	Content   string    `json:"content"`
	Likes     int       `json:"likes"`
	CreatedAt time.Time `json:"created_at"`
}

func NewComment(userID int, content string) Comment {
	return Comment{
		UserID:  userID,
		Content: content,
	}
}
