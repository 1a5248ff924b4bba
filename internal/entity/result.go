package entity

import (
	"time"

	"github.com/google/uuid"
)

type Result struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	SetID     uuid.UUID `json:"set_id"`
	Score     int       `json:"score"`
	CreatedAt time.Time `json:"created_at"`
}

func NewResult(userID int, setID uuid.UUID, score int) Result {
	return Result{
		UserID: userID,
		SetID:  setID,
		Score:  score,
	}
}
