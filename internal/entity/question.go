package entity

import (
	"time"

	"github.com/google/uuid"
)

// QuizSet - маркер версии набора вопросов, один на календарный день.
type QuizSet struct {
	ID        uuid.UUID `json:"id"`
	ActiveOn  time.Time `json:"active_on"`
	CreatedAt time.Time `json:"created_at"`
}

type Question struct {
	ID        int       `json:"id"`
	SetID     uuid.UUID `json:"set_id"`
	Position  int       `json:"position"`
	Equation  string    `json:"equation"`
	Answer    int       `json:"answer"`
	CreatedAt time.Time `json:"created_at"`
}
