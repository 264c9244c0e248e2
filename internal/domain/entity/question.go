package entity

import (
	"time"
)

const (
	QuestionStatusPending  = "pending"
	QuestionStatusAnswered = "answered"
)

// QuestionDateFormat renders dates as "Aug 27, 2026", the display format the
// question board shows farmers.
const QuestionDateFormat = "Jan 2, 2006"

type Question struct {
	ID        string    `json:"_id" firestore:"id"`
	Question  string    `json:"question" firestore:"question"`
	Expert    string    `json:"expert" firestore:"expert"`
	Status    string    `json:"status" firestore:"status"`
	Date      string    `json:"date" firestore:"date"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
