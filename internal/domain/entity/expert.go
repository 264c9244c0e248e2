package entity

import (
	"time"
)

type Expert struct {
	ID         string    `json:"_id" firestore:"id"`
	Name       string    `json:"name" firestore:"name"`
	Specialty  string    `json:"specialty" firestore:"specialty"`
	Experience string    `json:"experience" firestore:"experience"`
	Languages  []string  `json:"languages" firestore:"languages"`
	Rating     float64   `json:"rating" firestore:"rating"`
	Phone      string    `json:"phone" firestore:"phone"`
	Available  bool      `json:"available" firestore:"available"`
	CreatedAt  time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt  time.Time `json:"updated_at" firestore:"updatedAt"`
}
