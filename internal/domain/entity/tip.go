package entity

import (
	"time"
)

type Tip struct {
	ID        string    `json:"_id" firestore:"id"`
	Title     string    `json:"title" firestore:"title"`
	Category  string    `json:"category" firestore:"category"`
	Season    string    `json:"season" firestore:"season"`
	Icon      string    `json:"icon" firestore:"icon"`
	Content   []string  `json:"content" firestore:"content"`
	Timing    string    `json:"timing,omitempty" firestore:"timing,omitempty"`
	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
