package entity

import (
	"time"
)

const (
	SeverityHigh   = "High"
	SeverityMedium = "Medium"
	SeverityLow    = "Low"
)

type Disease struct {
	ID         string    `json:"_id" firestore:"id"`
	Name       string    `json:"name" firestore:"name"`
	Crop       string    `json:"crop" firestore:"crop"`
	Symptoms   []string  `json:"symptoms" firestore:"symptoms"`
	Cause      string    `json:"cause" firestore:"cause"`
	Treatment  string    `json:"treatment" firestore:"treatment"`
	Prevention string    `json:"prevention" firestore:"prevention"`
	Severity   string    `json:"severity" firestore:"severity"`
	ImageURL   string    `json:"image_url,omitempty" firestore:"imageUrl,omitempty"`
	CreatedAt  time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt  time.Time `json:"updated_at" firestore:"updatedAt"`
}
