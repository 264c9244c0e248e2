package entity

import (
	"time"
)

const (
	RoleAdmin   = "admin"
	RoleProUser = "proUser"
	RoleUser    = "user"
)

const (
	LanguageEnglish = "en"
	LanguageSinhala = "si"
	LanguageTamil   = "ta"
)

// User is the server-side profile for a Firebase identity. The Firestore
// document id is the Firebase UID, which keeps profile creation idempotent.
type User struct {
	FirebaseUID        string    `json:"firebaseUid" firestore:"firebaseUid"`
	Email              string    `json:"email" firestore:"email"`
	Role               string    `json:"role" firestore:"role"`
	DisplayName        string    `json:"displayName,omitempty" firestore:"displayName,omitempty"`
	PhotoURL           string    `json:"photoURL,omitempty" firestore:"photoURL,omitempty"`
	Phone              string    `json:"phone,omitempty" firestore:"phone,omitempty"`
	Location           string    `json:"location,omitempty" firestore:"location,omitempty"`
	LanguagePreference string    `json:"language_preference" firestore:"languagePreference"`
	SavedNotes         []string  `json:"savedNotes" firestore:"savedNotes"`
	CreatedAt          time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt          time.Time `json:"updated_at" firestore:"updatedAt"`
}
