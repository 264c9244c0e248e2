package localstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Kind selects one of the two per-user item families.
type Kind string

const (
	KindNotes   Kind = "savedNotes"
	KindResults Kind = "savedResults"
)

// ErrDuplicateTitle reports a note save that would duplicate an existing
// title; callers surface it as an "already saved" message.
var ErrDuplicateTitle = errors.New("an item with this title is already saved")

// Item is a locally saved note or scan result. It never reaches the server,
// so ids are generated here rather than by the store.
type Item struct {
	ID        string    `json:"_id"`
	UserID    string    `json:"user_id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
}

// SavedItems keeps per-user arrays of saved notes and scan results in a
// Store, keyed savedNotes_<uid> and savedResults_<uid>.
type SavedItems struct {
	store Store
}

func NewSavedItems(store Store) *SavedItems {
	return &SavedItems{
		store: store,
	}
}

func storageKey(kind Kind, userID string) string {
	return fmt.Sprintf("%s_%s", kind, userID)
}

// newItemID is timestamp-based with a short random suffix so two saves in the
// same millisecond stay distinct.
func newItemID() string {
	return fmt.Sprintf("%d-%s", time.Now().UnixMilli(), uuid.NewString()[:8])
}

// Save appends a synthesized item to the user's array. Notes dedupe by
// title: a repeat title is a no-op reported as ErrDuplicateTitle.
func (s *SavedItems) Save(kind Kind, userID, title, content string) (*Item, error) {
	items := s.List(kind, userID)

	if kind == KindNotes {
		for _, existing := range items {
			if existing.Title == title {
				return nil, ErrDuplicateTitle
			}
		}
	}

	item := Item{
		ID:        newItemID(),
		UserID:    userID,
		Title:     title,
		Content:   content,
		CreatedAt: time.Now(),
	}
	items = append(items, item)

	if err := s.write(kind, userID, items); err != nil {
		return nil, err
	}

	return &item, nil
}

// List returns the user's saved items, defaulting to empty when the key is
// absent or holds something unparseable.
func (s *SavedItems) List(kind Kind, userID string) []Item {
	raw, ok := s.store.Get(storageKey(kind, userID))
	if !ok {
		return []Item{}
	}

	var items []Item
	if err := json.Unmarshal(raw, &items); err != nil {
		return []Item{}
	}

	return items
}

// Delete removes the item with the given id; an unknown id leaves the array
// unchanged.
func (s *SavedItems) Delete(kind Kind, userID, id string) error {
	items := s.List(kind, userID)

	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}

	return s.write(kind, userID, kept)
}

func (s *SavedItems) write(kind Kind, userID string, items []Item) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}

	return s.store.Set(storageKey(kind, userID), raw)
}
