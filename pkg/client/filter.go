package client

import (
	"strings"

	"github.com/KODEGAS/vGurad-main-sub000/internal/domain/entity"
	"github.com/KODEGAS/vGurad-main-sub000/pkg/localstore"
)

// matches reports whether any field contains the query, case-insensitively.
// An empty query matches everything.
func matches(query string, fields ...string) bool {
	if query == "" {
		return true
	}
	query = strings.ToLower(query)
	for _, field := range fields {
		if strings.Contains(strings.ToLower(field), query) {
			return true
		}
	}
	return false
}

func FilterDiseases(diseases []entity.Disease, query string) []entity.Disease {
	filtered := make([]entity.Disease, 0, len(diseases))
	for _, d := range diseases {
		if matches(query, d.Name, d.Crop) {
			filtered = append(filtered, d)
		}
	}
	return filtered
}

func FilterTips(tips []entity.Tip, query string) []entity.Tip {
	filtered := make([]entity.Tip, 0, len(tips))
	for _, t := range tips {
		if matches(query, t.Title, t.Category) {
			filtered = append(filtered, t)
		}
	}
	return filtered
}

func FilterExperts(experts []entity.Expert, query string) []entity.Expert {
	filtered := make([]entity.Expert, 0, len(experts))
	for _, e := range experts {
		if matches(query, e.Name, e.Specialty) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

func FilterProducts(products []entity.Product, query string) []entity.Product {
	filtered := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if matches(query, p.Name, p.Category) {
			filtered = append(filtered, p)
		}
	}
	return filtered
}

func FilterNotes(notes []entity.Note, query string) []entity.Note {
	filtered := make([]entity.Note, 0, len(notes))
	for _, n := range notes {
		if matches(query, n.Title, n.Content) {
			filtered = append(filtered, n)
		}
	}
	return filtered
}

func FilterSavedItems(items []localstore.Item, query string) []localstore.Item {
	filtered := make([]localstore.Item, 0, len(items))
	for _, item := range items {
		if matches(query, item.Title, item.Content) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
