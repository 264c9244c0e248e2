package client

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KODEGAS/vGurad-main-sub000/internal/domain/entity"
)

func TestFilterDiseasesMatchesNameOrCrop(t *testing.T) {
	diseases := []entity.Disease{
		{Name: "Rice Blast", Crop: "Rice"},
		{Name: "Leaf Curl Virus", Crop: "Chili"},
		{Name: "Black Sigatoka", Crop: "Banana"},
	}

	assert.Len(t, FilterDiseases(diseases, "rice"), 1)
	assert.Len(t, FilterDiseases(diseases, "CHILI"), 1)
	assert.Len(t, FilterDiseases(diseases, "a"), 3)
	assert.Empty(t, FilterDiseases(diseases, "wheat"))
}

func TestFilterEmptyQueryMatchesEverything(t *testing.T) {
	tips := []entity.Tip{
		{Title: "Water paddy early", Category: "Irrigation"},
		{Title: "Compost before monsoon", Category: "Soil"},
	}

	assert.Len(t, FilterTips(tips, ""), 2)
}

func TestFilterExpertsBySpecialty(t *testing.T) {
	experts := []entity.Expert{
		{Name: "Dr. Nimal Perera", Specialty: "Rice pathology"},
		{Name: "Ms. Kavitha Raj", Specialty: "Vegetable pest management"},
	}

	filtered := FilterExperts(experts, "pest")
	assert.Len(t, filtered, 1)
	assert.Equal(t, "Ms. Kavitha Raj", filtered[0].Name)
}

func TestFilterNotesByContent(t *testing.T) {
	notes := []entity.Note{
		{Title: "Bed 3", Content: "Brown spots on lower leaves"},
		{Title: "Bed 4", Content: "Healthy"},
	}

	filtered := FilterNotes(notes, "brown spots")
	assert.Len(t, filtered, 1)
	assert.Equal(t, "Bed 3", filtered[0].Title)
}

func TestFilterReturnsEmptySliceNotNil(t *testing.T) {
	filtered := FilterProducts(nil, "anything")
	assert.NotNil(t, filtered)
	assert.Empty(t, filtered)
}
