package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KODEGAS/vGurad-main-sub000/internal/domain/entity"
)

func TestCreateQuestionStampsStatusAndDate(t *testing.T) {
	repo := &fakeQuestionRepo{}
	uc := NewQuestionUseCase(repo)
	uc.now = func() time.Time {
		return time.Date(2025, time.March, 7, 10, 30, 0, 0, time.UTC)
	}

	question, err := uc.CreateQuestion(context.Background(), CreateQuestionInput{
		Question: "Why are my chili leaves curling?",
		Expert:   "Ms. Kavitha Raj",
	})
	require.NoError(t, err)

	assert.Equal(t, entity.QuestionStatusPending, question.Status)
	assert.Equal(t, "Mar 7, 2025", question.Date)
	assert.Equal(t, "Why are my chili leaves curling?", question.Question)
	assert.NotEmpty(t, question.ID)
}

func TestListQuestionsFiltersByStatus(t *testing.T) {
	repo := &fakeQuestionRepo{}
	uc := NewQuestionUseCase(repo)

	_, err := uc.ListQuestions(context.Background(), "answered")
	require.NoError(t, err)
	assert.Equal(t, map[string]interface{}{"status": "answered"}, repo.listed)

	_, err = uc.ListQuestions(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, repo.listed)
}
