package usecase

import (
	"context"
	"time"

	"github.com/KODEGAS/vGurad-main-sub000/internal/domain/entity"
	"github.com/KODEGAS/vGurad-main-sub000/internal/domain/repository"
)

type QuestionUseCase struct {
	questionRepo repository.QuestionRepository

	// now is swappable so tests can pin the stamped date.
	now func() time.Time
}

func NewQuestionUseCase(questionRepo repository.QuestionRepository) *QuestionUseCase {
	return &QuestionUseCase{
		questionRepo: questionRepo,
		now:          time.Now,
	}
}

type CreateQuestionInput struct {
	Question string
	Expert   string
}

// CreateQuestion stamps status and date on the server. Client-supplied values
// for either are never honored.
func (uc *QuestionUseCase) CreateQuestion(ctx context.Context, input CreateQuestionInput) (*entity.Question, error) {
	now := uc.now()
	question := &entity.Question{
		Question:  input.Question,
		Expert:    input.Expert,
		Status:    entity.QuestionStatusPending,
		Date:      now.Format(entity.QuestionDateFormat),
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.questionRepo.Create(ctx, question); err != nil {
		return nil, err
	}

	return question, nil
}

func (uc *QuestionUseCase) GetQuestionByID(ctx context.Context, id string) (*entity.Question, error) {
	return uc.questionRepo.GetByID(ctx, id)
}

func (uc *QuestionUseCase) ListQuestions(ctx context.Context, status string) ([]*entity.Question, error) {
	filter := make(map[string]interface{})
	if status != "" {
		filter["status"] = status
	}

	return uc.questionRepo.List(ctx, filter)
}
