package usecase

import (
	"context"
	"time"

	"github.com/KODEGAS/vGurad-main-sub000/internal/domain/entity"
	"github.com/KODEGAS/vGurad-main-sub000/internal/domain/repository"
	"github.com/KODEGAS/vGurad-main-sub000/pkg/errors"
)

type UserUseCase struct {
	userRepo repository.UserRepository
}

func NewUserUseCase(userRepo repository.UserRepository) *UserUseCase {
	return &UserUseCase{
		userRepo: userRepo,
	}
}

type CreateProfileInput struct {
	FirebaseUID string
	Email       string
	DisplayName string
	PhotoURL    string
}

// CreateProfile creates the server-side profile for a verified Firebase
// identity exactly once; a second call for the same uid is a conflict, not a
// second record.
func (uc *UserUseCase) CreateProfile(ctx context.Context, input CreateProfileInput) (*entity.User, error) {
	existing, err := uc.userRepo.GetByUID(ctx, input.FirebaseUID)
	if err != nil && !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}
	if existing != nil {
		return nil, errors.Conflict("User profile already exists")
	}

	now := time.Now()
	user := &entity.User{
		FirebaseUID:        input.FirebaseUID,
		Email:              input.Email,
		Role:               entity.RoleUser,
		DisplayName:        input.DisplayName,
		PhotoURL:           input.PhotoURL,
		LanguagePreference: entity.LanguageEnglish,
		SavedNotes:         []string{},
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

func (uc *UserUseCase) GetProfile(ctx context.Context, uid string) (*entity.User, error) {
	return uc.userRepo.GetByUID(ctx, uid)
}

type UpdateProfileInput struct {
	DisplayName        *string
	PhotoURL           *string
	Phone              *string
	Location           *string
	LanguagePreference *string
}

func (uc *UserUseCase) UpdateProfile(ctx context.Context, uid string, input UpdateProfileInput) (*entity.User, error) {
	user, err := uc.userRepo.GetByUID(ctx, uid)
	if err != nil {
		return nil, err
	}

	if input.DisplayName != nil {
		user.DisplayName = *input.DisplayName
	}
	if input.PhotoURL != nil {
		user.PhotoURL = *input.PhotoURL
	}
	if input.Phone != nil {
		user.Phone = *input.Phone
	}
	if input.Location != nil {
		user.Location = *input.Location
	}
	if input.LanguagePreference != nil {
		user.LanguagePreference = *input.LanguagePreference
	}

	if err := uc.userRepo.Update(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}
