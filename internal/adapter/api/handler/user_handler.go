package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/KODEGAS/vGurad-main-sub000/internal/domain/entity"
	"github.com/KODEGAS/vGurad-main-sub000/internal/usecase"
	"github.com/KODEGAS/vGurad-main-sub000/pkg/errors"
	"github.com/KODEGAS/vGurad-main-sub000/pkg/response"
)

type UserHandler struct {
	userUseCase *usecase.UserUseCase
}

func NewUserHandler(userUseCase *usecase.UserUseCase) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
	}
}

type createProfileRequest struct {
	Email       string `json:"email" validate:"required,email"`
	DisplayName string `json:"displayName"`
	PhotoURL    string `json:"photoURL" validate:"omitempty,url"`
}

type createProfileResponse struct {
	Message string       `json:"message"`
	User    *entity.User `json:"user"`
}

type updateProfileRequest struct {
	DisplayName        *string `json:"displayName"`
	PhotoURL           *string `json:"photoURL"`
	Phone              *string `json:"phone"`
	Location           *string `json:"location"`
	LanguagePreference *string `json:"language_preference" validate:"omitempty,oneof=en si ta"`
}

// CreateProfile runs behind the identity gate; the uid comes from the
// verified token, never the body.
func (h *UserHandler) CreateProfile(c echo.Context) error {
	var req createProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.Internal("Error creating user profile", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, errors.Internal("Error creating user profile", err))
	}

	uid, _ := c.Get("uid").(string)

	email := req.Email
	if email == "" {
		email, _ = c.Get("email").(string)
	}

	user, err := h.userUseCase.CreateProfile(c.Request().Context(), usecase.CreateProfileInput{
		FirebaseUID: uid,
		Email:       email,
		DisplayName: req.DisplayName,
		PhotoURL:    req.PhotoURL,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return c.JSON(http.StatusCreated, createProfileResponse{
		Message: "User profile created successfully",
		User:    user,
	})
}

func (h *UserHandler) GetProfile(c echo.Context) error {
	uid, _ := c.Get("uid").(string)

	user, err := h.userUseCase.GetProfile(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, user)
}

func (h *UserHandler) UpdateProfile(c echo.Context) error {
	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return response.Error(c, errors.Internal("Error updating user profile", err))
	}

	if err := c.Validate(&req); err != nil {
		return response.Error(c, errors.Internal("Error updating user profile", err))
	}

	uid, _ := c.Get("uid").(string)

	user, err := h.userUseCase.UpdateProfile(c.Request().Context(), uid, usecase.UpdateProfileInput{
		DisplayName:        req.DisplayName,
		PhotoURL:           req.PhotoURL,
		Phone:              req.Phone,
		Location:           req.Location,
		LanguagePreference: req.LanguagePreference,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.OK(c, user)
}
