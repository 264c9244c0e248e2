package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/KODEGAS/vGurad-main-sub000/internal/domain/entity"
	"github.com/KODEGAS/vGurad-main-sub000/internal/domain/repository"
	"github.com/KODEGAS/vGurad-main-sub000/pkg/response"
)

type AdminMiddleware struct {
	userRepo repository.UserRepository
}

func NewAdminMiddleware(userRepo repository.UserRepository) *AdminMiddleware {
	return &AdminMiddleware{
		userRepo: userRepo,
	}
}

func (m *AdminMiddleware) AdminOnly(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		uid, ok := c.Get("uid").(string)
		if !ok {
			return response.Message(c, http.StatusUnauthorized, "Authentication required")
		}

		user, err := m.userRepo.GetByUID(c.Request().Context(), uid)
		if err != nil {
			return response.Message(c, http.StatusInternalServerError, "Failed to verify admin privileges")
		}

		if user.Role != entity.RoleAdmin {
			return response.Message(c, http.StatusForbidden, "Admin privileges required")
		}

		return next(c)
	}
}
