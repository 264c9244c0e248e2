package router

import (
	"github.com/labstack/echo/v4"

	"github.com/KODEGAS/vGurad-main-sub000/internal/adapter/api/handler"
	"github.com/KODEGAS/vGurad-main-sub000/internal/adapter/api/middleware"
)

// SetupAuthRouter wires the two identity-gated profile endpoints.
func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	userHandler := handler.GetUserHandler()

	e.POST("/api/auth/create-user-profile", userHandler.CreateProfile, authMiddleware.Authenticate)
	e.GET("/api/user-profile", userHandler.GetProfile, authMiddleware.Authenticate)
	e.PUT("/api/user-profile", userHandler.UpdateProfile, authMiddleware.Authenticate)
}
