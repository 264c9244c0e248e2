package router

import (
	"github.com/labstack/echo/v4"

	"github.com/KODEGAS/vGurad-main-sub000/internal/adapter/api/handler"
	"github.com/KODEGAS/vGurad-main-sub000/internal/adapter/api/middleware"
)

func SetupDiseaseRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	diseaseHandler := handler.GetDiseaseHandler()

	// Public catalog
	e.GET("/api/diseases", diseaseHandler.ListDiseases)
	e.GET("/api/diseases/:id", diseaseHandler.GetDisease)

	// Admin writes
	admin := e.Group("/api/diseases")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.POST("", diseaseHandler.CreateDisease)
	admin.PUT("/:id", diseaseHandler.UpdateDisease)
	admin.DELETE("/:id", diseaseHandler.DeleteDisease)
}
