package router

import (
	"github.com/labstack/echo/v4"

	"github.com/KODEGAS/vGurad-main-sub000/internal/adapter/api/handler"
	"github.com/KODEGAS/vGurad-main-sub000/internal/adapter/api/middleware"
)

func SetupTipRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	tipHandler := handler.GetTipHandler()

	e.GET("/api/tips", tipHandler.ListTips)
	e.GET("/api/tips/:id", tipHandler.GetTip)

	admin := e.Group("/api/tips")
	admin.Use(authMiddleware.Authenticate)
	admin.Use(adminMiddleware.AdminOnly)

	admin.POST("", tipHandler.CreateTip)
	admin.PUT("/:id", tipHandler.UpdateTip)
	admin.DELETE("/:id", tipHandler.DeleteTip)
}
