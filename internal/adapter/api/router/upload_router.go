package router

import (
	"github.com/labstack/echo/v4"

	"github.com/KODEGAS/vGurad-main-sub000/internal/adapter/api/handler"
	"github.com/KODEGAS/vGurad-main-sub000/internal/adapter/api/middleware"
)

func SetupUploadRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	uploadHandler := handler.GetUploadHandler()
	if uploadHandler == nil {
		// Storage bucket not configured; uploads disabled.
		return
	}

	e.POST("/api/upload", uploadHandler.Upload, authMiddleware.Authenticate)
}
