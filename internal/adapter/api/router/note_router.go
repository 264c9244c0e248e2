package router

import (
	"github.com/labstack/echo/v4"

	"github.com/KODEGAS/vGurad-main-sub000/internal/adapter/api/handler"
	"github.com/KODEGAS/vGurad-main-sub000/internal/adapter/api/middleware"
)

func SetupNoteRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	noteHandler := handler.GetNoteHandler()

	notes := e.Group("/api/notes")
	notes.Use(authMiddleware.Authenticate)

	notes.GET("", noteHandler.ListNotes)
	notes.POST("", noteHandler.CreateNote)
	notes.DELETE("/:id", noteHandler.DeleteNote)
}
