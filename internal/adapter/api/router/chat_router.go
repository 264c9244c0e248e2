package router

import (
	"github.com/labstack/echo/v4"

	"github.com/KODEGAS/vGurad-main-sub000/internal/adapter/api/handler"
)

func SetupChatRouter(e *echo.Echo) {
	chatHandler := handler.GetChatHandler()

	e.POST("/api/chat", chatHandler.Chat)
}
