package router

import (
	"github.com/labstack/echo/v4"

	"github.com/KODEGAS/vGurad-main-sub000/internal/adapter/api/handler"
)

func SetupQuestionRouter(e *echo.Echo) {
	questionHandler := handler.GetQuestionHandler()

	e.GET("/api/questions", questionHandler.ListQuestions)
	e.POST("/api/questions", questionHandler.CreateQuestion)
}
