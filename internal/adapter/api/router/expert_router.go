package router

import (
	"github.com/labstack/echo/v4"

	"github.com/KODEGAS/vGurad-main-sub000/internal/adapter/api/handler"
)

func SetupExpertRouter(e *echo.Echo) {
	expertHandler := handler.GetExpertHandler()

	e.GET("/api/experts", expertHandler.ListExperts)
	e.GET("/api/experts/:id", expertHandler.GetExpert)
}
