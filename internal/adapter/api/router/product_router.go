package router

import (
	"github.com/labstack/echo/v4"

	"github.com/KODEGAS/vGurad-main-sub000/internal/adapter/api/handler"
	"github.com/KODEGAS/vGurad-main-sub000/internal/adapter/api/middleware"
)

func SetupProductRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	productHandler := handler.GetProductHandler()

	e.GET("/api/products", productHandler.ListProducts)
	e.GET("/api/products/:id", productHandler.GetProduct)
	e.POST("/api/products", productHandler.CreateProduct)
	e.PUT("/api/products/:id", productHandler.UpdateProduct)
	e.DELETE("/api/products/:id", productHandler.DeleteProduct)

	// Approval is the admin console's lever
	approval := e.Group("/api/products")
	approval.Use(authMiddleware.Authenticate)
	approval.Use(adminMiddleware.AdminOnly)
	approval.PUT("/:id/approval", productHandler.UpdateApproval)
}
