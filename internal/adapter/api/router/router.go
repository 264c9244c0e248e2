package router

import (
	"github.com/labstack/echo/v4"

	"github.com/KODEGAS/vGurad-main-sub000/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	SetupDiseaseRouter(e, authMiddleware, adminMiddleware)
	SetupTipRouter(e, authMiddleware, adminMiddleware)
	SetupExpertRouter(e)
	SetupQuestionRouter(e)
	SetupProductRouter(e, authMiddleware, adminMiddleware)
	SetupNoteRouter(e, authMiddleware)
	SetupAuthRouter(e, authMiddleware)
	SetupChatRouter(e)
	SetupUploadRouter(e, authMiddleware)
	SetupHealthRouter(e)
}
