package response

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	apperrors "github.com/KODEGAS/vGurad-main-sub000/pkg/errors"
)

// ErrorBody is the error shape every handler emits: a human-readable message
// plus the underlying error string when one exists.
type ErrorBody struct {
	Message string `json:"message"`
	Err     string `json:"error,omitempty"`
}

type MessageBody struct {
	Message string `json:"message"`
}

// OK writes the payload as-is with status 200. List endpoints return bare
// arrays and detail endpoints return bare documents, matching the public API.
func OK(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusOK, data)
}

func Created(c echo.Context, data interface{}) error {
	return c.JSON(http.StatusCreated, data)
}

func Message(c echo.Context, status int, message string) error {
	return c.JSON(status, MessageBody{Message: message})
}

// Error translates an AppError into its HTTP status and error body. Anything
// that is not an AppError is reported as a 500.
func Error(c echo.Context, err error) error {
	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		body := ErrorBody{Message: appErr.Message}
		if appErr.Err != nil {
			body.Err = appErr.Err.Error()
		}
		return c.JSON(appErr.Status, body)
	}

	return c.JSON(http.StatusInternalServerError, ErrorBody{
		Message: "Internal server error",
		Err:     err.Error(),
	})
}
