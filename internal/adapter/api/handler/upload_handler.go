package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/KODEGAS/vGurad-main-sub000/internal/usecase"
	"github.com/KODEGAS/vGurad-main-sub000/pkg/errors"
	"github.com/KODEGAS/vGurad-main-sub000/pkg/response"
)

type UploadHandler struct {
	uploader usecase.FileUploader
}

func NewUploadHandler(uploader usecase.FileUploader) *UploadHandler {
	return &UploadHandler{
		uploader: uploader,
	}
}

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

// Upload accepts a multipart image and stores it under the diseases/ or
// products/ folder, returning the public URL for the document's image_url
// field.
func (h *UploadHandler) Upload(c echo.Context) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.Error(c, errors.BadRequest("Image file is required", err))
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if !allowedImageTypes[contentType] {
		return response.Error(c, errors.BadRequest("Unsupported image type", nil))
	}

	folder := c.FormValue("folder")
	if folder != "diseases" && folder != "products" {
		folder = "diseases"
	}

	file, err := fileHeader.Open()
	if err != nil {
		return response.Error(c, errors.Internal("Failed to read uploaded file", err))
	}
	defer file.Close()

	url, err := h.uploader.UploadImage(c.Request().Context(), file, contentType, folder)
	if err != nil {
		return response.Error(c, errors.Internal("Failed to upload image", err))
	}

	return c.JSON(http.StatusOK, map[string]string{"url": url})
}
