package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/mernspace/catalog-service/internal/api/metrics"
	"github.com/mernspace/catalog-service/internal/core/ports"
)

const maxUploadSize = 5 * 1024 * 1024 // 5 MiB

var allowedImageTypes = map[string]struct{}{
	"image/jpeg": {},
	"image/jpg":  {},
	"image/png":  {},
	"image/webp": {},
	"image/gif":  {},
}

type uploadResponse struct {
	Message string     `json:"message"`
	Data    uploadData `json:"data"`
}

type uploadData struct {
	URL string `json:"url"`
	Key string `json:"key"`
}

// uploadImage reads the multipart "image" field, enforces the MIME
// allow-list and the size cap, and stores the file under folder. Shared by
// the product and topping upload endpoints.
func uploadImage(c echo.Context, storage ports.FileStorage, folder string) error {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "image field is required")
	}

	if fileHeader.Size > maxUploadSize {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "file size exceeds 5MB limit")
	}

	mimeType := fileHeader.Header.Get("Content-Type")
	if _, ok := allowedImageTypes[mimeType]; !ok {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid file type, only images are allowed (jpeg, jpg, png, webp, gif)")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return err
	}
	defer file.Close()

	data, err := io.ReadAll(io.LimitReader(file, maxUploadSize+1))
	if err != nil {
		return err
	}
	if len(data) > maxUploadSize {
		return echo.NewHTTPError(http.StatusRequestEntityTooLarge, "file size exceeds 5MB limit")
	}

	result, err := storage.Upload(c.Request().Context(), data, fileHeader.Filename, mimeType, folder)
	if err != nil {
		return err
	}

	metrics.AssetUploadsTotal.WithLabelValues(folder).Inc()

	return c.JSON(http.StatusCreated, uploadResponse{
		Message: "Image uploaded successfully",
		Data:    uploadData{URL: result.URL, Key: result.Key},
	})
}
