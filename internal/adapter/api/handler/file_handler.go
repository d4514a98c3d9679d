package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"assetdoor/internal/usecase"
	"assetdoor/pkg/errors"
	"assetdoor/pkg/logger"
	"assetdoor/pkg/response"
)

type FileHandler struct {
	fileUseCase *usecase.FileUseCase
}

func NewFileHandler(fileUseCase *usecase.FileUseCase) *FileHandler {
	return &FileHandler{
		fileUseCase: fileUseCase,
	}
}

func (h *FileHandler) UploadFile(c echo.Context) error {
	file, err := c.FormFile("file")
	if err != nil {
		logger.Error("Error getting file from form: %v", err)
		return response.Error(c, errors.BadRequest("Missing or invalid file", err))
	}

	src, err := file.Open()
	if err != nil {
		return response.Error(c, errors.BadRequest("Failed to read uploaded file", err))
	}
	defer src.Close()

	isPublic, _ := strconv.ParseBool(c.FormValue("public"))

	uid, ok := c.Get("uid").(string)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "Authentication required")
	}

	metadata, err := h.fileUseCase.UploadFile(c.Request().Context(), usecase.FileUploadInput{
		File:       src,
		Filename:   file.Filename,
		FileType:   file.Header.Get("Content-Type"),
		FileSize:   file.Size,
		EntityType: c.FormValue("entityType"),
		EntityID:   c.FormValue("entityId"),
		UploadedBy: uid,
		IsPublic:   isPublic,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, metadata)
}

func (h *FileHandler) DeleteFile(c echo.Context) error {
	id := c.Param("id")

	if err := h.fileUseCase.DeleteFile(c.Request().Context(), id); err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, map[string]interface{}{
		"message": "File deleted successfully",
	})
}
