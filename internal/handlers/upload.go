package handlers

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"artify-backend/internal/config"
	"artify-backend/internal/models"
)

const maxUploadBytes = 10 * 1024 * 1024

var allowedImageExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".bmp":  true,
	".gif":  true,
}

type UploadHandler struct {
	uploadDir string
	baseURL   string
}

func NewUploadHandler(cfg *config.Config) *UploadHandler {
	return &UploadHandler{
		uploadDir: cfg.UploadDir,
		baseURL:   cfg.BaseURL,
	}
}

// Upload receives the customer photo and stores it under a fresh upload id.
// Order creation later copies the bytes into the database; the file on disk
// only needs to survive until then.
func (h *UploadHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "no file provided"})
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedImageExtensions[ext] {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: fmt.Sprintf("unsupported format: %s", ext),
		})
		return
	}

	if fileHeader.Size > maxUploadBytes {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "file must be under 10 MB"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to read upload"})
		return
	}
	defer file.Close()

	content, err := io.ReadAll(io.LimitReader(file, maxUploadBytes+1))
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to read upload"})
		return
	}
	if len(content) > maxUploadBytes {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "file must be under 10 MB"})
		return
	}

	uploadID := strings.ReplaceAll(uuid.New().String(), "-", "")[:12]
	dir := filepath.Join(h.uploadDir, uploadID)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to store upload"})
		return
	}

	filename := "photo" + ext
	if err := os.WriteFile(filepath.Join(dir, filename), content, 0o644); err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse{Error: "failed to store upload"})
		return
	}

	log.Printf("Upload %s stored (%d bytes)", uploadID, len(content))
	c.JSON(http.StatusOK, models.UploadResponse{
		ImageURL: fmt.Sprintf("%s/uploads/%s/%s", h.baseURL, uploadID, filename),
	})
}
