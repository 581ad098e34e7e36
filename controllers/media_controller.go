package controllers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/pressline/blogapi/models"
	"github.com/pressline/blogapi/utils"
)

// maxUploadSize caps raw media bodies at 50MB.
const maxUploadSize = 50 * 1024 * 1024

// MediaController manages uploaded media files and their records.
type MediaController struct {
	db       *gorm.DB
	mediaDir string
}

// NewMediaController creates a new MediaController writing files under
// mediaDir.
func NewMediaController(db *gorm.DB, mediaDir string) *MediaController {
	return &MediaController{db: db, mediaDir: mediaDir}
}

// Show returns a single media record.
func (m *MediaController) Show(ctx *gin.Context) {
	var media models.Media
	if err := m.db.First(&media, ctx.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Message(ctx, http.StatusNotFound, "Media not found")
			return
		}
		respondError(ctx, err, "failed to load media")
		return
	}
	ctx.JSON(http.StatusOK, media)
}

// List returns all media records without pagination.
func (m *MediaController) List(ctx *gin.Context) {
	var media []models.Media
	if err := m.db.Order("id").Find(&media).Error; err != nil {
		respondError(ctx, err, "failed to list media")
		return
	}
	ctx.JSON(http.StatusOK, media)
}

// Create stores a raw binary request body as a media file. The filename is
// random and the extension is sniffed from the content, never taken from the
// client.
func (m *MediaController) Create(ctx *gin.Context) {
	ctx.Request.Body = http.MaxBytesReader(ctx.Writer, ctx.Request.Body, maxUploadSize)
	body, err := ctx.GetRawData()
	if err != nil {
		utils.Message(ctx, http.StatusBadRequest, "failed to read request body")
		return
	}
	if len(body) == 0 {
		utils.Message(ctx, http.StatusBadRequest, "binary data required")
		return
	}

	name, err := m.storeFile(body)
	if err != nil {
		respondError(ctx, err, "failed to store file")
		return
	}

	media := models.Media{Name: name}
	if msg := utils.ValidateStruct(&media); msg != "" {
		// The written file stays on disk; an orphan file is preferable to
		// losing an upload to a transient rollback failure.
		utils.Message(ctx, http.StatusBadRequest, msg)
		return
	}

	if err := m.db.Create(&media).Error; err != nil {
		respondError(ctx, err, "failed to save media")
		return
	}
	utils.Result(ctx, http.StatusCreated, "Media created", media)
}

// Delete removes a media record. The file itself stays on disk.
func (m *MediaController) Delete(ctx *gin.Context) {
	var media models.Media
	if err := m.db.First(&media, ctx.Param("id")).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.Message(ctx, http.StatusNotFound, "Media not found")
			return
		}
		respondError(ctx, err, "failed to load media")
		return
	}

	if err := m.db.Delete(&media).Error; err != nil {
		respondError(ctx, err, "failed to delete media")
		return
	}
	utils.Message(ctx, http.StatusOK, "Media deleted")
}

// storeFile writes content to a temporary file under the media directory,
// sniffs the extension from the bytes and renames into place. Returns the
// final filename.
func (m *MediaController) storeFile(content []byte) (string, error) {
	if err := os.MkdirAll(m.mediaDir, 0o755); err != nil {
		return "", badRequest("File can not be opened")
	}

	tmpPath := filepath.Join(m.mediaDir, uuid.NewString()+".tmp")
	if err := os.WriteFile(tmpPath, content, 0o644); err != nil {
		return "", badRequest("File can not be opened")
	}

	ext := mimetype.Detect(content).Extension()
	if ext == "" {
		ext = ".bin"
	}

	name := uuid.NewString() + ext
	if err := os.Rename(tmpPath, filepath.Join(m.mediaDir, name)); err != nil {
		_ = os.Remove(tmpPath)
		return "", badRequest("File can not be opened")
	}
	return name, nil
}
