package media

import (
	"context"
	"mime/multipart"

	"github.com/gin-gonic/gin"

	"github.com/opencivic/civicmap/internal/pkg/cloudinary"
	"github.com/opencivic/civicmap/internal/pkg/logger"
	"github.com/opencivic/civicmap/internal/pkg/response"
)

// Uploader is the storage surface the handler needs. The cloudinary
// service satisfies it.
type Uploader interface {
	UploadImage(ctx context.Context, file multipart.File, filename string) (*cloudinary.UploadResult, error)
}

type Handler struct {
	uploader Uploader
}

func NewHandler(uploader Uploader) *Handler {
	return &Handler{uploader: uploader}
}

// Upload godoc
// @Summary Upload a report photo
// @Description Accepts one image file and returns its hosted URL for use as photo_url in a report submission
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file (jpg, jpeg, png, gif, webp; max 5 MB)"
// @Success 201 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 422 {object} response.ErrorResponse
// @Failure 503 {object} response.ErrorResponse
// @Router /media/upload [post]
func (h *Handler) Upload(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		response.BadRequest(c, "No file provided", "MISSING_FILE")
		return
	}

	if err := cloudinary.ValidateImageFile(header); err != nil {
		response.ValidationError(c, err.Error(), "INVALID_FILE")
		return
	}

	file, err := header.Open()
	if err != nil {
		response.BadRequest(c, "Failed to read uploaded file", "INVALID_FILE")
		return
	}
	defer file.Close()

	result, err := h.uploader.UploadImage(c.Request.Context(), file, header.Filename)
	if err != nil {
		logger.Error("Photo upload failed: %v", err)
		response.ServiceUnavailable(c, "Failed to upload photo", "UPLOAD_FAILED")
		return
	}

	response.Created(c, gin.H{
		"url":       result.URL,
		"public_id": result.PublicID,
		"width":     result.Width,
		"height":    result.Height,
		"format":    result.Format,
	})
}
