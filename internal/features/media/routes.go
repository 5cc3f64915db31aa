package media

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/opencivic/civicmap/internal/config"
	"github.com/opencivic/civicmap/internal/pkg/cloudinary"
	"github.com/opencivic/civicmap/internal/pkg/logger"
	"github.com/opencivic/civicmap/internal/pkg/ratelimit"
)

// RegisterRoutes wires the media endpoints. Upload is skipped when no
// Cloudinary credentials are configured so the rest of the API can run
// without them.
func RegisterRoutes(router *gin.RouterGroup, cfg *config.Config) {
	service, err := cloudinary.NewService(
		cfg.CloudinaryCloudName,
		cfg.CloudinaryAPIKey,
		cfg.CloudinaryAPISecret,
		"civicmap",
	)
	if err != nil {
		logger.Warn("Photo uploads disabled: %v", err)
		return
	}

	uploadLimiter := ratelimit.New(20, time.Hour)
	uploadLimiter.StartCleanup(10 * time.Minute)

	handler := NewHandler(service)

	group := router.Group("/media")
	{
		group.POST("/upload", ratelimit.Middleware(uploadLimiter), handler.Upload)
	}
}
