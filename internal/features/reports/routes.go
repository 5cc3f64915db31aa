package reports

import (
	"time"

	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"github.com/opencivic/civicmap/internal/config"
	"github.com/opencivic/civicmap/internal/middleware"
	"github.com/opencivic/civicmap/internal/pkg/ratelimit"
)

func RegisterRoutes(router *gin.RouterGroup, client *firestore.Client, cfg *config.Config) {
	repo := NewRepository(NewFirestoreStore(client))
	handler := NewHandler(repo)

	// Submission abuse guard: 10 reports per client IP per hour.
	submitLimiter := ratelimit.New(10, time.Hour)
	submitLimiter.StartCleanup(10 * time.Minute)

	group := router.Group("/reports")
	{
		group.GET("", handler.List)
		group.GET("/summary", handler.Summary)
		group.GET("/meta", handler.Meta)
		group.GET("/:id", handler.Get)
		group.POST("", ratelimit.Middleware(submitLimiter), handler.Create)

		admin := group.Group("")
		admin.Use(middleware.AdminAuth(cfg.JWTSecret))
		{
			admin.PATCH("/:id/status", handler.UpdateStatus)
			admin.POST("/:id/advance", handler.Advance)
			admin.POST("/bulk-status", handler.BulkStatus)
		}
	}
}
