package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/opencivic/civicmap/internal/backend"
	"github.com/opencivic/civicmap/internal/config"
	"github.com/opencivic/civicmap/internal/features/auth"
	"github.com/opencivic/civicmap/internal/features/media"
	"github.com/opencivic/civicmap/internal/features/reports"
)

// SetupRoutes registers every feature under /api/v1.
func SetupRoutes(router *gin.Engine, clients *backend.Clients, cfg *config.Config) {
	v1 := router.Group("/api/v1")

	reports.RegisterRoutes(v1, clients.Firestore, cfg)
	auth.RegisterRoutes(v1, clients, cfg)
	media.RegisterRoutes(v1, cfg)
}
