package auth

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/opencivic/civicmap/internal/backend"
	"github.com/opencivic/civicmap/internal/config"
	"github.com/opencivic/civicmap/internal/middleware"
	"github.com/opencivic/civicmap/internal/pkg/ratelimit"
	"github.com/opencivic/civicmap/internal/pkg/token"
)

// RegisterRoutes wires the auth endpoints.
func RegisterRoutes(router *gin.RouterGroup, clients *backend.Clients, cfg *config.Config) {
	handler := NewHandler(
		NewFirebaseVerifier(clients.Auth),
		NewFirestoreRegistry(clients.Firestore),
		token.DefaultConfig(cfg.JWTSecret, cfg.JWTExpireHours),
	)

	loginLimiter := ratelimit.New(10, 15*time.Minute)
	loginLimiter.StartCleanup(10 * time.Minute)

	group := router.Group("/auth")
	{
		group.POST("/login", ratelimit.Middleware(loginLimiter), handler.Login)
		group.GET("/me", middleware.AdminAuth(cfg.JWTSecret), handler.Me)
	}
}
