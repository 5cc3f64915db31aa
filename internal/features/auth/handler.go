package auth

import (
	"github.com/gin-gonic/gin"

	"github.com/opencivic/civicmap/internal/pkg/logger"
	"github.com/opencivic/civicmap/internal/pkg/response"
	"github.com/opencivic/civicmap/internal/pkg/token"
)

type Handler struct {
	verifier TokenVerifier
	registry AdminRegistry
	tokenCfg *token.Config
}

func NewHandler(verifier TokenVerifier, registry AdminRegistry, tokenCfg *token.Config) *Handler {
	return &Handler{verifier: verifier, registry: registry, tokenCfg: tokenCfg}
}

// Login godoc
// @Summary Exchange a Firebase ID token for a session token
// @Description Verifies the ID token, requires an admin grant in the admins registry, and issues an API session JWT
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Firebase ID token"
// @Success 200 {object} response.SuccessResponse{data=LoginResponse}
// @Failure 400 {object} response.ErrorResponse
// @Failure 401 {object} response.ErrorResponse
// @Failure 403 {object} response.ErrorResponse
// @Failure 503 {object} response.ErrorResponse
// @Router /auth/login [post]
func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BindJSONError(c, err)
		return
	}

	identity, err := h.verifier.Verify(c.Request.Context(), req.IDToken)
	if err != nil {
		response.Unauthorized(c, "Invalid credentials", "INVALID_CREDENTIALS")
		return
	}

	isAdmin, err := h.registry.IsAdmin(c.Request.Context(), identity.UID)
	if err != nil {
		logger.Error("Admin grant lookup failed for %s: %v", identity.UID, err)
		response.ServiceUnavailable(c, "Failed to verify admin access", "BACKEND_UNAVAILABLE")
		return
	}
	if !isAdmin {
		logger.Warn("Login rejected for non-admin %s", identity.UID)
		response.Forbidden(c, "Admin access required", "NOT_ADMIN")
		return
	}

	sessionToken, err := token.Generate(identity.UID, identity.Email, h.tokenCfg)
	if err != nil {
		response.InternalServerError(c, "Failed to issue session token", "TOKEN_ERROR")
		return
	}

	response.Success(c, LoginResponse{
		Token:     sessionToken,
		ExpiresIn: int(h.tokenCfg.Expiry.Seconds()),
		Admin:     *identity,
	})
}

// Me godoc
// @Summary Current admin identity
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.SuccessResponse{data=Identity}
// @Failure 401 {object} response.ErrorResponse
// @Router /auth/me [get]
func (h *Handler) Me(c *gin.Context) {
	uid := c.GetString("adminID")
	email := c.GetString("email")
	if uid == "" {
		response.Unauthorized(c, "Authentication required", "AUTH_REQUIRED")
		return
	}

	response.Success(c, Identity{UID: uid, Email: email})
}
