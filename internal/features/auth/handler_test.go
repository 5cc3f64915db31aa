package auth

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/opencivic/civicmap/internal/middleware"
	"github.com/opencivic/civicmap/internal/pkg/token"
	apperrors "github.com/opencivic/civicmap/pkg/errors"
)

const testSecret = "test-secret"

type fakeVerifier struct {
	identity *Identity
}

func (f *fakeVerifier) Verify(ctx context.Context, idToken string) (*Identity, error) {
	if f.identity == nil {
		return nil, fmt.Errorf("%w: invalid id token", apperrors.ErrUnauthorized)
	}
	return f.identity, nil
}

type fakeRegistry struct {
	grants map[string]bool
	fail   bool
}

func (f *fakeRegistry) IsAdmin(ctx context.Context, uid string) (bool, error) {
	if f.fail {
		return false, fmt.Errorf("%w: check admin grant", apperrors.ErrUnavailable)
	}
	return f.grants[uid], nil
}

func setupAuthRouter(verifier TokenVerifier, registry AdminRegistry) *gin.Engine {
	gin.SetMode(gin.TestMode)
	h := NewHandler(verifier, registry, token.DefaultConfig(testSecret, 24))

	router := gin.New()
	router.POST("/auth/login", h.Login)
	router.GET("/auth/me", middleware.AdminAuth(testSecret), h.Me)
	return router
}

func postLogin(t *testing.T, router *gin.Engine, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/auth/login", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	return w, parsed
}

func TestLoginIssuesSessionToken(t *testing.T) {
	router := setupAuthRouter(
		&fakeVerifier{identity: &Identity{UID: "admin-1", Email: "admin@city.gov"}},
		&fakeRegistry{grants: map[string]bool{"admin-1": true}},
	)

	w, body := postLogin(t, router, gin.H{"id_token": "firebase-id-token"})
	require.Equal(t, http.StatusOK, w.Code)

	data := body["data"].(map[string]interface{})
	require.NotEmpty(t, data["token"])
	require.Equal(t, float64(24*60*60), data["expires_in"])

	claims, err := token.Validate(data["token"].(string), testSecret)
	require.NoError(t, err)
	require.Equal(t, "admin-1", claims.AdminID)
	require.Equal(t, "admin@city.gov", claims.Email)
}

func TestLoginRejectsBadIDToken(t *testing.T) {
	router := setupAuthRouter(&fakeVerifier{}, &fakeRegistry{})

	w, body := postLogin(t, router, gin.H{"id_token": "garbage"})
	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.Equal(t, "INVALID_CREDENTIALS", body["code"])
}

func TestLoginRejectsNonAdmin(t *testing.T) {
	router := setupAuthRouter(
		&fakeVerifier{identity: &Identity{UID: "citizen-1", Email: "someone@example.com"}},
		&fakeRegistry{grants: map[string]bool{}},
	)

	w, body := postLogin(t, router, gin.H{"id_token": "firebase-id-token"})
	require.Equal(t, http.StatusForbidden, w.Code)
	require.Equal(t, "NOT_ADMIN", body["code"])
}

func TestLoginRegistryDown(t *testing.T) {
	router := setupAuthRouter(
		&fakeVerifier{identity: &Identity{UID: "admin-1"}},
		&fakeRegistry{fail: true},
	)

	w, body := postLogin(t, router, gin.H{"id_token": "firebase-id-token"})
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.Equal(t, "BACKEND_UNAVAILABLE", body["code"])
}

func TestLoginRequiresIDToken(t *testing.T) {
	router := setupAuthRouter(&fakeVerifier{}, &fakeRegistry{})

	w, _ := postLogin(t, router, gin.H{})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMeReturnsSessionIdentity(t *testing.T) {
	router := setupAuthRouter(&fakeVerifier{}, &fakeRegistry{})

	cfg := token.DefaultConfig(testSecret, 1)
	sessionToken, err := token.Generate("admin-1", "admin@city.gov", cfg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+sessionToken)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	data := parsed["data"].(map[string]interface{})
	require.Equal(t, "admin-1", data["uid"])
	require.Equal(t, "admin@city.gov", data["email"])
}

func TestMeRequiresToken(t *testing.T) {
	router := setupAuthRouter(&fakeVerifier{}, &fakeRegistry{})

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestExpiredSessionTokenRejected(t *testing.T) {
	router := setupAuthRouter(&fakeVerifier{}, &fakeRegistry{})

	cfg := token.DefaultConfig(testSecret, 1)
	cfg.Expiry = -time.Hour
	expired, err := token.Generate("admin-1", "admin@city.gov", cfg)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+expired)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusUnauthorized, w.Code)
}
