package media

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/opencivic/civicmap/internal/pkg/cloudinary"
)

type fakeUploader struct {
	fail   bool
	result *cloudinary.UploadResult
	calls  int
}

func (f *fakeUploader) UploadImage(ctx context.Context, file multipart.File, filename string) (*cloudinary.UploadResult, error) {
	f.calls++
	if f.fail {
		return nil, fmt.Errorf("upload rejected")
	}
	return f.result, nil
}

func setupMediaRouter(uploader Uploader) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/media/upload", NewHandler(uploader).Upload)
	return router
}

func multipartUpload(t *testing.T, router *gin.Engine, field, filename string, content []byte) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/media/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &parsed))
	return w, parsed
}

func TestUploadReturnsHostedURL(t *testing.T) {
	uploader := &fakeUploader{result: &cloudinary.UploadResult{
		URL:      "https://res.cloudinary.com/demo/image/upload/reports/abc.jpg",
		PublicID: "civicmap/reports/abc",
		Width:    800,
		Height:   600,
		Format:   "jpg",
	}}
	router := setupMediaRouter(uploader)

	w, body := multipartUpload(t, router, "file", "pothole.jpg", []byte("fake image bytes"))
	require.Equal(t, http.StatusCreated, w.Code)

	data := body["data"].(map[string]interface{})
	require.Equal(t, uploader.result.URL, data["url"])
	require.Equal(t, "civicmap/reports/abc", data["public_id"])
	require.Equal(t, 1, uploader.calls)
}

func TestUploadRequiresFile(t *testing.T) {
	router := setupMediaRouter(&fakeUploader{})

	w, body := multipartUpload(t, router, "photo", "pothole.jpg", []byte("x"))
	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Equal(t, "MISSING_FILE", body["code"])
}

func TestUploadRejectsWrongType(t *testing.T) {
	uploader := &fakeUploader{}
	router := setupMediaRouter(uploader)

	w, body := multipartUpload(t, router, "file", "report.pdf", []byte("%PDF-"))
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.Equal(t, "INVALID_FILE", body["code"])
	require.Zero(t, uploader.calls)
}

func TestUploadBackendFailure(t *testing.T) {
	router := setupMediaRouter(&fakeUploader{fail: true})

	w, body := multipartUpload(t, router, "file", "pothole.png", []byte("x"))
	require.Equal(t, http.StatusServiceUnavailable, w.Code)
	require.Equal(t, "UPLOAD_FAILED", body["code"])
}
