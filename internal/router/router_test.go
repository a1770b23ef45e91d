package router_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"webpconv/internal/handler"
	"webpconv/internal/port"
	"webpconv/internal/router"
	"webpconv/mocks"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestSetup_Routes(t *testing.T) {
	svc := new(mocks.MockFileService)
	r := router.Setup(handler.NewFileHandler(svc), []string{"http://localhost:5173"})

	svc.On("CreateUpload", mock.Anything, "photo.png", "image/png").
		Return(&port.PresignedPost{URL: "https://signed", Fields: map[string]string{}}, nil)
	svc.On("GetDownloadURL", mock.Anything, "photo.png").Return("https://signed", nil)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodGet, "/healthz", http.NoBody)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodPost, "/file", strings.NewReader(`{"filename":"photo.png","ftype":"image/png"}`))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Origin", "http://localhost:5173")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w = httptest.NewRecorder()
	req, _ = http.NewRequest(http.MethodGet, "/file/photo.png", http.NoBody)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"signedUrl":"https://signed"`)

	svc.AssertExpectations(t)
}

func TestSetup_PreflightBypassesHandlers(t *testing.T) {
	svc := new(mocks.MockFileService)
	r := router.Setup(handler.NewFileHandler(svc), []string{"http://localhost:5173"})

	w := httptest.NewRecorder()
	req, _ := http.NewRequest(http.MethodOptions, "/file", http.NoBody)
	req.Header.Set("Origin", "http://localhost:5173")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	svc.AssertNotCalled(t, "CreateUpload", mock.Anything, mock.Anything, mock.Anything)
}
