package cors

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newRouter(origins []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(New(origins))
	r.GET("/cap-sizes", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func TestCORSAllowedOrigin(t *testing.T) {
	r := newRouter([]string{"https://portal.example.edu/"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cap-sizes", nil)
	req.Header.Set("Origin", "https://portal.example.edu")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://portal.example.edu", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Expose-Headers"), "X-Media-Type")
}

func TestCORSRejectedOrigin(t *testing.T) {
	r := newRouter([]string{"https://portal.example.edu"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/cap-sizes", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	r.ServeHTTP(w, req)

	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
}

func TestCORSPreflight(t *testing.T) {
	r := newRouter(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/cap-sizes", nil)
	req.Header.Set("Origin", "https://anywhere.example.edu")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "https://anywhere.example.edu", w.Header().Get("Access-Control-Allow-Origin"))
}
