package version

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/colleague-student-api/pkg/errors"
)

func serve(t *testing.T, n *Negotiator, headers map[string]string, supported ...int) (*httptest.ResponseRecorder, int) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	var seen int
	r := gin.New()
	r.GET("/degrees", n.Require(supported...), func(c *gin.Context) {
		seen = Value(c)
		c.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/degrees", nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	r.ServeHTTP(w, req)
	return w, seen
}

func TestRequireDefaultsToLatestSupported(t *testing.T) {
	n := NewNegotiator("", 1)
	w, seen := serve(t, n, nil, 1, 2)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 2, seen)
	assert.Equal(t, "application/vnd.hedtech.integration.v2+json", w.Header().Get(HeaderMediaType))
}

func TestRequireHonoursAcceptHeader(t *testing.T) {
	n := NewNegotiator("hedtech.integration", 1)
	w, seen := serve(t, n, map[string]string{
		"Accept": "text/html, application/vnd.hedtech.integration.v1.0.0+json",
	}, 1, 2)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, seen)
}

func TestRequireMediaTypeHeaderWins(t *testing.T) {
	n := NewNegotiator("hedtech.integration", 1)
	_, seen := serve(t, n, map[string]string{
		"Accept":        "application/vnd.hedtech.integration.v1+json",
		HeaderMediaType: "application/vnd.hedtech.integration.v2+json",
	}, 1, 2)

	assert.Equal(t, 2, seen)
}

func TestRequireRejectsUnsupportedVersion(t *testing.T) {
	n := NewNegotiator("hedtech.integration", 1)
	w, seen := serve(t, n, map[string]string{
		"Accept": "application/vnd.hedtech.integration.v9+json",
	})

	assert.Equal(t, http.StatusNotAcceptable, w.Code)
	assert.Zero(t, seen)
	assert.Contains(t, w.Body.String(), "NOT_ACCEPTABLE")
}

func TestRequireIgnoresForeignVendors(t *testing.T) {
	n := NewNegotiator("hedtech.integration", 1)
	w, seen := serve(t, n, map[string]string{"Accept": "application/vnd.other.v7+json"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 1, seen)
}

func TestRequireRoutesRejectionThroughHandler(t *testing.T) {
	var rejected []error
	n := NewNegotiator("hedtech.integration", 1, WithRejectHandler(func(c *gin.Context, err error) {
		rejected = append(rejected, err)
		c.Status(http.StatusNotAcceptable)
	}))
	w, _ := serve(t, n, map[string]string{"Accept": "application/vnd.hedtech.integration.v9+json"})

	assert.Equal(t, http.StatusNotAcceptable, w.Code)
	require.Len(t, rejected, 1)
	assert.ErrorIs(t, rejected[0], appErrors.ErrNotAcceptable)
}
