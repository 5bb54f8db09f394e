package router

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/noah-isme/colleague-student-api/internal/models"
	"github.com/noah-isme/colleague-student-api/internal/service"
	"github.com/noah-isme/colleague-student-api/pkg/config"
	appErrors "github.com/noah-isme/colleague-student-api/pkg/errors"
)

const testSecret = "router-secret"

func testConfig() *config.Config {
	return &config.Config{
		Env:      config.EnvDevelopment,
		Versions: config.VersionConfig{DefaultVersion: 1, MediaVendor: "hedtech.integration"},
		Metrics:  config.MetricsConfig{Enabled: true},
	}
}

func newTestRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	r, mock, _ := newObservedRouter(t, service.NewMetricsService())
	return r, mock
}

func newObservedRouter(t *testing.T, metrics *service.MetricsService) (*gin.Engine, sqlmock.Sqlmock, *observer.ObservedLogs) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	core, logs := observer.New(zapcore.DebugLevel)
	r := New(Dependencies{
		Config:  testConfig(),
		Logger:  zap.New(core),
		DB:      sqlx.NewDb(db, "postgres"),
		Metrics: metrics,
		Auth:    service.NewAuthService(service.AuthConfig{AccessTokenSecret: testSecret}),
	})
	return r, mock, logs
}

func token(t *testing.T, role models.UserRole, expires time.Time) string {
	t.Helper()
	claims := models.JWTClaims{
		PersonID: "0001234",
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expires),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func send(r *gin.Engine, method, target, body, bearer string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestOperationalRoutes(t *testing.T) {
	r, _ := newTestRouter(t)

	assert.Equal(t, http.StatusOK, send(r, http.MethodGet, "/health", "", "", nil).Code)
	assert.Equal(t, http.StatusOK, send(r, http.MethodGet, "/ready", "", "", nil).Code)
	assert.Equal(t, http.StatusOK, send(r, http.MethodGet, "/metrics", "", "", nil).Code)
	assert.Equal(t, http.StatusNotFound, send(r, http.MethodGet, "/no-such-route", "", "", nil).Code)
}

func TestReferenceRouteEndToEnd(t *testing.T) {
	r, mock := newTestRouter(t)
	mock.ExpectQuery("SELECT code, description FROM cap_sizes ORDER BY code").
		WillReturnRows(sqlmock.NewRows([]string{"code", "description"}).
			AddRow("SM", "Small").
			AddRow("LG", "Large"))

	w := send(r, http.MethodGet, "/cap-sizes", "", token(t, models.RoleStudent, time.Now().Add(time.Hour)), nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"code":"SM","description":"Small"},{"code":"LG","description":"Large"}]`, w.Body.String())
	assert.Equal(t, "application/vnd.hedtech.integration.v1+json", w.Header().Get("X-Media-Type"))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRoutesRequireToken(t *testing.T) {
	r, _ := newTestRouter(t)

	w := send(r, http.MethodGet, "/cap-sizes", "", "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = send(r, http.MethodGet, "/cap-sizes", "", token(t, models.RoleStudent, time.Now().Add(-time.Minute)), nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), appErrors.SessionExpiredMessage)
}

func TestUnsupportedVersionIsNotAcceptable(t *testing.T) {
	r, _ := newTestRouter(t)

	w := send(r, http.MethodGet, "/degrees", "", token(t, models.RoleStudent, time.Now().Add(time.Hour)),
		map[string]string{"Accept": "application/vnd.hedtech.integration.v7+json"})

	assert.Equal(t, http.StatusNotAcceptable, w.Code)
}

func TestPlaceholderWritesAreRefused(t *testing.T) {
	r, mock := newTestRouter(t)
	bearer := token(t, models.RoleFaculty, time.Now().Add(time.Hour))

	for _, res := range PlaceholderResources {
		w := send(r, http.MethodPost, "/"+res.Name, `{"id":"x"}`, bearer, nil)
		assert.Equal(t, http.StatusMethodNotAllowed, w.Code, res.Name)
		assert.Contains(t, w.Body.String(), "Operation not supported.")

		w = send(r, http.MethodGet, "/"+res.Name, "", bearer, nil)
		assert.Equal(t, http.StatusOK, w.Code, res.Name)
		assert.JSONEq(t, `[]`, w.Body.String())
	}
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestWritesRequireFaculty(t *testing.T) {
	r, mock := newTestRouter(t)
	bearer := token(t, models.RoleStudent, time.Now().Add(time.Hour))

	w := send(r, http.MethodPut, "/section-attendances", `{"sectionId":"SEC-1"}`, bearer, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	w = send(r, http.MethodPut, "/sections/SEC-1/textbooks", `{"textbooks":[]}`, bearer, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMiddlewareRejectionsAreLoggedOnce(t *testing.T) {
	cases := []struct {
		name    string
		method  string
		target  string
		body    string
		bearer  func(t *testing.T) string
		headers map[string]string
		status  int
		code    string
	}{
		{
			name:   "expired token",
			method: http.MethodGet,
			target: "/cap-sizes",
			bearer: func(t *testing.T) string { return token(t, models.RoleStudent, time.Now().Add(-time.Minute)) },
			status: http.StatusUnauthorized,
			code:   appErrors.ErrSessionExpired.Code,
		},
		{
			name:    "unsupported media type",
			method:  http.MethodGet,
			target:  "/cap-sizes",
			bearer:  func(t *testing.T) string { return token(t, models.RoleStudent, time.Now().Add(time.Hour)) },
			headers: map[string]string{"Accept": "application/vnd.hedtech.integration.v9+json"},
			status:  http.StatusNotAcceptable,
			code:    appErrors.ErrNotAcceptable.Code,
		},
		{
			name:   "student writing attendance",
			method: http.MethodPut,
			target: "/section-attendances",
			body:   `{"sectionId":"SEC-1"}`,
			bearer: func(t *testing.T) string { return token(t, models.RoleStudent, time.Now().Add(time.Hour)) },
			status: http.StatusForbidden,
			code:   appErrors.ErrForbidden.Code,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			metrics := service.NewMetricsService()
			r, _, logs := newObservedRouter(t, metrics)

			w := send(r, tc.method, tc.target, tc.body, tc.bearer(t), tc.headers)

			require.Equal(t, tc.status, w.Code)
			require.Equal(t, 1, logs.Len())
			assert.Equal(t, tc.code, logs.All()[0].ContextMap()["code"])
			assert.Contains(t, scrape(t, metrics), `code="`+tc.code+`"`)
		})
	}
}

func scrape(t *testing.T, metrics *service.MetricsService) string {
	t.Helper()
	w := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	return w.Body.String()
}
