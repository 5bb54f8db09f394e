package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/colleague-student-api/internal/models"
	appErrors "github.com/noah-isme/colleague-student-api/pkg/errors"
)

type validatorStub struct {
	claims *models.JWTClaims
	err    error
}

func (v validatorStub) ValidateToken(string) (*models.JWTClaims, error) {
	return v.claims, v.err
}

func perform(r *gin.Engine, method, target string, headers map[string]string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	r.ServeHTTP(w, req)
	return w
}

func newEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

func TestJWTStoresClaims(t *testing.T) {
	r := newEngine()
	var seen *models.JWTClaims
	r.GET("/me", JWT(validatorStub{claims: &models.JWTClaims{PersonID: "0001"}}, nil), func(c *gin.Context) {
		seen = CurrentActor(c)
		c.Status(http.StatusOK)
	})

	w := perform(r, http.MethodGet, "/me", map[string]string{"Authorization": "Bearer abc"})
	require.Equal(t, http.StatusOK, w.Code)
	require.NotNil(t, seen)
	assert.Equal(t, "0001", seen.PersonID)
}

func TestJWTRejectsMissingOrMalformedHeader(t *testing.T) {
	r := newEngine()
	r.GET("/me", JWT(validatorStub{}, nil), func(c *gin.Context) { c.Status(http.StatusOK) })

	for _, header := range []string{"", "Basic abc", "Bearer "} {
		w := perform(r, http.MethodGet, "/me", map[string]string{"Authorization": header})
		assert.Equal(t, http.StatusUnauthorized, w.Code, header)
	}
}

func TestJWTExpiredTokenIsSessionExpired(t *testing.T) {
	r := newEngine()
	expired := appErrors.Wrap(errors.New("token is expired"), appErrors.ErrSessionExpired.Code, appErrors.ErrSessionExpired.Status, appErrors.SessionExpiredMessage)
	r.GET("/me", JWT(validatorStub{err: expired}, nil), func(c *gin.Context) { c.Status(http.StatusOK) })

	w := perform(r, http.MethodGet, "/me", map[string]string{"Authorization": "Bearer old"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), appErrors.SessionExpiredMessage)
	assert.NotContains(t, w.Body.String(), "token is expired")
}

type faultLog struct {
	errs []error
}

func (f *faultLog) write(c *gin.Context, err error) {
	f.errs = append(f.errs, err)
	c.JSON(appErrors.FromError(err).Status, gin.H{"code": appErrors.CodeOf(err)})
}

func TestRejectionsGoThroughFaultWriter(t *testing.T) {
	faults := &faultLog{}
	expired := appErrors.Clone(appErrors.ErrSessionExpired, "")
	r := newEngine()
	r.GET("/expired", JWT(validatorStub{err: expired}, faults.write), func(c *gin.Context) { c.Status(http.StatusOK) })
	r.GET("/anonymous", JWT(validatorStub{}, faults.write), func(c *gin.Context) { c.Status(http.StatusOK) })
	r.PUT("/sections/:id/textbooks", withActor(&models.JWTClaims{PersonID: "0001", Role: models.RoleStudent}),
		RequireRoles(faults.write, models.RoleFaculty), func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusUnauthorized, perform(r, http.MethodGet, "/expired", map[string]string{"Authorization": "Bearer old"}).Code)
	assert.Equal(t, http.StatusUnauthorized, perform(r, http.MethodGet, "/anonymous", nil).Code)
	assert.Equal(t, http.StatusForbidden, perform(r, http.MethodPut, "/sections/SEC-1/textbooks", nil).Code)

	require.Len(t, faults.errs, 3)
	assert.ErrorIs(t, faults.errs[0], appErrors.ErrSessionExpired)
	assert.ErrorIs(t, faults.errs[1], appErrors.ErrUnauthorized)
	assert.ErrorIs(t, faults.errs[2], appErrors.ErrForbidden)
}

func withActor(actor *models.JWTClaims) gin.HandlerFunc {
	return func(c *gin.Context) {
		if actor != nil {
			c.Set(ContextUserKey, actor)
		}
		c.Next()
	}
}

func TestRequireRoles(t *testing.T) {
	cases := []struct {
		name   string
		actor  *models.JWTClaims
		target string
		want   int
	}{
		{"role allowed", &models.JWTClaims{PersonID: "A-1", Role: models.RoleAdmin}, "/students/0001", http.StatusOK},
		{"self allowed", &models.JWTClaims{PersonID: "0001", Role: models.RoleStudent}, "/students/0001", http.StatusOK},
		{"other student", &models.JWTClaims{PersonID: "0002", Role: models.RoleStudent}, "/students/0001", http.StatusForbidden},
		{"anonymous", nil, "/students/0001", http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := newEngine()
			r.GET("/students/:id", withActor(tc.actor), RequireRoles(nil, models.RoleAdmin, RoleSelf), func(c *gin.Context) {
				c.Status(http.StatusOK)
			})
			assert.Equal(t, tc.want, perform(r, http.MethodGet, tc.target, nil).Code)
		})
	}
}

type auditStub struct {
	logs []*models.AuditLog
	err  error
}

func (a *auditStub) CreateAuditLog(ctx context.Context, log *models.AuditLog) error {
	a.logs = append(a.logs, log)
	return a.err
}

func TestAuditRecordsSuccessfulWrites(t *testing.T) {
	rec := &auditStub{}
	r := newEngine()
	actor := &models.JWTClaims{PersonID: "F-9", Role: models.RoleFaculty}
	r.PUT("/sections/:id/textbooks", withActor(actor), Audit(rec, nil, models.AuditActionTextbookAssign, "section_textbooks"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	r.PUT("/fail/:id", Audit(rec, nil, models.AuditActionTextbookAssign, "section_textbooks"), func(c *gin.Context) {
		c.Status(http.StatusForbidden)
	})

	perform(r, http.MethodPut, "/sections/SEC-1/textbooks", nil)
	perform(r, http.MethodPut, "/fail/SEC-1", nil)

	require.Len(t, rec.logs, 1)
	assert.Equal(t, "F-9", *rec.logs[0].UserID)
	assert.Equal(t, "SEC-1", *rec.logs[0].ResourceID)
	assert.Equal(t, models.AuditActionTextbookAssign, rec.logs[0].Action)
}

func TestAuditFailureDoesNotChangeResponse(t *testing.T) {
	r := newEngine()
	r.PUT("/x", Audit(&auditStub{err: errors.New("db down")}, nil, "A", "r"), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	assert.Equal(t, http.StatusOK, perform(r, http.MethodPut, "/x", nil).Code)
}

type observerStub struct {
	paths []string
}

func (o *observerStub) ObserveHTTPRequest(method, path string, status int, duration time.Duration) {
	o.paths = append(o.paths, path)
}

func TestMetricsUsesRouteTemplate(t *testing.T) {
	obs := &observerStub{}
	r := newEngine()
	r.Use(Metrics(obs))
	r.GET("/degrees/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	perform(r, http.MethodGet, "/degrees/BA", nil)
	perform(r, http.MethodGet, "/nowhere", nil)

	assert.Equal(t, []string{"/degrees/:id", "unmatched"}, obs.paths)
}

func TestCacheDirective(t *testing.T) {
	cases := map[string]struct {
		headers map[string]string
		want    bool
	}{
		"absent":        {nil, false},
		"no-cache":      {map[string]string{"Cache-Control": "no-cache"}, true},
		"upper case":    {map[string]string{"Cache-Control": "NO-CACHE"}, true},
		"among others":  {map[string]string{"Cache-Control": "max-age=0, no-cache"}, true},
		"no-store only": {map[string]string{"Cache-Control": "no-store"}, false},
		"pragma":        {map[string]string{"Pragma": "no-cache"}, true},
		"control wins":  {map[string]string{"Cache-Control": "max-age=60", "Pragma": "no-cache"}, false},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			r := newEngine()
			var seen bool
			r.Use(CacheDirective())
			r.GET("/x", func(c *gin.Context) {
				seen = BypassCache(c)
				c.Status(http.StatusOK)
			})
			perform(r, http.MethodGet, "/x", tc.headers)
			assert.Equal(t, tc.want, seen)
		})
	}
}
