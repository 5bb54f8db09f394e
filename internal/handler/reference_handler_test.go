package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/noah-isme/colleague-student-api/internal/adapter"
	"github.com/noah-isme/colleague-student-api/internal/dto"
	"github.com/noah-isme/colleague-student-api/internal/models"
	"github.com/noah-isme/colleague-student-api/internal/pipeline"
	appErrors "github.com/noah-isme/colleague-student-api/pkg/errors"
)

type readerStub[E any] struct {
	items      []E
	listErr    error
	getErr     error
	get        E
	lastBypass bool
	calls      int
}

func (s *readerStub[E]) List(ctx context.Context, bypass bool) ([]E, error) {
	s.calls++
	s.lastBypass = bypass
	return s.items, s.listErr
}

func (s *readerStub[E]) Get(ctx context.Context, code string, bypass bool) (E, error) {
	s.calls++
	s.lastBypass = bypass
	return s.get, s.getErr
}

func newPipe() (*pipeline.Pipeline, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return pipeline.New(zap.New(core)), logs
}

func do(r *gin.Engine, method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func engineWith(registrars ...RouteRegistrar) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	for _, reg := range registrars {
		reg.Register(r)
	}
	return r
}

func capSize(code, desc string) models.CapSize {
	return models.CapSize{ReferenceCode: models.ReferenceCode{Code: code, Description: desc}}
}

func TestReferenceHandlerListsMappedItems(t *testing.T) {
	pipe, _ := newPipe()
	repo := &readerStub[models.CapSize]{items: []models.CapSize{capSize("SM", "Small"), capSize("LG", "Large")}}
	h := NewReferenceHandler(pipe, pipeline.Resource{Name: "cap-sizes", Label: "Cap size"}, repo, adapter.CapSize)

	w := do(engineWith(h), http.MethodGet, "/cap-sizes", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"code":"SM","description":"Small"},{"code":"LG","description":"Large"}]`, w.Body.String())
	assert.False(t, repo.lastBypass)
}

func TestReferenceHandlerHonoursNoCache(t *testing.T) {
	pipe, _ := newPipe()
	repo := &readerStub[models.CapSize]{}
	h := NewReferenceHandler(pipe, pipeline.Resource{Name: "cap-sizes", Label: "Cap size"}, repo, adapter.CapSize)

	w := do(engineWith(h), http.MethodGet, "/cap-sizes", "", map[string]string{"Cache-Control": "no-cache"})

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())
	assert.True(t, repo.lastBypass)
}

func TestReferenceHandlerSkipsUnmappableItems(t *testing.T) {
	pipe, logs := newPipe()
	repo := &readerStub[models.CapSize]{items: []models.CapSize{capSize("SM", "Small"), capSize("", "broken")}}
	h := NewReferenceHandler(pipe, pipeline.Resource{Name: "cap-sizes", Label: "Cap size"}, repo, adapter.CapSize)

	w := do(engineWith(h), http.MethodGet, "/cap-sizes", "", nil)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"code":"SM","description":"Small"}]`, w.Body.String())
	assert.Equal(t, 1, logs.Len())
}

func TestReferenceHandlerUnknownIDNamesTheID(t *testing.T) {
	pipe, logs := newPipe()
	repo := &readerStub[models.GradeSubscheme]{getErr: appErrors.Clone(appErrors.ErrNotFound, "no row for grade_subschemes")}
	h := NewReferenceHandler(pipe, pipeline.Resource{Name: "grade-subschemes", Label: "Grade subscheme"}, repo, adapter.GradeSubscheme)

	w := do(engineWith(h), http.MethodGet, "/grade-subschemes/UG-XYZ", "", nil)

	require.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "UG-XYZ")
	assert.NotContains(t, w.Body.String(), "grade_subschemes")
	assert.Equal(t, 1, logs.Len())
}

func TestReferenceHandlerSessionExpired(t *testing.T) {
	pipe, _ := newPipe()
	repo := &readerStub[models.Degree]{listErr: appErrors.Wrap(context.DeadlineExceeded, appErrors.ErrSessionExpired.Code, http.StatusUnauthorized, "token gone")}
	h := NewReferenceHandler(pipe, pipeline.Resource{Name: "degrees", Label: "Degree"}, repo, adapter.Degree)

	w := do(engineWith(h), http.MethodGet, "/degrees", "", nil)

	require.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), appErrors.SessionExpiredMessage)
	assert.NotContains(t, w.Body.String(), "token gone")
}

func TestPlaceholderHandler(t *testing.T) {
	res := pipeline.Resource{Name: "student-tags", Label: "Student tag"}

	cases := []struct {
		name   string
		method string
		target string
		body   string
		status int
		want   string
	}{
		{name: "list is empty", method: http.MethodGet, target: "/student-tags", status: http.StatusOK, want: `[]`},
		{name: "get is not found", method: http.MethodGet, target: "/student-tags/abc", status: http.StatusNotFound, want: "abc"},
		{name: "create refused", method: http.MethodPost, target: "/student-tags", body: `{"id":"x"}`, status: http.StatusMethodNotAllowed, want: "Operation not supported."},
		{name: "update refused", method: http.MethodPut, target: "/student-tags/abc", body: `{"id":"abc"}`, status: http.StatusMethodNotAllowed, want: "Operation not supported."},
		{name: "delete refused", method: http.MethodDelete, target: "/student-tags/abc", status: http.StatusMethodNotAllowed, want: "Operation not supported."},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			pipe, _ := newPipe()
			w := do(engineWith(NewPlaceholderHandler(pipe, res, nil)), tc.method, tc.target, tc.body, nil)

			assert.Equal(t, tc.status, w.Code)
			assert.Contains(t, w.Body.String(), tc.want)
		})
	}
}

func TestPlaceholderHandlerUsesLister(t *testing.T) {
	pipe, _ := newPipe()
	lister := func(ctx context.Context, bypass bool) ([]dto.EedmResource, error) {
		return []dto.EedmResource{{ID: "p1", Code: "FA", Title: "Fall"}}, nil
	}
	r := engineWith(NewPlaceholderHandler(pipe, pipeline.Resource{Name: "administrative-periods", Label: "Administrative period"}, lister))

	w := do(r, http.MethodGet, "/administrative-periods/p1", "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":"p1","code":"FA","title":"Fall"}`, w.Body.String())
}
