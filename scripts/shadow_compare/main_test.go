package main

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBodiesEqual(t *testing.T) {
	a := []byte(`[{"code":"SM","description":"Small"},{"code":"LG","description":"Large"}]`)
	b := []byte(`[{"code":"LG","description":"Large"},{"description":"Small","code":"SM"}]`)

	assert.False(t, bodiesEqual(a, b, false))
	assert.True(t, bodiesEqual(a, b, true))
	assert.True(t, bodiesEqual([]byte(`{"n":1}`), []byte(`{"n":1.0}`), false))
	assert.False(t, bodiesEqual([]byte(`not json`), []byte(`{}`), false))
}

func TestCompareSendsHeadersAndBody(t *testing.T) {
	var gotAuth, gotAccept, gotCache string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotAccept = r.Header.Get("Accept")
		gotCache = r.Header.Get("Cache-Control")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	c := &client{http: srv.Client(), token: "tok", mediaType: "application/vnd.hedtech.integration.v1+json"}
	comp := c.compare(srv.URL, srv.URL, target{
		Method:  http.MethodPost,
		Path:    "qapi/course-placeholders",
		Body:    []byte(`{"ids":["CP1"]}`),
		Headers: map[string]string{"Cache-Control": "no-cache"},
	})

	require.NoError(t, comp.Error)
	assert.True(t, comp.StatusMatch)
	assert.True(t, comp.BodyMatch)
	assert.Equal(t, "Bearer tok", gotAuth)
	assert.Equal(t, "application/vnd.hedtech.integration.v1+json", gotAccept)
	assert.Equal(t, "no-cache", gotCache)
}
