package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/noah-isme/colleague-student-api/pkg/errors"
)

type cacheRepoStub struct {
	getErr  error
	setErr  error
	setTTL  time.Duration
	payload map[string]string
}

func (s *cacheRepoStub) Get(_ context.Context, key string, dest interface{}) error {
	if s.getErr != nil {
		return s.getErr
	}
	v, ok := s.payload[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	*(dest.(*string)) = v
	return nil
}

func (s *cacheRepoStub) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	s.setTTL = ttl
	if s.setErr != nil {
		return s.setErr
	}
	if s.payload == nil {
		s.payload = map[string]string{}
	}
	s.payload[key] = value.(string)
	return nil
}

func TestCacheServiceHitAndMiss(t *testing.T) {
	repo := &cacheRepoStub{payload: map[string]string{"reference:degrees": "cached"}}
	metrics := NewMetricsService()
	svc := NewCacheService(repo, metrics, time.Hour, nil, true)

	var got string
	hit, err := svc.Get(context.Background(), "reference:degrees", &got)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, "cached", got)

	hit, err = svc.Get(context.Background(), "reference:majors", &got)
	require.NoError(t, err)
	assert.False(t, hit)

	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.cacheHits))
	assert.Equal(t, float64(1), testutil.ToFloat64(metrics.cacheMisses))
}

func TestCacheServiceReportsBackendFailure(t *testing.T) {
	svc := NewCacheService(&cacheRepoStub{getErr: errors.New("connection reset")}, nil, 0, nil, true)

	var got string
	hit, err := svc.Get(context.Background(), "reference:degrees", &got)
	assert.False(t, hit)
	assert.Error(t, err)
}

func TestCacheServiceSetUsesDefaultTTL(t *testing.T) {
	repo := &cacheRepoStub{}
	svc := NewCacheService(repo, nil, 2*time.Hour, nil, true)

	require.NoError(t, svc.Set(context.Background(), "k", "v", 0))
	assert.Equal(t, 2*time.Hour, repo.setTTL)
}

func TestCacheServiceDisabled(t *testing.T) {
	repo := &cacheRepoStub{payload: map[string]string{"k": "v"}}
	svc := NewCacheService(repo, nil, 0, nil, false)

	var got string
	hit, err := svc.Get(context.Background(), "k", &got)
	require.NoError(t, err)
	assert.False(t, hit)
	require.NoError(t, svc.Set(context.Background(), "k", "other", 0))
	assert.Equal(t, "v", repo.payload["k"])
}
