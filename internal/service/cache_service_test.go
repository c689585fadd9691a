package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	appErrors "github.com/campushq/course-planner-api/pkg/errors"
)

type stubCacheRepo struct {
	store   map[string]interface{}
	getErr  error
	lastTTL time.Duration
}

func newStubCacheRepo() *stubCacheRepo {
	return &stubCacheRepo{store: map[string]interface{}{}}
}

func (s *stubCacheRepo) Get(_ context.Context, key string, dest interface{}) error {
	if s.getErr != nil {
		return s.getErr
	}
	value, ok := s.store[key]
	if !ok {
		return appErrors.ErrCacheMiss
	}
	if target, ok := dest.(*string); ok {
		*target = value.(string)
	}
	return nil
}

func (s *stubCacheRepo) Set(_ context.Context, key string, value interface{}, ttl time.Duration) error {
	s.store[key] = value
	s.lastTTL = ttl
	return nil
}

func (s *stubCacheRepo) DeleteByPattern(_ context.Context, _ string) error {
	s.store = map[string]interface{}{}
	return nil
}

func TestCacheServiceHitAndMiss(t *testing.T) {
	repo := newStubCacheRepo()
	svc := NewCacheService(repo, nil, time.Minute, nil, true)

	var out string
	hit, err := svc.Get(context.Background(), "k", &out)
	require.NoError(t, err)
	require.False(t, hit)

	require.NoError(t, svc.Set(context.Background(), "k", "v", 0))
	require.Equal(t, time.Minute, repo.lastTTL)

	hit, err = svc.Get(context.Background(), "k", &out)
	require.NoError(t, err)
	require.True(t, hit)
	require.Equal(t, "v", out)
}

func TestCacheServiceSurfacesBackendErrors(t *testing.T) {
	repo := newStubCacheRepo()
	repo.getErr = errors.New("connection refused")
	svc := NewCacheService(repo, nil, time.Minute, nil, true)

	var out string
	hit, err := svc.Get(context.Background(), "k", &out)
	require.Error(t, err)
	require.False(t, hit)
}

func TestCacheServiceNilIsDisabled(t *testing.T) {
	var svc *CacheService
	require.False(t, svc.Enabled())

	var out string
	hit, err := svc.Get(context.Background(), "k", &out)
	require.NoError(t, err)
	require.False(t, hit)
	require.NoError(t, svc.Set(context.Background(), "k", "v", 0))
	require.NoError(t, svc.Invalidate(context.Background(), "*"))
}

func TestCacheServiceDisabledFlag(t *testing.T) {
	svc := NewCacheService(newStubCacheRepo(), nil, time.Minute, nil, false)
	require.False(t, svc.Enabled())
}
