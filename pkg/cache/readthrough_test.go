package cache

import (
	"context"
	"encoding/json"
	"errors"
	"path"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memoryService is an in-memory Service used to exercise the helpers.
type memoryService struct {
	data   map[string][]byte
	getErr error
}

func newMemoryService() *memoryService {
	return &memoryService{data: map[string][]byte{}}
}

func (m *memoryService) Get(_ context.Context, key string, dest interface{}) error {
	if m.getErr != nil {
		return m.getErr
	}
	raw, ok := m.data[key]
	if !ok {
		return ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *memoryService) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = raw
	return nil
}

func (m *memoryService) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func (m *memoryService) DeletePattern(_ context.Context, pattern string) error {
	for k := range m.data {
		if ok, _ := path.Match(pattern, k); ok {
			delete(m.data, k)
		}
	}
	return nil
}

func (m *memoryService) Ping(context.Context) error { return nil }

func TestReadThrough(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryService()
	calls := 0
	load := func() ([]string, error) {
		calls++
		return []string{"Dune"}, nil
	}

	got, err := ReadThrough(ctx, svc, "k", time.Minute, load)
	require.NoError(t, err)
	assert.Equal(t, []string{"Dune"}, got)

	got, err = ReadThrough(ctx, svc, "k", time.Minute, load)
	require.NoError(t, err)
	assert.Equal(t, []string{"Dune"}, got)
	assert.Equal(t, 1, calls, "second read should be served from cache")
}

func TestReadThroughDoesNotCacheErrors(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryService()
	boom := errors.New("not found")

	_, err := ReadThrough(ctx, svc, "k", time.Minute, func() (int, error) { return 0, boom })
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, svc.data)
}

func TestReadThroughFallsBackOnCacheFailure(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryService()
	svc.getErr = errors.New("connection refused")

	got, err := ReadThrough(ctx, svc, "k", time.Minute, func() (int, error) { return 7, nil })
	require.NoError(t, err)
	assert.Equal(t, 7, got)
}

func TestReadThroughNilService(t *testing.T) {
	got, err := ReadThrough(context.Background(), nil, "k", time.Minute, func() (int, error) { return 3, nil })
	require.NoError(t, err)
	assert.Equal(t, 3, got)

	Invalidate(context.Background(), nil, "*")
}

func TestInvalidate(t *testing.T) {
	ctx := context.Background()
	svc := newMemoryService()
	svc.data["cinepulse:movies:list:all"] = []byte("[]")
	svc.data["cinepulse:halls:list:all"] = []byte("[]")

	Invalidate(ctx, svc, "cinepulse:movies:*")

	assert.NotContains(t, svc.data, "cinepulse:movies:list:all")
	assert.Contains(t, svc.data, "cinepulse:halls:list:all")
}
