package movies

import (
	"context"
	"encoding/json"
	"path"
	"testing"
	"time"

	"cinepulse/internal/catalogevents"
	"cinepulse/internal/shared/apperror"
	"cinepulse/internal/shared/constants"
	"cinepulse/pkg/cache"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryCache struct {
	data map[string][]byte
}

func newMemoryCache() *memoryCache { return &memoryCache{data: map[string][]byte{}} }

func (m *memoryCache) Get(_ context.Context, key string, dest interface{}) error {
	raw, ok := m.data[key]
	if !ok {
		return cache.ErrCacheMiss
	}
	return json.Unmarshal(raw, dest)
}

func (m *memoryCache) Set(_ context.Context, key string, value interface{}, _ time.Duration) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return err
	}
	m.data[key] = raw
	return nil
}

func (m *memoryCache) Delete(_ context.Context, keys ...string) error {
	for _, k := range keys {
		delete(m.data, k)
	}
	return nil
}

func (m *memoryCache) DeletePattern(_ context.Context, pattern string) error {
	for k := range m.data {
		if ok, _ := path.Match(pattern, k); ok {
			delete(m.data, k)
		}
	}
	return nil
}

func (m *memoryCache) Ping(context.Context) error { return nil }

type recordingPublisher struct {
	events []*catalogevents.Event
}

func (p *recordingPublisher) Publish(_ context.Context, event *catalogevents.Event) error {
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) Close() error { return nil }

func strPtr(s string) *string { return &s }

func TestAddMovieAssignsID(t *testing.T) {
	repo := newFakeRepository()
	publisher := &recordingPublisher{}
	svc := NewService(repo, nil, publisher)

	got, err := svc.AddMovie(context.Background(), MovieDTO{
		MovieID:     99,
		Name:        "Dune",
		Genre:       "Sci-Fi",
		ReleaseDate: strPtr("2021-10-22"),
	})
	require.NoError(t, err)

	assert.Equal(t, int64(1), got.MovieID, "id is assigned by the store")
	assert.Equal(t, "Dune", got.Name)
	require.NotNil(t, got.ReleaseDate)
	assert.Equal(t, "2021-10-22", *got.ReleaseDate)

	require.Len(t, publisher.events, 1)
	assert.Equal(t, catalogevents.EventMovieCreated, publisher.events[0].Type)
	assert.Equal(t, int64(1), publisher.events[0].EntityID)
}

func TestMovieLookupsOnUnknownID(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepository(), nil, nil)

	_, err := svc.GetMovieByID(ctx, 42)
	assert.True(t, apperror.IsNotFound(err))
	assert.EqualError(t, err, "Movie not found with id 42")

	_, err = svc.UpdateMovie(ctx, 42, MovieDTO{Name: "x"})
	assert.True(t, apperror.IsNotFound(err))

	err = svc.DeleteMovie(ctx, 42)
	assert.True(t, apperror.IsNotFound(err))
}

func TestDeleteMovie(t *testing.T) {
	repo := newFakeRepository(Movie{Name: "Alien"})
	publisher := &recordingPublisher{}
	svc := NewService(repo, nil, publisher)

	require.NoError(t, svc.DeleteMovie(context.Background(), 1))
	assert.Empty(t, repo.movies)
	require.Len(t, publisher.events, 1)
	assert.Equal(t, catalogevents.EventMovieDeleted, publisher.events[0].Type)
}

func TestUpdateMovieIsPartial(t *testing.T) {
	released := time.Date(1979, 5, 25, 0, 0, 0, 0, time.UTC)
	repo := newFakeRepository(Movie{
		Name:            "Alien",
		Genre:           "Horror",
		Language:        "English",
		DurationMinutes: 117,
		ReleaseDate:     &released,
	})
	svc := NewService(repo, nil, nil)

	got, err := svc.UpdateMovie(context.Background(), 1, MovieDTO{Name: "", Genre: "Sci-Fi Horror"})
	require.NoError(t, err)

	assert.Equal(t, "Alien", got.Name)
	assert.Equal(t, "Sci-Fi Horror", got.Genre)
	assert.Equal(t, "English", got.Language)
	assert.Equal(t, 117, got.DurationMinutes)
	require.NotNil(t, got.ReleaseDate)
	assert.Equal(t, "1979-05-25", *got.ReleaseDate)

	stored := repo.movies[1]
	assert.Equal(t, "Sci-Fi Horror", stored.Genre)
}

func TestGetAllMoviesEmptyIsNotFound(t *testing.T) {
	svc := NewService(newFakeRepository(), nil, nil)

	_, err := svc.GetAllMovies(context.Background())
	assert.True(t, apperror.IsNotFound(err))
	assert.EqualError(t, err, "No Movies found")
}

func TestGetMovieByNameIsExact(t *testing.T) {
	ctx := context.Background()
	svc := NewService(newFakeRepository(
		Movie{Name: "Dune"},
		Movie{Name: "Dune: Part Two"},
		Movie{Name: "Dune"},
	), nil, nil)

	got, err := svc.GetMovieByName(ctx, "Dune")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].MovieID)
	assert.Equal(t, int64(3), got[1].MovieID)

	_, err = svc.GetMovieByName(ctx, "dune")
	assert.True(t, apperror.IsNotFound(err))
}

func TestStoreFailuresAreNotNotFound(t *testing.T) {
	repo := newFakeRepository()
	repo.failWith = errStoreDown
	svc := NewService(repo, nil, nil)

	_, err := svc.GetMovieByID(context.Background(), 1)
	require.Error(t, err)
	assert.False(t, apperror.IsNotFound(err))
	assert.ErrorIs(t, err, errStoreDown)
}

func TestMovieCacheHitAndInvalidation(t *testing.T) {
	ctx := context.Background()
	repo := newFakeRepository(Movie{Name: "Heat"})
	mc := newMemoryCache()
	mc.data[constants.CACHE_KEY_HALLS_ALL] = []byte("[]")
	svc := NewService(repo, mc, nil)

	_, err := svc.GetMovieByID(ctx, 1)
	require.NoError(t, err)
	_, err = svc.GetMovieByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, repo.findCalls, "second lookup is served from cache")

	_, err = svc.UpdateMovie(ctx, 1, MovieDTO{Name: "Heat (1995)"})
	require.NoError(t, err)
	assert.NotContains(t, mc.data, constants.BuildMovieDetailKey(1))
	assert.NotContains(t, mc.data, constants.CACHE_KEY_HALLS_ALL, "movie writes also clear hall entries")

	got, err := svc.GetMovieByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "Heat (1995)", got.Name)
}

func TestNotFoundIsNotCached(t *testing.T) {
	ctx := context.Background()
	mc := newMemoryCache()
	svc := NewService(newFakeRepository(), mc, nil)

	_, err := svc.GetAllMovies(ctx)
	require.Error(t, err)
	assert.Empty(t, mc.data)
}
