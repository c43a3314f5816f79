package movies

import (
	"context"
	"errors"
	"sort"
	"sync"
)

// fakeRepository is an in-memory Repository for service and controller tests.
type fakeRepository struct {
	mu        sync.Mutex
	movies    map[int64]Movie
	nextID    int64
	findCalls int
	failWith  error
}

func newFakeRepository(seed ...Movie) *fakeRepository {
	r := &fakeRepository{movies: map[int64]Movie{}}
	for _, m := range seed {
		r.nextID++
		m.ID = r.nextID
		r.movies[m.ID] = m
	}
	return r
}

func (r *fakeRepository) Save(_ context.Context, movie *Movie) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return r.failWith
	}
	if movie.ID == 0 {
		r.nextID++
		movie.ID = r.nextID
	}
	r.movies[movie.ID] = *movie
	return nil
}

func (r *fakeRepository) FindByID(_ context.Context, id int64) (*Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.findCalls++
	if r.failWith != nil {
		return nil, r.failWith
	}
	m, ok := r.movies[id]
	if !ok {
		return nil, ErrMovieNotFound
	}
	return &m, nil
}

func (r *fakeRepository) FindAll(_ context.Context) ([]Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.findCalls++
	if r.failWith != nil {
		return nil, r.failWith
	}
	return r.sorted(func(Movie) bool { return true }), nil
}

func (r *fakeRepository) FindByName(_ context.Context, name string) ([]Movie, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.sorted(func(m Movie) bool { return m.Name == name }), nil
}

func (r *fakeRepository) ExistsByID(_ context.Context, id int64) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failWith != nil {
		return false, r.failWith
	}
	_, ok := r.movies[id]
	return ok, nil
}

func (r *fakeRepository) DeleteByID(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.movies[id]; !ok {
		return ErrMovieNotFound
	}
	delete(r.movies, id)
	return nil
}

func (r *fakeRepository) sorted(keep func(Movie) bool) []Movie {
	var out []Movie
	for _, m := range r.movies {
		if keep(m) {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

var errStoreDown = errors.New("connection refused")
