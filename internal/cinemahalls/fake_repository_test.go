package cinemahalls

import (
	"context"
	"errors"
	"sort"
	"strings"

	"cinepulse/internal/movies"
)

type fakeRepository struct {
	halls     map[int64]CinemaHall
	nextID    int64
	findCalls int
	saveErr   error
}

func newFakeRepository(seed ...CinemaHall) *fakeRepository {
	r := &fakeRepository{halls: map[int64]CinemaHall{}}
	for _, h := range seed {
		r.nextID++
		h.ID = r.nextID
		r.halls[h.ID] = h
	}
	return r
}

func (r *fakeRepository) Save(_ context.Context, hall *CinemaHall) error {
	if r.saveErr != nil {
		return r.saveErr
	}
	if hall.ID == 0 {
		r.nextID++
		hall.ID = r.nextID
	}
	stored := *hall
	// the store keeps the foreign key, not the loaded movie
	stored.Movie = nil
	r.halls[hall.ID] = stored
	return nil
}

func (r *fakeRepository) FindByID(_ context.Context, id int64) (*CinemaHall, error) {
	r.findCalls++
	h, ok := r.halls[id]
	if !ok {
		return nil, ErrCinemaHallNotFound
	}
	return &h, nil
}

func (r *fakeRepository) FindAll(_ context.Context) ([]CinemaHall, error) {
	r.findCalls++
	return r.filter(func(CinemaHall) bool { return true }), nil
}

func (r *fakeRepository) FindByName(_ context.Context, name string) ([]CinemaHall, error) {
	return r.filter(func(h CinemaHall) bool { return h.Name == name }), nil
}

func (r *fakeRepository) SearchByName(_ context.Context, substring string) ([]CinemaHall, error) {
	needle := strings.ToLower(substring)
	return r.filter(func(h CinemaHall) bool {
		return strings.Contains(strings.ToLower(h.Name), needle)
	}), nil
}

func (r *fakeRepository) FindByMovieAndLocation(_ context.Context, movieID int64, location string) ([]CinemaHall, error) {
	return r.filter(func(h CinemaHall) bool {
		return h.MovieID != nil && *h.MovieID == movieID && h.Location == location
	}), nil
}

func (r *fakeRepository) ExistsByID(_ context.Context, id int64) (bool, error) {
	_, ok := r.halls[id]
	return ok, nil
}

func (r *fakeRepository) DeleteByID(_ context.Context, id int64) error {
	if _, ok := r.halls[id]; !ok {
		return ErrCinemaHallNotFound
	}
	delete(r.halls, id)
	return nil
}

func (r *fakeRepository) filter(keep func(CinemaHall) bool) []CinemaHall {
	out := []CinemaHall{}
	for _, h := range r.halls {
		if keep(h) {
			out = append(out, h)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

type fakeMovies map[int64]movies.Movie

func (f fakeMovies) FindByID(_ context.Context, id int64) (*movies.Movie, error) {
	m, ok := f[id]
	if !ok {
		return nil, movies.ErrMovieNotFound
	}
	return &m, nil
}

var errStoreDown = errors.New("connection refused")

func int64Ptr(v int64) *int64 { return &v }
