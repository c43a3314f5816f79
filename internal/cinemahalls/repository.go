package cinemahalls

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var ErrCinemaHallNotFound = errors.New("cinema hall not found")

type Repository interface {
	Save(ctx context.Context, hall *CinemaHall) error
	FindByID(ctx context.Context, id int64) (*CinemaHall, error)
	FindAll(ctx context.Context) ([]CinemaHall, error)
	FindByName(ctx context.Context, name string) ([]CinemaHall, error)
	SearchByName(ctx context.Context, substring string) ([]CinemaHall, error)
	FindByMovieAndLocation(ctx context.Context, movieID int64, location string) ([]CinemaHall, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	DeleteByID(ctx context.Context, id int64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Save writes the hall's own columns; the movie row is never touched.
func (r *repository) Save(ctx context.Context, hall *CinemaHall) error {
	return r.db.WithContext(ctx).Omit(clause.Associations).Save(hall).Error
}

func (r *repository) FindByID(ctx context.Context, id int64) (*CinemaHall, error) {
	var hall CinemaHall
	err := r.db.WithContext(ctx).Preload("Movie").First(&hall, "cinema_hall_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCinemaHallNotFound
		}
		return nil, err
	}
	return &hall, nil
}

func (r *repository) FindAll(ctx context.Context) ([]CinemaHall, error) {
	var halls []CinemaHall
	err := r.db.WithContext(ctx).Order("cinema_hall_id ASC").Find(&halls).Error
	return halls, err
}

func (r *repository) FindByName(ctx context.Context, name string) ([]CinemaHall, error) {
	var halls []CinemaHall
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		Order("cinema_hall_id ASC").
		Find(&halls).Error
	return halls, err
}

func (r *repository) SearchByName(ctx context.Context, substring string) ([]CinemaHall, error) {
	var halls []CinemaHall
	err := r.db.WithContext(ctx).
		Scopes(nameContains(substring)).
		Order("cinema_hall_id ASC").
		Find(&halls).Error
	return halls, err
}

func (r *repository) FindByMovieAndLocation(ctx context.Context, movieID int64, location string) ([]CinemaHall, error) {
	var halls []CinemaHall
	err := r.db.WithContext(ctx).
		Where("movie_id = ? AND location = ?", movieID, location).
		Order("cinema_hall_id ASC").
		Find(&halls).Error
	return halls, err
}

func (r *repository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&CinemaHall{}).Where("cinema_hall_id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) DeleteByID(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&CinemaHall{}, "cinema_hall_id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrCinemaHallNotFound
	}
	return nil
}

// nameContains matches names containing substring, ignoring case. The input
// is matched literally, so "%" or "_" never act as wildcards.
func nameContains(substring string) func(*gorm.DB) *gorm.DB {
	pattern := "%" + escapeLike(strings.ToLower(substring)) + "%"
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(`LOWER(name) LIKE ? ESCAPE '\'`, pattern)
	}
}

// escapeLike makes user input match literally inside a LIKE pattern.
func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
