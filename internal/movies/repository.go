package movies

import (
	"context"
	"errors"

	"gorm.io/gorm"
)

var ErrMovieNotFound = errors.New("movie not found")

type Repository interface {
	Save(ctx context.Context, movie *Movie) error
	FindByID(ctx context.Context, id int64) (*Movie, error)
	FindAll(ctx context.Context) ([]Movie, error)
	FindByName(ctx context.Context, name string) ([]Movie, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	DeleteByID(ctx context.Context, id int64) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

// Save inserts a movie without an id and updates every column otherwise.
func (r *repository) Save(ctx context.Context, movie *Movie) error {
	return r.db.WithContext(ctx).Save(movie).Error
}

func (r *repository) FindByID(ctx context.Context, id int64) (*Movie, error) {
	var movie Movie
	err := r.db.WithContext(ctx).First(&movie, "movie_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMovieNotFound
		}
		return nil, err
	}
	return &movie, nil
}

func (r *repository) FindAll(ctx context.Context) ([]Movie, error) {
	var movies []Movie
	err := r.db.WithContext(ctx).Order("movie_id ASC").Find(&movies).Error
	return movies, err
}

func (r *repository) FindByName(ctx context.Context, name string) ([]Movie, error) {
	var movies []Movie
	err := r.db.WithContext(ctx).
		Where("name = ?", name).
		Order("movie_id ASC").
		Find(&movies).Error
	return movies, err
}

func (r *repository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&Movie{}).Where("movie_id = ?", id).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *repository) DeleteByID(ctx context.Context, id int64) error {
	result := r.db.WithContext(ctx).Delete(&Movie{}, "movie_id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMovieNotFound
	}
	return nil
}
