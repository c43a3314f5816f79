package movies

import (
	"context"
	"errors"
	"fmt"

	"cinepulse/internal/catalogevents"
	"cinepulse/internal/shared/apperror"
	"cinepulse/internal/shared/constants"
	"cinepulse/pkg/cache"
	"cinepulse/pkg/logger"
)

type Service interface {
	AddMovie(ctx context.Context, dto MovieDTO) (*MovieDTO, error)
	DeleteMovie(ctx context.Context, id int64) error
	UpdateMovie(ctx context.Context, id int64, dto MovieDTO) (*MovieDTO, error)
	GetAllMovies(ctx context.Context) ([]MovieDTO, error)
	GetMovieByName(ctx context.Context, name string) ([]MovieDTO, error)
	GetMovieByID(ctx context.Context, id int64) (*MovieDTO, error)
}

type service struct {
	repo      Repository
	cache     cache.Service
	publisher catalogevents.Publisher
	log       *logger.Logger
}

// NewService wires the movie catalog. cacheService may be nil; a nil publisher
// disables change events.
func NewService(repo Repository, cacheService cache.Service, publisher catalogevents.Publisher) Service {
	if publisher == nil {
		publisher = catalogevents.NoopPublisher{}
	}
	return &service{
		repo:      repo,
		cache:     cacheService,
		publisher: publisher,
		log:       logger.GetDefault(),
	}
}

func movieNotFound(id int64) error {
	return apperror.NotFoundf("Movie not found with id %d", id)
}

func (s *service) AddMovie(ctx context.Context, dto MovieDTO) (*MovieDTO, error) {
	movie := ToMovieEntity(dto)
	if err := s.repo.Save(ctx, movie); err != nil {
		return nil, fmt.Errorf("failed to save movie: %w", err)
	}

	result := ToMovieDTO(movie)
	s.afterWrite(ctx, catalogevents.EventMovieCreated, movie.ID, result)
	return &result, nil
}

func (s *service) DeleteMovie(ctx context.Context, id int64) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check movie: %w", err)
	}
	if !exists {
		return movieNotFound(id)
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		// removed concurrently between the check and the delete
		if errors.Is(err, ErrMovieNotFound) {
			return movieNotFound(id)
		}
		return fmt.Errorf("failed to delete movie: %w", err)
	}

	s.afterWrite(ctx, catalogevents.EventMovieDeleted, id, nil)
	return nil
}

func (s *service) UpdateMovie(ctx context.Context, id int64, dto MovieDTO) (*MovieDTO, error) {
	movie, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrMovieNotFound) {
			return nil, movieNotFound(id)
		}
		return nil, fmt.Errorf("failed to get movie: %w", err)
	}

	applyMovieUpdate(movie, dto)

	if err := s.repo.Save(ctx, movie); err != nil {
		return nil, fmt.Errorf("failed to update movie: %w", err)
	}

	result := ToMovieDTO(movie)
	s.afterWrite(ctx, catalogevents.EventMovieUpdated, movie.ID, result)
	return &result, nil
}

// applyMovieUpdate copies only the fields present in dto.
func applyMovieUpdate(movie *Movie, dto MovieDTO) {
	if dto.Name != "" {
		movie.Name = dto.Name
	}
	if dto.Description != "" {
		movie.Description = dto.Description
	}
	if dto.Genre != "" {
		movie.Genre = dto.Genre
	}
	if dto.Language != "" {
		movie.Language = dto.Language
	}
	if dto.DurationMinutes > 0 {
		movie.DurationMinutes = dto.DurationMinutes
	}
	if releaseDate := parseReleaseDate(dto.ReleaseDate); releaseDate != nil {
		movie.ReleaseDate = releaseDate
	}
	if dto.PosterURL != "" {
		movie.PosterURL = dto.PosterURL
	}
}

func (s *service) GetAllMovies(ctx context.Context) ([]MovieDTO, error) {
	return cache.ReadThrough(ctx, s.cache, constants.CACHE_KEY_MOVIES_ALL, constants.TTL_MOVIE_LIST, func() ([]MovieDTO, error) {
		movies, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get movies: %w", err)
		}
		if len(movies) == 0 {
			return nil, apperror.NotFound("No Movies found")
		}
		return ToMovieDTOs(movies), nil
	})
}

func (s *service) GetMovieByName(ctx context.Context, name string) ([]MovieDTO, error) {
	movies, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get movies by name: %w", err)
	}
	if len(movies) == 0 {
		return nil, apperror.NotFoundf("No Movies found with name: %s", name)
	}
	return ToMovieDTOs(movies), nil
}

func (s *service) GetMovieByID(ctx context.Context, id int64) (*MovieDTO, error) {
	dto, err := cache.ReadThrough(ctx, s.cache, constants.BuildMovieDetailKey(id), constants.TTL_MOVIE_DETAIL, func() (MovieDTO, error) {
		movie, err := s.repo.FindByID(ctx, id)
		if err != nil {
			if errors.Is(err, ErrMovieNotFound) {
				return MovieDTO{}, movieNotFound(id)
			}
			return MovieDTO{}, fmt.Errorf("failed to get movie: %w", err)
		}
		return ToMovieDTO(movie), nil
	})
	if err != nil {
		return nil, err
	}
	return &dto, nil
}
