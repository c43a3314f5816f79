package cinemahalls

import (
	"context"
	"errors"
	"fmt"

	"cinepulse/internal/catalogevents"
	"cinepulse/internal/movies"
	"cinepulse/internal/shared/apperror"
	"cinepulse/internal/shared/constants"
	"cinepulse/pkg/cache"
	"cinepulse/pkg/logger"
)

type Service interface {
	GetAllCinemaHalls(ctx context.Context) ([]CinemaHallDTO, error)
	GetCinemaHallByName(ctx context.Context, name string) (*CinemaHallDTO, error)
	FindCinemaHallByID(ctx context.Context, id int64) (*CinemaHallDTO, error)
	AddCinemaHall(ctx context.Context, dto CinemaHallDTO) (*CinemaHallDTO, error)
	DeleteCinemaHall(ctx context.Context, id int64) error
	UpdateCinemaHall(ctx context.Context, id int64, dto CinemaHallDTO) (*CinemaHallDTO, error)
	SearchCinemaHallsByName(ctx context.Context, substring string) ([]CinemaHallDTO, error)
	AssociateMovieWithCinemaHall(ctx context.Context, cinemaHallID, movieID int64) (*CinemaHall, error)
	FindCinemaHallsByMovieAndLocation(ctx context.Context, movieID int64, location string) ([]CinemaHallDTO, error)
}

// MovieFinder is the part of the movie store the hall service needs.
type MovieFinder interface {
	FindByID(ctx context.Context, id int64) (*movies.Movie, error)
}

type service struct {
	repo      Repository
	movies    MovieFinder
	cache     cache.Service
	publisher catalogevents.Publisher
	log       *logger.Logger
}

func NewService(repo Repository, movieFinder MovieFinder, cacheService cache.Service, publisher catalogevents.Publisher) Service {
	if publisher == nil {
		publisher = catalogevents.NoopPublisher{}
	}
	return &service{
		repo:      repo,
		movies:    movieFinder,
		cache:     cacheService,
		publisher: publisher,
		log:       logger.GetDefault(),
	}
}

func (s *service) GetAllCinemaHalls(ctx context.Context) ([]CinemaHallDTO, error) {
	return cache.ReadThrough(ctx, s.cache, constants.CACHE_KEY_HALLS_ALL, constants.TTL_HALL_LIST, func() ([]CinemaHallDTO, error) {
		halls, err := s.repo.FindAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to get cinema halls: %w", err)
		}
		if len(halls) == 0 {
			return nil, apperror.NotFound("No Cinema Halls found")
		}
		return ToCinemaHallDTOs(halls), nil
	})
}

// GetCinemaHallByName returns the first hall with exactly this name.
func (s *service) GetCinemaHallByName(ctx context.Context, name string) (*CinemaHallDTO, error) {
	halls, err := s.repo.FindByName(ctx, name)
	if err != nil {
		return nil, fmt.Errorf("failed to get cinema hall by name: %w", err)
	}
	if len(halls) == 0 {
		return nil, apperror.NotFound("Cinema Hall Not found")
	}

	dto := ToCinemaHallDTO(&halls[0])
	return &dto, nil
}

func (s *service) FindCinemaHallByID(ctx context.Context, id int64) (*CinemaHallDTO, error) {
	dto, err := cache.ReadThrough(ctx, s.cache, constants.BuildHallDetailKey(id), constants.TTL_HALL_DETAIL, func() (CinemaHallDTO, error) {
		hall, err := s.findHall(ctx, id, apperror.NotFoundf("CinemaHall not found with id %d", id))
		if err != nil {
			return CinemaHallDTO{}, err
		}
		return ToCinemaHallDTO(hall), nil
	})
	if err != nil {
		return nil, err
	}
	return &dto, nil
}

// AddCinemaHall stores a new hall. dto.MovieID is ignored.
func (s *service) AddCinemaHall(ctx context.Context, dto CinemaHallDTO) (*CinemaHallDTO, error) {
	hall := ToCinemaHallEntity(dto)
	if err := s.repo.Save(ctx, hall); err != nil {
		return nil, fmt.Errorf("failed to save cinema hall: %w", err)
	}

	result := ToCinemaHallDTO(hall)
	s.afterWrite(ctx, catalogevents.EventCinemaHallCreated, hall.ID, result)
	return &result, nil
}

func (s *service) DeleteCinemaHall(ctx context.Context, id int64) error {
	exists, err := s.repo.ExistsByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to check cinema hall: %w", err)
	}
	if !exists {
		return apperror.NotFound("cinemaHall not found")
	}

	if err := s.repo.DeleteByID(ctx, id); err != nil {
		if errors.Is(err, ErrCinemaHallNotFound) {
			return apperror.NotFound("cinemaHall not found")
		}
		return fmt.Errorf("failed to delete cinema hall: %w", err)
	}

	s.afterWrite(ctx, catalogevents.EventCinemaHallDeleted, id, nil)
	return nil
}

// UpdateCinemaHall applies name and location when non-empty. The movie
// relation is left as is.
func (s *service) UpdateCinemaHall(ctx context.Context, id int64, dto CinemaHallDTO) (*CinemaHallDTO, error) {
	hall, err := s.findHall(ctx, id, apperror.NotFound("cinema hall not found"))
	if err != nil {
		return nil, err
	}

	if dto.Name != "" {
		hall.Name = dto.Name
	}
	if dto.Location != "" {
		hall.Location = dto.Location
	}

	if err := s.repo.Save(ctx, hall); err != nil {
		return nil, fmt.Errorf("failed to update cinema hall: %w", err)
	}

	result := ToCinemaHallDTO(hall)
	s.afterWrite(ctx, catalogevents.EventCinemaHallUpdated, hall.ID, result)
	return &result, nil
}

func (s *service) SearchCinemaHallsByName(ctx context.Context, substring string) ([]CinemaHallDTO, error) {
	halls, err := s.repo.SearchByName(ctx, substring)
	if err != nil {
		return nil, fmt.Errorf("failed to search cinema halls: %w", err)
	}
	if len(halls) == 0 {
		return nil, apperror.NotFoundf("No Cinema Halls found with name containing: %s", substring)
	}
	return ToCinemaHallDTOs(halls), nil
}

// AssociateMovieWithCinemaHall points the hall at the movie and returns the
// stored hall itself, movie included.
func (s *service) AssociateMovieWithCinemaHall(ctx context.Context, cinemaHallID, movieID int64) (*CinemaHall, error) {
	hall, err := s.findHall(ctx, cinemaHallID, apperror.NotFound("Cinema Hall not found"))
	if err != nil {
		return nil, err
	}

	movie, err := s.movies.FindByID(ctx, movieID)
	if err != nil {
		if errors.Is(err, movies.ErrMovieNotFound) {
			return nil, apperror.NotFound("Movie not found")
		}
		return nil, fmt.Errorf("failed to get movie: %w", err)
	}

	hall.Movie = movie
	hall.MovieID = &movie.ID

	if err := s.repo.Save(ctx, hall); err != nil {
		return nil, fmt.Errorf("failed to associate movie with cinema hall: %w", err)
	}

	s.afterWrite(ctx, catalogevents.EventCinemaHallMovieAssociated, hall.ID, ToCinemaHallDTO(hall))
	return hall, nil
}

// FindCinemaHallsByMovieAndLocation may return an empty list; no match is not an error here.
func (s *service) FindCinemaHallsByMovieAndLocation(ctx context.Context, movieID int64, location string) ([]CinemaHallDTO, error) {
	halls, err := s.repo.FindByMovieAndLocation(ctx, movieID, location)
	if err != nil {
		return nil, fmt.Errorf("failed to get cinema halls by movie and location: %w", err)
	}
	return ToCinemaHallDTOs(halls), nil
}

// findHall loads a hall, reporting notFound when it does not exist.
func (s *service) findHall(ctx context.Context, id int64, notFound error) (*CinemaHall, error) {
	hall, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrCinemaHallNotFound) {
			return nil, notFound
		}
		return nil, fmt.Errorf("failed to get cinema hall: %w", err)
	}
	return hall, nil
}
