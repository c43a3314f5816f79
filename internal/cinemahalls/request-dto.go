package cinemahalls

// CreateCinemaHallRequest is the body of POST /cinemahalls/add. movie_id is
// accepted but not applied; use the association endpoint instead.
type CreateCinemaHallRequest struct {
	Name     string `json:"name" binding:"required,max=255"`
	Location string `json:"location" binding:"max=255"`
	MovieID  *int64 `json:"movie_id"`
}

// UpdateCinemaHallRequest is the body of PATCH /cinemahalls/:id
type UpdateCinemaHallRequest struct {
	Name     string `json:"name" binding:"max=255"`
	Location string `json:"location" binding:"max=255"`
	MovieID  *int64 `json:"movie_id"`
}

// MovieLocationQuery is the query of GET /cinemahalls/by-movie
type MovieLocationQuery struct {
	MovieID  int64  `form:"movieId" binding:"required"`
	Location string `form:"location" binding:"required"`
}

// SearchQuery is the query of GET /cinemahalls/search
type SearchQuery struct {
	Name string `form:"name" binding:"required"`
}

func (r CreateCinemaHallRequest) ToDTO() CinemaHallDTO {
	return CinemaHallDTO{Name: r.Name, Location: r.Location, MovieID: r.MovieID}
}

func (r UpdateCinemaHallRequest) ToDTO() CinemaHallDTO {
	return CinemaHallDTO{Name: r.Name, Location: r.Location, MovieID: r.MovieID}
}
