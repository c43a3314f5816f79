package movies

// CreateMovieRequest is the body of POST /movies/add
type CreateMovieRequest struct {
	Name            string  `json:"name" binding:"required,max=255"`
	Description     string  `json:"description"`
	Genre           string  `json:"genre" binding:"max=100"`
	Language        string  `json:"language" binding:"max=100"`
	DurationMinutes int     `json:"duration_minutes" binding:"gte=0"`
	ReleaseDate     *string `json:"release_date" binding:"omitempty,datetime=2006-01-02"`
	PosterURL       string  `json:"poster_url" binding:"omitempty,url"`
}

// UpdateMovieRequest is the body of PATCH /movies/:movieId. Empty fields are
// left unchanged.
type UpdateMovieRequest struct {
	Name            string  `json:"name" binding:"max=255"`
	Description     string  `json:"description"`
	Genre           string  `json:"genre" binding:"max=100"`
	Language        string  `json:"language" binding:"max=100"`
	DurationMinutes int     `json:"duration_minutes" binding:"gte=0"`
	ReleaseDate     *string `json:"release_date" binding:"omitempty,datetime=2006-01-02"`
	PosterURL       string  `json:"poster_url" binding:"omitempty,url"`
}

func (r CreateMovieRequest) ToDTO() MovieDTO {
	return MovieDTO{
		Name:            r.Name,
		Description:     r.Description,
		Genre:           r.Genre,
		Language:        r.Language,
		DurationMinutes: r.DurationMinutes,
		ReleaseDate:     r.ReleaseDate,
		PosterURL:       r.PosterURL,
	}
}

func (r UpdateMovieRequest) ToDTO() MovieDTO {
	return MovieDTO{
		Name:            r.Name,
		Description:     r.Description,
		Genre:           r.Genre,
		Language:        r.Language,
		DurationMinutes: r.DurationMinutes,
		ReleaseDate:     r.ReleaseDate,
		PosterURL:       r.PosterURL,
	}
}
