package movies

// MovieDTO is the transport shape of a movie. ReleaseDate uses YYYY-MM-DD.
type MovieDTO struct {
	MovieID         int64   `json:"movie_id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Genre           string  `json:"genre"`
	Language        string  `json:"language"`
	DurationMinutes int     `json:"duration_minutes"`
	ReleaseDate     *string `json:"release_date"`
	PosterURL       string  `json:"poster_url"`
}
