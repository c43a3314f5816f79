package cinemahalls

// CinemaHallDTO is the transport shape of a hall. MovieID is null when no
// movie is associated.
type CinemaHallDTO struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	MovieID  *int64 `json:"movie_id"`
}
