package cinemahalls

// ToCinemaHallDTO renames cinema_hall_id to id and flattens the movie relation.
func ToCinemaHallDTO(hall *CinemaHall) CinemaHallDTO {
	dto := CinemaHallDTO{
		ID:       hall.ID,
		Name:     hall.Name,
		Location: hall.Location,
	}
	switch {
	case hall.Movie != nil:
		movieID := hall.Movie.ID
		dto.MovieID = &movieID
	case hall.MovieID != nil:
		movieID := *hall.MovieID
		dto.MovieID = &movieID
	}
	return dto
}

func ToCinemaHallDTOs(halls []CinemaHall) []CinemaHallDTO {
	dtos := make([]CinemaHallDTO, 0, len(halls))
	for i := range halls {
		dtos = append(dtos, ToCinemaHallDTO(&halls[i]))
	}
	return dtos
}

// ToCinemaHallEntity copies name and location only; the movie relation is
// never set from a DTO.
func ToCinemaHallEntity(dto CinemaHallDTO) *CinemaHall {
	return &CinemaHall{
		Name:     dto.Name,
		Location: dto.Location,
	}
}
