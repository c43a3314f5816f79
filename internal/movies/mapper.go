package movies

import "time"

const releaseDateLayout = "2006-01-02"

func ToMovieDTO(movie *Movie) MovieDTO {
	dto := MovieDTO{
		MovieID:         movie.ID,
		Name:            movie.Name,
		Description:     movie.Description,
		Genre:           movie.Genre,
		Language:        movie.Language,
		DurationMinutes: movie.DurationMinutes,
		PosterURL:       movie.PosterURL,
	}
	if movie.ReleaseDate != nil {
		formatted := movie.ReleaseDate.Format(releaseDateLayout)
		dto.ReleaseDate = &formatted
	}
	return dto
}

func ToMovieDTOs(movies []Movie) []MovieDTO {
	dtos := make([]MovieDTO, 0, len(movies))
	for i := range movies {
		dtos = append(dtos, ToMovieDTO(&movies[i]))
	}
	return dtos
}

// ToMovieEntity copies the descriptive fields. The id is assigned by the store.
func ToMovieEntity(dto MovieDTO) *Movie {
	return &Movie{
		Name:            dto.Name,
		Description:     dto.Description,
		Genre:           dto.Genre,
		Language:        dto.Language,
		DurationMinutes: dto.DurationMinutes,
		ReleaseDate:     parseReleaseDate(dto.ReleaseDate),
		PosterURL:       dto.PosterURL,
	}
}

// parseReleaseDate returns nil for absent or malformed dates; request binding
// rejects malformed dates before they reach the mapper.
func parseReleaseDate(value *string) *time.Time {
	if value == nil || *value == "" {
		return nil
	}
	parsed, err := time.Parse(releaseDateLayout, *value)
	if err != nil {
		return nil
	}
	return &parsed
}
