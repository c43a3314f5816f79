package movies

import "time"

type Movie struct {
	ID              int64      `json:"movie_id" gorm:"column:movie_id;primaryKey;autoIncrement"`
	Name            string     `json:"name" gorm:"not null"`
	Description     string     `json:"description" gorm:"type:text"`
	Genre           string     `json:"genre"`
	Language        string     `json:"language"`
	DurationMinutes int        `json:"duration_minutes"`
	ReleaseDate     *time.Time `json:"release_date,omitempty" gorm:"type:date"`
	PosterURL       string     `json:"poster_url"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

func (Movie) TableName() string {
	return "movies"
}
