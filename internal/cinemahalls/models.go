package cinemahalls

import (
	"time"

	"cinepulse/internal/movies"
)

// CinemaHall optionally shows one movie. Deleting that movie clears MovieID.
type CinemaHall struct {
	ID        int64         `json:"cinema_hall_id" gorm:"column:cinema_hall_id;primaryKey;autoIncrement"`
	Name      string        `json:"name" gorm:"not null"`
	Location  string        `json:"location"`
	MovieID   *int64        `json:"movie_id" gorm:"column:movie_id"`
	Movie     *movies.Movie `json:"movie,omitempty" gorm:"foreignKey:MovieID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

func (CinemaHall) TableName() string {
	return "cinema_halls"
}
