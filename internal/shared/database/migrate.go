package database

import (
	"cinepulse/internal/cinemahalls"
	"cinepulse/internal/movies"
	"cinepulse/internal/users"

	"gorm.io/gorm"
)

// Migrate creates the catalog schema. Movies are migrated before cinema halls
// so the cinema_halls.movie_id foreign key has a target.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&users.User{},
		&movies.Movie{},
		&cinemahalls.CinemaHall{},
	); err != nil {
		return err
	}
	return MigrateIndexes(db)
}
