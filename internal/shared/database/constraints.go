package database

import (
	"gorm.io/gorm"
)

// MigrateIndexes adds the lookup indexes gorm tags cannot express.
func MigrateIndexes(db *gorm.DB) error {
	// Case-insensitive substring search on hall names
	err := db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_cinema_halls_lower_name
		ON cinema_halls (LOWER(name));
	`).Error
	if err != nil {
		return err
	}

	// Halls showing a movie in a given location
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_cinema_halls_movie_location
		ON cinema_halls (movie_id, location);
	`).Error
	if err != nil {
		return err
	}

	// Exact-name movie lookups
	err = db.Exec(`
		CREATE INDEX IF NOT EXISTS idx_movies_name
		ON movies (name);
	`).Error
	if err != nil {
		return err
	}

	return nil
}
