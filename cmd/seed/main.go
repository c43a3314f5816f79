package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"cinepulse/internal/cinemahalls"
	"cinepulse/internal/movies"
	"cinepulse/internal/shared/config"
	"cinepulse/internal/shared/constants"
	"cinepulse/internal/shared/database"
	"cinepulse/internal/users"
	"cinepulse/pkg/cache"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

type Seeder struct {
	db *database.DB
}

func main() {
	fmt.Println("🌱 Starting Cinepulse Database Seeder...")

	_ = godotenv.Load()
	cfg := config.Load()

	db, err := database.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	seeder := &Seeder{db: db}

	fmt.Println("\n🧹 Cleaning database...")
	if err := seeder.CleanDatabase(); err != nil {
		log.Fatalf("Failed to clean database: %v", err)
	}
	fmt.Println("✅ Database cleaned successfully")

	fmt.Println("\n🌱 Seeding database...")
	if err := seeder.SeedAll(); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}
	fmt.Println("✅ Database seeded successfully")

	fmt.Println("\n🎉 Seeding completed! Log in as admin@cinepulse.dev / qwerty to manage the catalog.")
}

// CleanDatabase truncates all tables, dependants first
func (s *Seeder) CleanDatabase() error {
	tables := []string{
		"cinema_halls",
		"movies",
		"users",
	}

	tx := s.db.PostgreSQL.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	for _, table := range tables {
		fmt.Printf("  Truncating table: %s\n", table)
		if err := tx.Exec(fmt.Sprintf("TRUNCATE TABLE %s RESTART IDENTITY CASCADE", table)).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}

	return tx.Commit().Error
}

// SeedAll seeds users, then movies, then the halls that show them
func (s *Seeder) SeedAll() error {
	if err := s.SeedUsers(); err != nil {
		return fmt.Errorf("failed to seed users: %w", err)
	}

	movieIDs, err := s.SeedMovies()
	if err != nil {
		return fmt.Errorf("failed to seed movies: %w", err)
	}

	if err := s.SeedCinemaHalls(movieIDs); err != nil {
		return fmt.Errorf("failed to seed cinema halls: %w", err)
	}

	// Drop cached catalog reads so the API serves the fresh rows
	cache.Invalidate(context.Background(), cache.NewService(s.db.GetRedisClient()),
		constants.InvalidationPatterns(constants.ENTITY_MOVIE)...)

	return nil
}

// SeedUsers creates 1 admin and 1 customer, both with password "qwerty"
func (s *Seeder) SeedUsers() error {
	fmt.Println("  👤 Seeding users...")

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte("qwerty"), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	usersData := []struct {
		firstName string
		lastName  string
		email     string
		role      users.Role
	}{
		{"Admin", "User", "admin@cinepulse.dev", users.RoleAdmin},
		{"Casey", "Viewer", "casey@cinepulse.dev", users.RoleCustomer},
	}

	repo := users.NewRepository(s.db.PostgreSQL)
	for _, userData := range usersData {
		user := users.User{
			FirstName: userData.firstName,
			LastName:  userData.lastName,
			Email:     userData.email,
			Password:  string(hashedPassword),
			Role:      userData.role,
		}

		if err := repo.Create(context.Background(), &user); err != nil {
			return fmt.Errorf("failed to create user %s: %w", userData.email, err)
		}
		fmt.Printf("    ✅ Created user: %s (%s)\n", user.Email, user.Role)
	}

	return nil
}

// SeedMovies creates a small catalog and returns the ids keyed by name
func (s *Seeder) SeedMovies() (map[string]int64, error) {
	fmt.Println("  🎬 Seeding movies...")

	date := func(value string) *time.Time {
		t, _ := time.Parse("2006-01-02", value)
		return &t
	}

	catalog := []movies.Movie{
		{Name: "Inception", Genre: "Sci-Fi", Language: "English", DurationMinutes: 148, ReleaseDate: date("2010-07-16"),
			Description: "A thief who steals corporate secrets through dream-sharing technology."},
		{Name: "Interstellar", Genre: "Sci-Fi", Language: "English", DurationMinutes: 169, ReleaseDate: date("2014-11-07"),
			Description: "Explorers travel through a wormhole in search of a new home for humanity."},
		{Name: "3 Idiots", Genre: "Comedy", Language: "Hindi", DurationMinutes: 170, ReleaseDate: date("2009-12-25"),
			Description: "Two friends search for a long lost companion."},
		{Name: "Spirited Away", Genre: "Animation", Language: "Japanese", DurationMinutes: 125, ReleaseDate: date("2001-07-20"),
			Description: "A girl wanders into a world ruled by gods and witches."},
	}

	movieIDs := make(map[string]int64, len(catalog))
	for i := range catalog {
		if err := s.db.PostgreSQL.Create(&catalog[i]).Error; err != nil {
			return nil, fmt.Errorf("failed to create movie %s: %w", catalog[i].Name, err)
		}
		movieIDs[catalog[i].Name] = catalog[i].ID
		fmt.Printf("    ✅ Created movie: %s (id %d)\n", catalog[i].Name, catalog[i].ID)
	}

	return movieIDs, nil
}

// SeedCinemaHalls creates halls across two cities, one of them without a movie
func (s *Seeder) SeedCinemaHalls(movieIDs map[string]int64) error {
	fmt.Println("  🏛️  Seeding cinema halls...")

	showing := func(name string) *int64 {
		id, ok := movieIDs[name]
		if !ok {
			return nil
		}
		return &id
	}

	halls := []cinemahalls.CinemaHall{
		{Name: "PVR Phoenix Audi 1", Location: "Mumbai", MovieID: showing("Inception")},
		{Name: "PVR Phoenix Audi 2", Location: "Mumbai", MovieID: showing("3 Idiots")},
		{Name: "INOX Nariman Point", Location: "Mumbai", MovieID: showing("Inception")},
		{Name: "Cinepolis Forum", Location: "Bengaluru", MovieID: showing("Interstellar")},
		{Name: "Zoom Cinemas", Location: "Bengaluru"},
	}

	for i := range halls {
		if err := s.db.PostgreSQL.Omit("Movie").Create(&halls[i]).Error; err != nil {
			return fmt.Errorf("failed to create cinema hall %s: %w", halls[i].Name, err)
		}
		fmt.Printf("    ✅ Created cinema hall: %s, %s\n", halls[i].Name, halls[i].Location)
	}

	return nil
}
