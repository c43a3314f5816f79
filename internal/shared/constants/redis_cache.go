package constants

import (
	"fmt"
	"time"
)

// Redis Cache Configuration
// This file centralizes all Redis cache keys and TTL values for the Cinepulse catalog
// Pattern: cinepulse:{module}:{operation}:{identifier}

// ================== CACHE TTL DURATIONS ==================

const (
	TTL_SEMI_STATIC_MEDIUM = 2 * time.Hour    // 2 hours - for single catalog records
	TTL_SEMI_STATIC_QUICK  = 15 * time.Minute // 15 minutes - for catalog listings
)

// ================== REDIS KEY PREFIXES ==================

const (
	CACHE_PREFIX     = "cinepulse"
	RATELIMIT_PREFIX = CACHE_PREFIX + ":ratelimit"
)

// Catalog entity kinds, shared by cache invalidation and catalog events
const (
	ENTITY_MOVIE       = "movie"
	ENTITY_CINEMA_HALL = "cinema_hall"
)

// ================== MOVIES MODULE ==================

const (
	CACHE_KEY_MOVIES_ALL   = CACHE_PREFIX + ":movies:list:all"
	CACHE_KEY_MOVIE_DETAIL = CACHE_PREFIX + ":movies:detail:id:" // + movie-id
)

const (
	TTL_MOVIE_DETAIL = TTL_SEMI_STATIC_MEDIUM // 2 hours
	TTL_MOVIE_LIST   = TTL_SEMI_STATIC_QUICK  // 15 minutes
)

// ================== CINEMA HALLS MODULE ==================

const (
	CACHE_KEY_HALLS_ALL   = CACHE_PREFIX + ":halls:list:all"
	CACHE_KEY_HALL_DETAIL = CACHE_PREFIX + ":halls:detail:id:" // + cinema-hall-id
)

const (
	TTL_HALL_DETAIL = TTL_SEMI_STATIC_MEDIUM // 2 hours
	TTL_HALL_LIST   = TTL_SEMI_STATIC_QUICK  // 15 minutes
)

// ================== CACHE INVALIDATION PATTERNS ==================

const (
	PATTERN_INVALIDATE_MOVIES_ALL = CACHE_PREFIX + ":movies:*"
	PATTERN_INVALIDATE_HALLS_ALL  = CACHE_PREFIX + ":halls:*"
)

// ================== KEY BUILDERS ==================

func BuildMovieDetailKey(movieID int64) string {
	return fmt.Sprintf("%s%d", CACHE_KEY_MOVIE_DETAIL, movieID)
}

func BuildHallDetailKey(cinemaHallID int64) string {
	return fmt.Sprintf("%s%d", CACHE_KEY_HALL_DETAIL, cinemaHallID)
}

// InvalidationPatterns returns the patterns to clear after a write to entity.
// Movie writes also clear hall entries because halls embed the movie id and a
// movie delete detaches them.
func InvalidationPatterns(entity string) []string {
	switch entity {
	case ENTITY_MOVIE:
		return []string{PATTERN_INVALIDATE_MOVIES_ALL, PATTERN_INVALIDATE_HALLS_ALL}
	case ENTITY_CINEMA_HALL:
		return []string{PATTERN_INVALIDATE_HALLS_ALL}
	default:
		return nil
	}
}
