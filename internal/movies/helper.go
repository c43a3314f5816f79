package movies

import (
	"context"

	"cinepulse/internal/catalogevents"
	"cinepulse/internal/shared/constants"
	"cinepulse/pkg/cache"
)

// afterWrite runs once a movie write is committed. Cache and broker failures
// are logged only; the write itself already succeeded.
func (s *service) afterWrite(ctx context.Context, eventType catalogevents.EventType, movieID int64, payload interface{}) {
	cache.Invalidate(ctx, s.cache, constants.InvalidationPatterns(constants.ENTITY_MOVIE)...)

	if err := s.publisher.Publish(ctx, catalogevents.NewMovieEvent(eventType, movieID, payload)); err != nil {
		s.log.ErrorWithContext(ctx, "Failed to publish catalog event", err, map[string]interface{}{
			"type":     string(eventType),
			"movie_id": movieID,
		})
	}

	s.log.LogCatalogChange(ctx, string(eventType), constants.ENTITY_MOVIE, movieID)
}
