package cinemahalls

import (
	"context"

	"cinepulse/internal/catalogevents"
	"cinepulse/internal/shared/constants"
	"cinepulse/pkg/cache"
)

func (s *service) afterWrite(ctx context.Context, eventType catalogevents.EventType, cinemaHallID int64, payload interface{}) {
	cache.Invalidate(ctx, s.cache, constants.InvalidationPatterns(constants.ENTITY_CINEMA_HALL)...)

	if err := s.publisher.Publish(ctx, catalogevents.NewCinemaHallEvent(eventType, cinemaHallID, payload)); err != nil {
		s.log.ErrorWithContext(ctx, "Failed to publish catalog event", err, map[string]interface{}{
			"type":           string(eventType),
			"cinema_hall_id": cinemaHallID,
		})
	}

	s.log.LogCatalogChange(ctx, string(eventType), constants.ENTITY_CINEMA_HALL, cinemaHallID)
}
