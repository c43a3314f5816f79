package catalogevents

import (
	"encoding/json"
	"fmt"
	"time"

	"cinepulse/internal/shared/constants"

	"github.com/google/uuid"
)

type EventType string

const (
	EventMovieCreated EventType = "movie.created"
	EventMovieUpdated EventType = "movie.updated"
	EventMovieDeleted EventType = "movie.deleted"

	EventCinemaHallCreated         EventType = "cinema_hall.created"
	EventCinemaHallUpdated         EventType = "cinema_hall.updated"
	EventCinemaHallDeleted         EventType = "cinema_hall.deleted"
	EventCinemaHallMovieAssociated EventType = "cinema_hall.movie_associated"
)

// Event describes a committed write to the catalog.
type Event struct {
	ID         uuid.UUID   `json:"id"`
	Type       EventType   `json:"type"`
	Entity     string      `json:"entity"`
	EntityID   int64       `json:"entity_id"`
	OccurredAt time.Time   `json:"occurred_at"`
	Payload    interface{} `json:"payload,omitempty"`
}

// NewMovieEvent builds an event for a movie write
func NewMovieEvent(eventType EventType, movieID int64, payload interface{}) *Event {
	return newEvent(eventType, constants.ENTITY_MOVIE, movieID, payload)
}

// NewCinemaHallEvent builds an event for a cinema hall write
func NewCinemaHallEvent(eventType EventType, cinemaHallID int64, payload interface{}) *Event {
	return newEvent(eventType, constants.ENTITY_CINEMA_HALL, cinemaHallID, payload)
}

func newEvent(eventType EventType, entity string, entityID int64, payload interface{}) *Event {
	return &Event{
		ID:         uuid.New(),
		Type:       eventType,
		Entity:     entity,
		EntityID:   entityID,
		OccurredAt: time.Now().UTC(),
		Payload:    payload,
	}
}

// PartitionKey keeps every event of one record on the same partition.
func (e *Event) PartitionKey() string {
	return fmt.Sprintf("%s:%d", e.Entity, e.EntityID)
}

func (e *Event) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

func FromJSON(data []byte) (*Event, error) {
	var e Event
	if err := json.Unmarshal(data, &e); err != nil {
		return nil, err
	}
	return &e, nil
}
