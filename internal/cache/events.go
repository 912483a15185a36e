package cache

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/redis/go-redis/v9"

	"showtix/internal/lib/logger/sl"
	"showtix/internal/models"
)

type EventsGetter interface {
	GetAllEvents(ctx context.Context) ([]models.Event, error)
}

// EventSource serves the event list from the cache, falling back to the
// store and populating the cache on a miss.
type EventSource struct {
	log   *slog.Logger
	cache *Cache
	store EventsGetter
}

func NewEventSource(log *slog.Logger, cache *Cache, store EventsGetter) *EventSource {
	return &EventSource{
		log:   log,
		cache: cache,
		store: store,
	}
}

func (s *EventSource) GetAllEvents(ctx context.Context) ([]models.Event, error) {
	cached, err := s.cache.rdb.Get(ctx, eventsKey).Bytes()
	if err == nil {
		var events []models.Event
		if err = json.Unmarshal(cached, &events); err == nil {
			return events, nil
		}
		s.log.Warn("failed to decode cached events", sl.Err(err))
	} else if !errors.Is(err, redis.Nil) {
		s.log.Warn("events cache unavailable", sl.Err(err))
	}

	events, err := s.store.GetAllEvents(ctx)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(events)
	if err != nil {
		s.log.Warn("failed to encode events for cache", sl.Err(err))
		return events, nil
	}

	if err = s.cache.rdb.Set(ctx, eventsKey, data, s.cache.ttl).Err(); err != nil {
		s.log.Warn("failed to populate events cache", sl.Err(err))
	}

	return events, nil
}
