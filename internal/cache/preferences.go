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

type ArtistsGetter interface {
	TopArtists(ctx context.Context, accessToken string) ([]models.Artist, error)
}

// PreferenceSource caches each listener's top-artists list, keyed by a hash
// of the access token.
type PreferenceSource struct {
	log    *slog.Logger
	cache  *Cache
	source ArtistsGetter
}

func NewPreferenceSource(log *slog.Logger, cache *Cache, source ArtistsGetter) *PreferenceSource {
	return &PreferenceSource{
		log:    log,
		cache:  cache,
		source: source,
	}
}

func (s *PreferenceSource) TopArtists(ctx context.Context, accessToken string) ([]models.Artist, error) {
	key := preferencesKey(accessToken)

	cached, err := s.cache.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var artists []models.Artist
		if err = json.Unmarshal(cached, &artists); err == nil {
			return artists, nil
		}
		s.log.Warn("failed to decode cached preferences", sl.Err(err))
	} else if !errors.Is(err, redis.Nil) {
		s.log.Warn("preferences cache unavailable", sl.Err(err))
	}

	artists, err := s.source.TopArtists(ctx, accessToken)
	if err != nil {
		return nil, err
	}

	data, err := json.Marshal(artists)
	if err != nil {
		s.log.Warn("failed to encode preferences for cache", sl.Err(err))
		return artists, nil
	}

	if err = s.cache.rdb.Set(ctx, key, data, s.cache.ttl).Err(); err != nil {
		s.log.Warn("failed to populate preferences cache", sl.Err(err))
	}

	return artists, nil
}
