package spotify

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"showtix/internal/config"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return New(&config.Spotify{
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
	})
}

func TestTopArtists(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/me/top/artists", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"items": [
				{"id": "a1", "name": "Arijit Singh", "popularity": 90, "genres": ["bollywood"]},
				{"id": "a2", "name": "Badshah", "popularity": 82}
			]
		}`))
	})

	artists, err := client.TopArtists(context.Background(), "test-token")
	require.NoError(t, err)

	require.Len(t, artists, 2)
	assert.Equal(t, "Arijit Singh", artists[0].Name)
	assert.Equal(t, 90, artists[0].Popularity)
	assert.Equal(t, []string{"bollywood"}, artists[0].Genres)
	assert.Equal(t, "Badshah", artists[1].Name)
}

func TestTopTracks(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/me/top/tracks", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"items": [
				{"id": "t1", "name": "Tum Hi Ho", "popularity": 88,
				 "artists": [{"name": "Arijit Singh"}, {"name": "Mithoon"}]}
			]
		}`))
	})

	tracks, err := client.TopTracks(context.Background(), "test-token")
	require.NoError(t, err)

	require.Len(t, tracks, 1)
	assert.Equal(t, "Tum Hi Ho", tracks[0].Name)
	assert.Equal(t, 88, tracks[0].Popularity)
	assert.Equal(t, []string{"Arijit Singh", "Mithoon"}, tracks[0].Artists)
}

func TestProfileEmailFallback(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/me", r.URL.Path)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "user123"}`))
	})

	profile, err := client.Profile(context.Background(), "test-token")
	require.NoError(t, err)

	assert.Equal(t, "user123", profile.ID)
	assert.Equal(t, "N/A", profile.Email)
}

func TestUpstreamError(t *testing.T) {
	t.Parallel()

	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})

	_, err := client.TopArtists(context.Background(), "expired-token")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "401")
}
