package refreshUserData

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"showtix/internal/lib/api/bearer"
	"showtix/internal/lib/api/response"
	"showtix/internal/lib/logger/sl"
	"showtix/internal/models"
	"showtix/internal/ranking"
)

type RefreshResponse struct {
	response.Response
	FanScore int `json:"fan_score"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PreferenceClient
type PreferenceClient interface {
	Profile(ctx context.Context, accessToken string) (*models.Profile, error)
	TopArtists(ctx context.Context, accessToken string) ([]models.Artist, error)
	TopTracks(ctx context.Context, accessToken string) ([]models.Track, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=UserUpserter
type UserUpserter interface {
	UpsertUser(ctx context.Context, user models.User) error
}

// New pulls the listener's profile and current preference lists, recomputes
// the fan score and stores the result.
func New(log *slog.Logger, client PreferenceClient, users UserUpserter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.spotify.refreshUserData.New"

		log := log.With(slog.String("op", op))

		token, ok := bearer.FromRequest(r)
		if !ok {
			log.Info("missing access token")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized - please log in via Spotify"))
			return
		}

		profile, err := client.Profile(r.Context(), token)
		if err != nil {
			log.Error("failed to fetch profile", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to refresh user data"))
			return
		}

		log = log.With(slog.String("spotify_id", profile.ID))

		artists, err := client.TopArtists(r.Context(), token)
		if err != nil {
			log.Error("failed to fetch top artists", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to refresh user data"))
			return
		}

		tracks, err := client.TopTracks(r.Context(), token)
		if err != nil {
			log.Error("failed to fetch top tracks", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to refresh user data"))
			return
		}

		fanScore := ranking.FanScore(artists, tracks)

		user := models.User{
			SpotifyID: profile.ID,
			Email:     profile.Email,
			FanScore:  fanScore,
		}

		if err = users.UpsertUser(r.Context(), user); err != nil {
			log.Error("failed to save user", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to refresh user data"))
			return
		}

		log.Info("user preferences updated",
			slog.Int("fan_score", fanScore),
			slog.Int("artists", len(artists)),
			slog.Int("tracks", len(tracks)),
		)

		render.JSON(w, r, RefreshResponse{
			Response: response.OK(),
			FanScore: fanScore,
		})
	}
}
