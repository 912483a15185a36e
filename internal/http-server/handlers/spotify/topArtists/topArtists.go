package topArtists

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"showtix/internal/lib/api/bearer"
	"showtix/internal/lib/api/response"
	"showtix/internal/lib/logger/sl"
	"showtix/internal/models"
)

type ArtistsResponse struct {
	response.Response
	Artists []models.Artist `json:"artists"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=ArtistsGetter
type ArtistsGetter interface {
	TopArtists(ctx context.Context, accessToken string) ([]models.Artist, error)
}

func New(log *slog.Logger, artists ArtistsGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.spotify.topArtists.New"

		log := log.With(slog.String("op", op))

		token, ok := bearer.FromRequest(r)
		if !ok {
			log.Info("missing access token")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized - please log in via Spotify"))
			return
		}

		items, err := artists.TopArtists(r.Context(), token)
		if err != nil {
			log.Error("failed to fetch top artists", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to fetch top artists"))
			return
		}

		log.Info("top artists fetched", slog.Int("count", len(items)))

		render.JSON(w, r, ArtistsResponse{
			Response: response.OK(),
			Artists:  items,
		})
	}
}
