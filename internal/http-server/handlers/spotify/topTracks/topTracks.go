package topTracks

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

type TracksResponse struct {
	response.Response
	Tracks []models.Track `json:"tracks"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TracksGetter
type TracksGetter interface {
	TopTracks(ctx context.Context, accessToken string) ([]models.Track, error)
}

func New(log *slog.Logger, tracks TracksGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.spotify.topTracks.New"

		log := log.With(slog.String("op", op))

		token, ok := bearer.FromRequest(r)
		if !ok {
			log.Info("missing access token")
			render.Status(r, http.StatusUnauthorized)
			render.JSON(w, r, response.Error("unauthorized - please log in via Spotify"))
			return
		}

		items, err := tracks.TopTracks(r.Context(), token)
		if err != nil {
			log.Error("failed to fetch top tracks", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to fetch top tracks"))
			return
		}

		log.Info("top tracks fetched", slog.Int("count", len(items)))

		render.JSON(w, r, TracksResponse{
			Response: response.OK(),
			Tracks:   items,
		})
	}
}
