package getAllEvents

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

type EventsResponse struct {
	response.Response
	Events []models.Event `json:"events"`
}

type RankedEventsResponse struct {
	response.Response
	Events []models.RankedEvent `json:"events"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsGetter
type EventsGetter interface {
	GetAllEvents(ctx context.Context) ([]models.Event, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=PreferencesGetter
type PreferencesGetter interface {
	TopArtists(ctx context.Context, accessToken string) ([]models.Artist, error)
}

// New lists all events, date-ascending. When the request carries an access
// token and the preference source answers, the listing is reordered by
// relevance instead; any trouble with the preference source degrades to the
// unranked listing, never to an error.
func New(log *slog.Logger, eventsGetter EventsGetter, preferences PreferencesGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.getAllEvents.New"

		log := log.With(slog.String("op", op))

		events, err := eventsGetter.GetAllEvents(r.Context())
		if err != nil {
			log.Error("failed to get events", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to get events"))
			return
		}

		token, ok := bearer.FromRequest(r)
		if !ok {
			log.Info("no access token, returning unranked events", slog.Int("count", len(events)))
			responseUnranked(w, r, events)
			return
		}

		artists, err := preferences.TopArtists(r.Context(), token)
		if err != nil {
			log.Warn("preference source unavailable, returning unranked events", sl.Err(err))
			responseUnranked(w, r, events)
			return
		}

		if len(artists) == 0 {
			log.Info("empty preference list, returning unranked events")
			responseUnranked(w, r, events)
			return
		}

		ranked := ranking.Rank(events, artists)

		log.Info("events ranked by listener preference",
			slog.Int("count", len(ranked)),
			slog.Int("preferences", len(artists)),
		)

		render.JSON(w, r, RankedEventsResponse{
			Response: response.OK(),
			Events:   ranked,
		})
	}
}

func responseUnranked(w http.ResponseWriter, r *http.Request, events []models.Event) {
	render.JSON(w, r, EventsResponse{
		Response: response.OK(),
		Events:   events,
	})
}
