package createEvent

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"showtix/internal/lib/api/response"
	"showtix/internal/lib/logger/sl"
	"showtix/internal/models"
	"showtix/internal/storage"
)

type EventRequest struct {
	EventID      string    `json:"eventId" validate:"required"`
	ArtistName   string    `json:"artistName" validate:"required"`
	EventName    string    `json:"eventName" validate:"required"`
	Date         time.Time `json:"date" validate:"required"`
	Venue        string    `json:"venue" validate:"required"`
	TicketPrice  float64   `json:"ticketPrice" validate:"gte=0"`
	TotalTickets int       `json:"totalTickets" validate:"required,gt=0"`
	ImageURL     string    `json:"imageUrl"`
}

type EventResponse struct {
	response.Response
	EventID string `json:"eventId"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventCreator
type EventCreator interface {
	CreateEvent(ctx context.Context, event models.Event) error
}

// New creates an event with a full, untouched inventory. This is the
// administrative seeding surface; there is no update or delete.
func New(log *slog.Logger, creator EventCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.createEvent.New"

		log := log.With(slog.String("op", op))

		var req EventRequest

		err := render.DecodeJSON(r.Body, &req)
		if err != nil {
			log.Error("failed to decode request body", sl.Err(err))
			render.Status(r, http.StatusBadRequest)
			render.JSON(w, r, response.Error("failed to decode request"))
			return
		}

		log.Info("request body decoded", slog.Any("request", req))

		if err = validator.New().Struct(req); err != nil {
			var validateErr validator.ValidationErrors
			if errors.As(err, &validateErr) {
				log.Error("invalid request", sl.Err(err))
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.ValidationError(validateErr))
				return
			}
		}

		event := models.Event{
			EventID:          req.EventID,
			ArtistName:       req.ArtistName,
			EventName:        req.EventName,
			Date:             req.Date,
			Venue:            req.Venue,
			TicketPrice:      req.TicketPrice,
			TotalTickets:     req.TotalTickets,
			AvailableTickets: req.TotalTickets,
			ImageURL:         req.ImageURL,
		}

		if err = creator.CreateEvent(r.Context(), event); err != nil {
			if errors.Is(err, storage.ErrEventExists) {
				log.Info("event already exists", slog.String("event_id", req.EventID))
				render.Status(r, http.StatusConflict)
				render.JSON(w, r, response.Error("event already exists"))
				return
			}

			log.Error("failed to add event", sl.Err(err))
			render.Status(r, http.StatusInternalServerError)
			render.JSON(w, r, response.Error("failed to add event"))
			return
		}

		log.Info("event added", slog.String("event_id", req.EventID))

		render.JSON(w, r, EventResponse{
			Response: response.OK(),
			EventID:  req.EventID,
		})
	}
}
