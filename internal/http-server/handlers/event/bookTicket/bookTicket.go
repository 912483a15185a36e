package bookTicket

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"

	"showtix/internal/lib/api/response"
	"showtix/internal/lib/logger/sl"
	"showtix/internal/models"
	"showtix/internal/storage"
)

type BookingRequest struct {
	EventID string `json:"eventId" validate:"required"`
	Tickets int    `json:"tickets" validate:"required,gt=0"`
}

type BookingResponse struct {
	response.Response
	Success bool          `json:"success"`
	Message string        `json:"message,omitempty"`
	Event   *models.Event `json:"event,omitempty"`
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=TicketBooker
type TicketBooker interface {
	BookTickets(ctx context.Context, eventID string, tickets int) (*models.Event, error)
}

//go:generate go run github.com/vektra/mockery/v2@v2.51.1 --name=EventsInvalidator
type EventsInvalidator interface {
	InvalidateEvents(ctx context.Context) error
}

// New commits a ticket purchase. The store performs the availability check
// and the decrement as one conditional update, so this handler never sees a
// stale count; a sold-out race simply comes back as ErrNotEnoughTickets.
func New(log *slog.Logger, booker TicketBooker, invalidator EventsInvalidator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		const op = "handlers.event.bookTicket.New"

		log := log.With(slog.String("op", op))

		var req BookingRequest

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

		event, err := booker.BookTickets(r.Context(), req.EventID, req.Tickets)
		if err != nil {
			log.Error("failed to book tickets", sl.Err(err))

			switch {
			case errors.Is(err, storage.ErrEventNotFound):
				render.Status(r, http.StatusNotFound)
				render.JSON(w, r, response.Error("event not found"))
			case errors.Is(err, storage.ErrNotEnoughTickets):
				render.Status(r, http.StatusBadRequest)
				render.JSON(w, r, response.Error("not enough tickets available"))
			default:
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, response.Error("failed to book tickets"))
			}
			return
		}

		if err = invalidator.InvalidateEvents(r.Context()); err != nil {
			// Stale listings expire with the cache TTL; the booking stands.
			log.Warn("failed to invalidate events cache", sl.Err(err))
		}

		log.Info("tickets booked",
			slog.String("event_id", req.EventID),
			slog.Int("tickets", req.Tickets),
			slog.Int("available", event.AvailableTickets),
		)

		render.JSON(w, r, BookingResponse{
			Response: response.OK(),
			Success:  true,
			Message:  fmt.Sprintf("Successfully booked %d tickets for %s", req.Tickets, event.EventName),
			Event:    event,
		})
	}
}
