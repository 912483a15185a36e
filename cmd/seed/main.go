// Command seed loads the demo concert catalogue into the event store.
// Events that already exist are left untouched, so reruns are safe.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"showtix/internal/config"
	"showtix/internal/lib/logger/sl"
	"showtix/internal/models"
	"showtix/internal/storage"
	"showtix/internal/storage/postgres"
)

var events = []models.Event{
	{
		EventID:          "event1",
		ArtistName:       "Arijit Singh",
		EventName:        "Arijit Live in Concert",
		Date:             time.Date(2025, 12, 15, 19, 0, 0, 0, time.UTC),
		Venue:            "Delhi Stadium",
		TicketPrice:      1500,
		TotalTickets:     1000,
		AvailableTickets: 1000,
		ImageURL:         "/images/Arijit_Singh.avif",
	},
	{
		EventID:          "event2",
		ArtistName:       "Neha Kakkar",
		EventName:        "Neha Kakkar World Tour",
		Date:             time.Date(2025, 12, 22, 20, 0, 0, 0, time.UTC),
		Venue:            "Mumbai Arena",
		TicketPrice:      2000,
		TotalTickets:     800,
		AvailableTickets: 650,
		ImageURL:         "/images/Neha_kakkar.jpeg",
	},
	{
		EventID:          "event3",
		ArtistName:       "Badshah",
		EventName:        "Badshah Rap Night",
		Date:             time.Date(2025, 12, 30, 21, 0, 0, 0, time.UTC),
		Venue:            "Bengaluru Stadium",
		TicketPrice:      1800,
		TotalTickets:     1200,
		AvailableTickets: 900,
		ImageURL:         "/images/badshah.webp",
	},
	{
		EventID:          "event4",
		ArtistName:       "A.R. Rahman",
		EventName:        "Rahman Musical Night",
		Date:             time.Date(2026, 1, 5, 19, 30, 0, 0, time.UTC),
		Venue:            "Chennai Auditorium",
		TicketPrice:      2500,
		TotalTickets:     1500,
		AvailableTickets: 1500,
		ImageURL:         "/images/AR_Rahman.jpg",
	},
	{
		EventID:          "event5",
		ArtistName:       "Shreya Ghoshal",
		EventName:        "Shreya Ghoshal Live",
		Date:             time.Date(2026, 1, 12, 19, 0, 0, 0, time.UTC),
		Venue:            "Hyderabad Grounds",
		TicketPrice:      1700,
		TotalTickets:     900,
		AvailableTickets: 900,
		ImageURL:         "/images/Shreya_ghosal.avif",
	},
	{
		EventID:          "event6",
		ArtistName:       "DIVINE",
		EventName:        "Gully Gang Takeover",
		Date:             time.Date(2026, 1, 18, 21, 0, 0, 0, time.UTC),
		Venue:            "Mumbai Warehouse",
		TicketPrice:      1200,
		TotalTickets:     600,
		AvailableTickets: 480,
		ImageURL:         "/images/Divine.webp",
	},
	{
		EventID:          "event7",
		ArtistName:       "Sonu Nigam",
		EventName:        "An Evening with Sonu Nigam",
		Date:             time.Date(2026, 1, 25, 18, 30, 0, 0, time.UTC),
		Venue:            "Kolkata Concert Hall",
		TicketPrice:      2200,
		TotalTickets:     1100,
		AvailableTickets: 1100,
		ImageURL:         "/images/Sonu_Nigam.jpg",
	},
	{
		EventID:          "event8",
		ArtistName:       "Diljit Dosanjh",
		EventName:        "Dil-Luminati Tour",
		Date:             time.Date(2026, 2, 1, 20, 0, 0, 0, time.UTC),
		Venue:            "Chandigarh Stadium",
		TicketPrice:      3000,
		TotalTickets:     2000,
		AvailableTickets: 1650,
		ImageURL:         "/images/Diljit_Dosanjh.jpeg",
	},
}

func main() {
	cfg := config.MustLoad()

	log := slog.New(slog.NewTextHandler(os.Stdout, nil))

	store, err := postgres.InitDB(&cfg.Database)
	if err != nil {
		log.Error("failed to init storage", sl.Err(err))
		os.Exit(1)
	}
	defer store.Close()

	ctx := context.Background()

	var created, skipped int
	for _, event := range events {
		err = store.CreateEvent(ctx, event)
		switch {
		case err == nil:
			created++
		case errors.Is(err, storage.ErrEventExists):
			skipped++
		default:
			log.Error("failed to seed event",
				slog.String("event_id", event.EventID), sl.Err(err))
			os.Exit(1)
		}
	}

	log.Info("seeding complete",
		slog.Int("created", created),
		slog.Int("skipped", skipped),
	)
}
