package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"showtix/internal/config"
	"showtix/internal/models"
	"showtix/internal/storage"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(25)
	db.SetConnMaxLifetime(5 * time.Minute)

	return &Storage{DB: db}, nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}

func (s *Storage) CreateEvent(ctx context.Context, event models.Event) error {
	if event.ImageURL == "" {
		event.ImageURL = models.PlaceholderImage
	}

	query := `
		INSERT INTO events (event_id, artist_name, event_name, date, venue,
			ticket_price, total_tickets, available_tickets, image_url)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := s.DB.ExecContext(ctx, query,
		event.EventID,
		event.ArtistName,
		event.EventName,
		event.Date,
		event.Venue,
		event.TicketPrice,
		event.TotalTickets,
		event.AvailableTickets,
		event.ImageURL,
	)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
			return storage.ErrEventExists
		}
		return fmt.Errorf("failed to create event: %w", err)
	}

	return nil
}

func (s *Storage) GetEvent(ctx context.Context, eventID string) (*models.Event, error) {
	query := `
		SELECT event_id, artist_name, event_name, date, venue,
			ticket_price, total_tickets, available_tickets, image_url
		FROM events
		WHERE event_id = $1`

	var event models.Event
	err := s.DB.QueryRowContext(ctx, query, eventID).Scan(
		&event.EventID,
		&event.ArtistName,
		&event.EventName,
		&event.Date,
		&event.Venue,
		&event.TicketPrice,
		&event.TotalTickets,
		&event.AvailableTickets,
		&event.ImageURL,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}

	return &event, nil
}

func (s *Storage) GetAllEvents(ctx context.Context) ([]models.Event, error) {
	query := `
		SELECT event_id, artist_name, event_name, date, venue,
			ticket_price, total_tickets, available_tickets, image_url
		FROM events
		ORDER BY date ASC`

	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get events: %w", err)
	}
	defer rows.Close()

	var events []models.Event
	for rows.Next() {
		var event models.Event
		err = rows.Scan(
			&event.EventID,
			&event.ArtistName,
			&event.EventName,
			&event.Date,
			&event.Venue,
			&event.TicketPrice,
			&event.TotalTickets,
			&event.AvailableTickets,
			&event.ImageURL,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan event: %w", err)
		}

		events = append(events, event)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating events: %w", err)
	}

	return events, nil
}

// BookTickets commits a purchase of tickets against the event's remaining
// availability and returns the updated snapshot. The decrement is a single
// conditional UPDATE, so two concurrent purchases can never both pass the
// availability check: the row is locked for the duration of the statement
// and available_tickets never goes negative.
func (s *Storage) BookTickets(ctx context.Context, eventID string, tickets int) (*models.Event, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		UPDATE events
		SET available_tickets = available_tickets - $2
		WHERE event_id = $1 AND available_tickets >= $2
		RETURNING event_id, artist_name, event_name, date, venue,
			ticket_price, total_tickets, available_tickets, image_url`

	var event models.Event
	err = tx.QueryRowContext(ctx, query, eventID, tickets).Scan(
		&event.EventID,
		&event.ArtistName,
		&event.EventName,
		&event.Date,
		&event.Venue,
		&event.TicketPrice,
		&event.TotalTickets,
		&event.AvailableTickets,
		&event.ImageURL,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, s.bookFailureReason(ctx, eventID)
		}
		return nil, fmt.Errorf("failed to book tickets: %w", err)
	}

	insertQuery := `
		INSERT INTO bookings (id, event_id, tickets, created_at)
		VALUES ($1, $2, $3, NOW())`

	_, err = tx.ExecContext(ctx, insertQuery, uuid.New(), eventID, tickets)
	if err != nil {
		return nil, fmt.Errorf("failed to record booking: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit booking: %w", err)
	}

	return &event, nil
}

// bookFailureReason distinguishes an unknown event from exhausted inventory
// after the conditional update matched no row.
func (s *Storage) bookFailureReason(ctx context.Context, eventID string) error {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM events WHERE event_id = $1)`

	if err := s.DB.QueryRowContext(ctx, query, eventID).Scan(&exists); err != nil {
		return fmt.Errorf("failed to check event existence: %w", err)
	}

	if !exists {
		return storage.ErrEventNotFound
	}

	return storage.ErrNotEnoughTickets
}

func (s *Storage) GetEventBookings(ctx context.Context, eventID string) ([]models.Booking, error) {
	query := `
		SELECT id, event_id, tickets, created_at
		FROM bookings
		WHERE event_id = $1
		ORDER BY created_at DESC`

	rows, err := s.DB.QueryContext(ctx, query, eventID)
	if err != nil {
		return nil, fmt.Errorf("failed to get bookings: %w", err)
	}
	defer rows.Close()

	var bookings []models.Booking
	for rows.Next() {
		var booking models.Booking
		err = rows.Scan(
			&booking.ID,
			&booking.EventID,
			&booking.Tickets,
			&booking.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking: %w", err)
		}

		bookings = append(bookings, booking)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating bookings: %w", err)
	}

	return bookings, nil
}

func (s *Storage) UpsertUser(ctx context.Context, user models.User) error {
	query := `
		INSERT INTO users (spotify_id, email, fan_score, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (spotify_id) DO UPDATE
		SET email = EXCLUDED.email,
			fan_score = EXCLUDED.fan_score,
			updated_at = NOW()`

	_, err := s.DB.ExecContext(ctx, query, user.SpotifyID, user.Email, user.FanScore)
	if err != nil {
		return fmt.Errorf("failed to upsert user: %w", err)
	}

	return nil
}

func (s *Storage) GetUser(ctx context.Context, spotifyID string) (*models.User, error) {
	query := `
		SELECT spotify_id, email, fan_score, updated_at
		FROM users
		WHERE spotify_id = $1`

	var user models.User
	err := s.DB.QueryRowContext(ctx, query, spotifyID).Scan(
		&user.SpotifyID,
		&user.Email,
		&user.FanScore,
		&user.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}
