package models

import "time"

// Booking records a committed ticket purchase. Bookings are intentionally
// not linked to a purchasing user: the booking endpoint is anonymous and
// only adjusts inventory.
type Booking struct {
	ID        string    `json:"id"`
	EventID   string    `json:"event_id"`
	Tickets   int       `json:"tickets"`
	CreatedAt time.Time `json:"created_at"`
}
