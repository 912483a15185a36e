package models

import "time"

// PlaceholderImage is used for events created without artwork.
const PlaceholderImage = "/images/concert-placeholder.jpg"

type Event struct {
	EventID          string    `json:"eventId"`
	ArtistName       string    `json:"artistName"`
	EventName        string    `json:"eventName"`
	Date             time.Time `json:"date"`
	Venue            string    `json:"venue"`
	TicketPrice      float64   `json:"ticketPrice"`
	TotalTickets     int       `json:"totalTickets"`
	AvailableTickets int       `json:"availableTickets"`
	ImageURL         string    `json:"imageUrl"`
}

// RankedEvent is an Event carrying the relevance score computed for the
// current listener. Derived per request, never persisted.
type RankedEvent struct {
	Event
	UserRelevanceScore int `json:"userRelevanceScore"`
}
