package models

import "time"

type User struct {
	SpotifyID string    `json:"spotify_id"`
	Email     string    `json:"email"`
	FanScore  int       `json:"fan_score"`
	UpdatedAt time.Time `json:"updated_at"`
}
