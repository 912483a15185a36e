package storage

import "errors"

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrEventExists      = errors.New("event already exists")
	ErrNotEnoughTickets = errors.New("not enough tickets available")
	ErrUserNotFound     = errors.New("user not found")
)
