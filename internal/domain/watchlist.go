package domain

import "time"

// Watchlist is a standing request by a user to be notified of listings
// for an event, optionally capped at a maximum acceptable price.
type Watchlist struct {
	ID       int64    `json:"id"`
	UserID   string   `json:"user_id"`
	EventID  int64    `json:"event_id"`
	MaxPrice *float64 `json:"max_price,omitempty"`
}

// Notification records that a user was notified about a listing.
// Append-only; at most one row exists per (user, listing) pair.
type Notification struct {
	ID        int64     `json:"id"`
	UserID    string    `json:"user_id"`
	ListingID int64     `json:"listing_id"`
	CreatedAt time.Time `json:"created_at"`
}
