package dto

import (
	"time"

	"github.com/jenniferhuangg/ConcertCloud/internal/domain"
)

// CreateWatchRequest represents the request to watch an event
type CreateWatchRequest struct {
	EventID  int64    `json:"event_id" binding:"required"`
	MaxPrice *float64 `json:"max_price"`
}

// Validate validates the CreateWatchRequest
func (r *CreateWatchRequest) Validate() (bool, string) {
	if r.EventID <= 0 {
		return false, "Event ID is required"
	}
	if r.MaxPrice != nil && *r.MaxPrice <= 0 {
		return false, "Max price must be positive"
	}
	return true, ""
}

// WatchResponse represents a watchlist entry
type WatchResponse struct {
	ID       int64    `json:"id"`
	EventID  int64    `json:"event_id"`
	MaxPrice *float64 `json:"max_price,omitempty"`
}

// ToWatchResponse converts a watchlist entry to a WatchResponse
func ToWatchResponse(watch *domain.Watchlist) *WatchResponse {
	return &WatchResponse{
		ID:       watch.ID,
		EventID:  watch.EventID,
		MaxPrice: watch.MaxPrice,
	}
}

// NotificationResponse represents a price-drop notification
type NotificationResponse struct {
	ID        int64     `json:"id"`
	ListingID int64     `json:"listing_id"`
	CreatedAt time.Time `json:"created_at"`
}

// ToNotificationResponse converts a notification to a NotificationResponse
func ToNotificationResponse(n *domain.Notification) *NotificationResponse {
	return &NotificationResponse{
		ID:        n.ID,
		ListingID: n.ListingID,
		CreatedAt: n.CreatedAt,
	}
}
