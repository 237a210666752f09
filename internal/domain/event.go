package domain

import "time"

// Event statuses
const (
	EventStatusOnSale  = "onsale"
	EventStatusSoldOut = "soldout"
	EventStatusPast    = "past"
)

// Artist represents a performing artist
type Artist struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ImageURL string `json:"image_url,omitempty"`
}

// Event represents a single concert date at a venue.
//
// VenueName is the historical venue linkage (free text); VenueID is the
// proper reference added later. Older rows may carry only the name, so
// venue resolution falls back to a name lookup when VenueID is nil.
type Event struct {
	ID        int64     `json:"id"`
	ArtistID  int64     `json:"artist_id"`
	VenueName string    `json:"venue"`
	VenueID   *int64    `json:"venue_id,omitempty"`
	When      time.Time `json:"when"`
	Status    string    `json:"status"`
}
