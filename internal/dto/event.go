package dto

import (
	"time"

	"github.com/jenniferhuangg/ConcertCloud/internal/domain"
)

// EventListQuery represents query parameters for listing events
type EventListQuery struct {
	Status   string `form:"status"`
	ArtistID *int64 `form:"artist_id"`
	Limit    int    `form:"limit"`
	Offset   int    `form:"offset"`
}

// SetDefaults applies default pagination values
func (q *EventListQuery) SetDefaults() {
	if q.Limit <= 0 {
		q.Limit = 20
	}
	if q.Limit > 100 {
		q.Limit = 100
	}
	if q.Offset < 0 {
		q.Offset = 0
	}
}

// Validate validates the EventListQuery
func (q *EventListQuery) Validate() (bool, string) {
	switch q.Status {
	case "", domain.EventStatusOnSale, domain.EventStatusSoldOut, domain.EventStatusPast:
	default:
		return false, "Status must be one of: onsale, soldout, past"
	}
	return true, ""
}

// EventResponse represents the response for an event
type EventResponse struct {
	ID       int64     `json:"id"`
	ArtistID int64     `json:"artist_id"`
	Artist   string    `json:"artist,omitempty"`
	Venue    string    `json:"venue"`
	VenueID  *int64    `json:"venue_id,omitempty"`
	When     time.Time `json:"when"`
	Status   string    `json:"status"`
}

// ToEventResponse converts an event to an EventResponse
func ToEventResponse(event *domain.Event, artistName string) *EventResponse {
	return &EventResponse{
		ID:       event.ID,
		ArtistID: event.ArtistID,
		Artist:   artistName,
		Venue:    event.VenueName,
		VenueID:  event.VenueID,
		When:     event.When,
		Status:   event.Status,
	}
}

// SeatMapSection is one section on the seat map canvas with price markers
type SeatMapSection struct {
	ID           int64    `json:"id"`
	Name         string   `json:"name"`
	CX           float64  `json:"cx"`
	CY           float64  `json:"cy"`
	MinPrice     *float64 `json:"min_price,omitempty"`
	ListingCount int      `json:"listing_count"`
	HasCheapest  bool     `json:"has_cheapest"`
	HasBest      bool     `json:"has_best"`
}

// SeatMapMarker points at a single listing of note on the map: the overall
// cheapest active listing or the overall best-ranked one.
type SeatMapMarker struct {
	ListingID int64   `json:"listing_id"`
	Price     float64 `json:"price"`
	SectionID int64   `json:"section_id"`
}

// SeatMapResponse represents the seat map for an event's venue
type SeatMapResponse struct {
	EventID  int64            `json:"event_id"`
	VenueID  int64            `json:"venue_id"`
	Venue    string           `json:"venue"`
	Width    int              `json:"width"`
	Height   int              `json:"height"`
	StageX   float64          `json:"stage_x"`
	StageY   float64          `json:"stage_y"`
	Sections []SeatMapSection `json:"sections"`
	Cheapest *SeatMapMarker   `json:"cheapest,omitempty"`
	Best     *SeatMapMarker   `json:"best,omitempty"`
}
