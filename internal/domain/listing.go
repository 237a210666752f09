package domain

import (
	"strconv"
	"strings"
	"time"
)

// DefaultSeatScore is the fallback seat-quality score (lower = better)
// used when a listing is not mapped to a venue section.
const DefaultSeatScore = 100

// Listing represents a single resellable ticket offer for an event
type Listing struct {
	ID      int64  `json:"id"`
	EventID int64  `json:"event_id"`
	Section string `json:"section"` // free-text label like "101"
	// SectionID links the listing to venue map geometry when the
	// free-text label could be resolved; nil otherwise.
	SectionID  *int64    `json:"section_id,omitempty"`
	Row        string    `json:"row,omitempty"`
	Seat       string    `json:"seat,omitempty"`
	SeatNum    *int      `json:"seat_num,omitempty"` // parsed integer seat number
	Price      float64   `json:"price"`
	SeatScore  int       `json:"seat_score"`
	IsVerified bool      `json:"is_verified"`
	CreatedAt  time.Time `json:"created_at"`
}

// ParseSeatNum extracts the integer seat number from a free-text seat
// label ("12", "Seat 12", "A-12"). Returns nil when no digits remain.
func ParseSeatNum(seat string) *int {
	var b strings.Builder
	for _, ch := range seat {
		if ch >= '0' && ch <= '9' {
			b.WriteRune(ch)
		}
	}
	if b.Len() == 0 {
		return nil
	}
	n, err := strconv.Atoi(b.String())
	if err != nil {
		return nil
	}
	return &n
}
