package domain

// Default venue geometry used when an event's venue has no stored map.
// All venue maps share a fixed logical canvas.
const (
	DefaultVenueWidth  = 1000
	DefaultVenueHeight = 700
	DefaultStageX      = 500.0
	DefaultStageY      = 80.0
)

// Venue represents a venue with its seat-map canvas geometry
type Venue struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Width  int     `json:"width"`
	Height int     `json:"height"`
	StageX float64 `json:"stage_x"`
	StageY float64 `json:"stage_y"`
}

// DefaultVenue returns a venue placeholder with the standard canvas geometry
func DefaultVenue(name string) *Venue {
	return &Venue{
		Name:   name,
		Width:  DefaultVenueWidth,
		Height: DefaultVenueHeight,
		StageX: DefaultStageX,
		StageY: DefaultStageY,
	}
}

// Section represents a seating section within a venue's map
type Section struct {
	ID      int64   `json:"id"`
	VenueID int64   `json:"venue_id"`
	Name    string  `json:"name"`
	CX      float64 `json:"cx"`
	CY      float64 `json:"cy"`
	// BaseCloseness is a coarse stage-proximity rank (lower = closer),
	// kept for map display; the ranker works from the centroid instead.
	BaseCloseness int `json:"base_closeness"`
}
