package dto

// Listing sort modes
const (
	SortCheapest = "cheapest"
	SortBest     = "best"
)

// maxGroupQty caps the seats-together group size
const maxGroupQty = 8

// ListingQuery represents query parameters for an event's listings
type ListingQuery struct {
	Sort         string   `form:"sort"`
	Qty          int      `form:"qty"`
	Together     bool     `form:"together"`
	MaxPrice     *float64 `form:"max_price"`
	VerifiedOnly bool     `form:"verified_only"`
	SectionID    *int64   `form:"section_id"`
}

// SetDefaults applies default sort and quantity values
func (q *ListingQuery) SetDefaults() {
	if q.Sort == "" {
		q.Sort = SortCheapest
	}
	if q.Qty == 0 {
		q.Qty = 1
	}
}

// Validate validates the ListingQuery
func (q *ListingQuery) Validate() (bool, string) {
	if q.Sort != SortCheapest && q.Sort != SortBest {
		return false, "Sort must be one of: cheapest, best"
	}
	if q.Qty < 1 || q.Qty > maxGroupQty {
		return false, "Qty must be between 1 and 8"
	}
	if q.MaxPrice != nil && *q.MaxPrice <= 0 {
		return false, "Max price must be positive"
	}
	return true, ""
}

// ListingInput is one listing in an ingest request
type ListingInput struct {
	Section    string  `json:"section" binding:"required"`
	SectionID  *int64  `json:"section_id"`
	Row        string  `json:"row"`
	Seat       string  `json:"seat"`
	Price      float64 `json:"price" binding:"required"`
	SeatScore  *int    `json:"seat_score"`
	IsVerified bool    `json:"is_verified"`
}

// IngestListingsRequest represents a batch of listings to ingest for an event
type IngestListingsRequest struct {
	Listings []ListingInput `json:"listings" binding:"required"`
}

// Validate validates the IngestListingsRequest
func (r *IngestListingsRequest) Validate() (bool, string) {
	if len(r.Listings) == 0 {
		return false, "At least one listing is required"
	}
	for _, l := range r.Listings {
		if l.Section == "" {
			return false, "Listing section is required"
		}
		if l.Price <= 0 {
			return false, "Listing price must be positive"
		}
		if l.SeatScore != nil && (*l.SeatScore < 0 || *l.SeatScore > 100) {
			return false, "Seat score must be between 0 and 100"
		}
	}
	return true, ""
}
