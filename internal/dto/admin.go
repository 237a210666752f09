package dto

import "time"

// SectionInput is one section in a venue creation request
type SectionInput struct {
	Name          string  `json:"name" binding:"required"`
	CX            float64 `json:"cx"`
	CY            float64 `json:"cy"`
	BaseCloseness int     `json:"base_closeness"`
}

// CreateVenueRequest represents the request to create a venue with its map
type CreateVenueRequest struct {
	Name     string         `json:"name" binding:"required"`
	Width    int            `json:"width"`
	Height   int            `json:"height"`
	StageX   *float64       `json:"stage_x"`
	StageY   *float64       `json:"stage_y"`
	Sections []SectionInput `json:"sections"`
}

// Validate validates the CreateVenueRequest
func (r *CreateVenueRequest) Validate() (bool, string) {
	if r.Name == "" {
		return false, "Venue name is required"
	}
	if r.Width < 0 || r.Height < 0 {
		return false, "Venue dimensions cannot be negative"
	}
	for _, s := range r.Sections {
		if s.Name == "" {
			return false, "Section name is required"
		}
	}
	return true, ""
}

// CreateArtistRequest represents the request to register an artist
type CreateArtistRequest struct {
	Name     string `json:"name" binding:"required"`
	ImageURL string `json:"image_url"`
}

// Validate validates the CreateArtistRequest
func (r *CreateArtistRequest) Validate() (bool, string) {
	if r.Name == "" {
		return false, "Artist name is required"
	}
	return true, ""
}

// CreateEventRequest represents the request to create an event
type CreateEventRequest struct {
	Artist string    `json:"artist" binding:"required"`
	Venue  string    `json:"venue" binding:"required"`
	When   time.Time `json:"when" binding:"required"`
	Status string    `json:"status"`
}

// Validate validates the CreateEventRequest
func (r *CreateEventRequest) Validate() (bool, string) {
	if r.Artist == "" {
		return false, "Artist name is required"
	}
	if r.Venue == "" {
		return false, "Venue name is required"
	}
	if r.When.IsZero() {
		return false, "Event time is required"
	}
	return true, ""
}
