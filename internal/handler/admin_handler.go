package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/jenniferhuangg/ConcertCloud/internal/dto"
	"github.com/jenniferhuangg/ConcertCloud/internal/service"
	"github.com/jenniferhuangg/ConcertCloud/pkg/response"
)

// AdminHandler handles venue, event and listing ingestion requests
type AdminHandler struct {
	venueService   service.VenueService
	eventService   service.EventService
	listingService service.ListingService
}

// NewAdminHandler creates a new AdminHandler
func NewAdminHandler(venueService service.VenueService, eventService service.EventService, listingService service.ListingService) *AdminHandler {
	return &AdminHandler{
		venueService:   venueService,
		eventService:   eventService,
		listingService: listingService,
	}
}

// CreateArtist handles POST /admin/artists - registers an artist
func (h *AdminHandler) CreateArtist(c *gin.Context) {
	var req dto.CreateArtistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if valid, msg := req.Validate(); !valid {
		response.BadRequest(c, msg)
		return
	}

	artist, err := h.eventService.CreateArtist(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrArtistAlreadyExists) {
			response.Conflict(c, "Artist with this name already exists")
			return
		}
		response.InternalError(c, errors.New("failed to create artist"))
		return
	}

	response.Created(c, artist)
}

// CreateVenue handles POST /admin/venues - registers a venue and its map
func (h *AdminHandler) CreateVenue(c *gin.Context) {
	var req dto.CreateVenueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if valid, msg := req.Validate(); !valid {
		response.BadRequest(c, msg)
		return
	}

	venue, sections, err := h.venueService.CreateVenue(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrVenueAlreadyExists) {
			response.Conflict(c, "Venue with this name already exists")
			return
		}
		response.InternalError(c, errors.New("failed to create venue"))
		return
	}

	response.Created(c, gin.H{"venue": venue, "sections": sections})
}

// GetVenue handles GET /admin/venues/:id - retrieves a venue and its map
func (h *AdminHandler) GetVenue(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	venue, sections, err := h.venueService.GetVenue(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrVenueNotFound) {
			response.NotFound(c, "Venue not found")
			return
		}
		response.InternalError(c, errors.New("failed to get venue"))
		return
	}

	response.Success(c, gin.H{"venue": venue, "sections": sections})
}

// CreateEvent handles POST /admin/events - creates an event
func (h *AdminHandler) CreateEvent(c *gin.Context) {
	var req dto.CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if valid, msg := req.Validate(); !valid {
		response.BadRequest(c, msg)
		return
	}

	event, err := h.eventService.CreateEvent(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c, errors.New("failed to create event"))
		return
	}

	response.Created(c, event)
}

// IngestListings handles POST /admin/events/:id/listings - ingests a batch
// of listings for an event
func (h *AdminHandler) IngestListings(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	var req dto.IngestListingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if valid, msg := req.Validate(); !valid {
		response.BadRequest(c, msg)
		return
	}

	listings, err := h.listingService.IngestListings(c.Request.Context(), id, &req)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.NotFound(c, "Event not found")
			return
		}
		response.InternalError(c, errors.New("failed to ingest listings"))
		return
	}

	response.Created(c, gin.H{"ingested": len(listings)})
}
