package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/jenniferhuangg/ConcertCloud/internal/dto"
	"github.com/jenniferhuangg/ConcertCloud/internal/service"
	"github.com/jenniferhuangg/ConcertCloud/pkg/response"
	"github.com/jenniferhuangg/ConcertCloud/pkg/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// EventHandler handles event-related HTTP requests
type EventHandler struct {
	eventService   service.EventService
	listingService service.ListingService
}

// NewEventHandler creates a new EventHandler
func NewEventHandler(eventService service.EventService, listingService service.ListingService) *EventHandler {
	return &EventHandler{
		eventService:   eventService,
		listingService: listingService,
	}
}

func parseID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "Invalid ID")
		return 0, false
	}
	return id, true
}

// List handles GET /events - lists events with pagination and filters
func (h *EventHandler) List(c *gin.Context) {
	var query dto.EventListQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}
	query.SetDefaults()
	if valid, msg := query.Validate(); !valid {
		response.BadRequest(c, msg)
		return
	}

	events, total, err := h.eventService.ListEvents(c.Request.Context(), &query)
	if err != nil {
		response.InternalError(c, errors.New("failed to list events"))
		return
	}

	response.Paginated(c, events, query.Limit, query.Offset, total)
}

// GetByID handles GET /events/:id - retrieves an event by ID
func (h *EventHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	event, err := h.eventService.GetEvent(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.NotFound(c, "Event not found")
			return
		}
		response.InternalError(c, errors.New("failed to get event"))
		return
	}

	response.Success(c, event)
}

// GetListings handles GET /events/:id/listings - the ranked listing query
func (h *EventHandler) GetListings(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.event.GetListings")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	id, ok := parseID(c, "id")
	if !ok {
		span.SetStatus(codes.Error, "Invalid ID")
		return
	}
	span.SetAttributes(attribute.Int64("event_id", id))

	var query dto.ListingQuery
	if err := c.ShouldBindQuery(&query); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid query parameters")
		response.BadRequest(c, "Invalid query parameters")
		return
	}
	query.SetDefaults()
	if valid, msg := query.Validate(); !valid {
		span.SetStatus(codes.Error, msg)
		response.BadRequest(c, msg)
		return
	}
	span.SetAttributes(
		attribute.String("sort", query.Sort),
		attribute.Bool("together", query.Together),
	)

	listings, err := h.listingService.ListForEvent(ctx, id, &query)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, service.ErrEventNotFound) {
			span.SetStatus(codes.Error, "Event not found")
			response.NotFound(c, "Event not found")
			return
		}
		span.SetStatus(codes.Error, "Failed to list listings")
		response.InternalError(c, errors.New("failed to list listings"))
		return
	}

	span.SetStatus(codes.Ok, "")
	response.Success(c, listings)
}

// GetSeatMap handles GET /events/:id/map - venue geometry with price markers
func (h *EventHandler) GetSeatMap(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.event.GetSeatMap")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	id, ok := parseID(c, "id")
	if !ok {
		span.SetStatus(codes.Error, "Invalid ID")
		return
	}
	span.SetAttributes(attribute.Int64("event_id", id))

	seatMap, err := h.eventService.GetSeatMap(ctx, id)
	if err != nil {
		span.RecordError(err)
		if errors.Is(err, service.ErrEventNotFound) {
			span.SetStatus(codes.Error, "Event not found")
			response.NotFound(c, "Event not found")
			return
		}
		span.SetStatus(codes.Error, "Failed to build seat map")
		response.InternalError(c, errors.New("failed to build seat map"))
		return
	}

	span.SetStatus(codes.Ok, "")
	response.Success(c, seatMap)
}

// ListArtists handles GET /artists - lists all known artists
func (h *EventHandler) ListArtists(c *gin.Context) {
	artists, err := h.eventService.ListArtists(c.Request.Context())
	if err != nil {
		response.InternalError(c, errors.New("failed to list artists"))
		return
	}
	response.Success(c, artists)
}
