package handler

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/jenniferhuangg/ConcertCloud/internal/dto"
	"github.com/jenniferhuangg/ConcertCloud/internal/middleware"
	"github.com/jenniferhuangg/ConcertCloud/internal/service"
	"github.com/jenniferhuangg/ConcertCloud/pkg/response"
	"github.com/jenniferhuangg/ConcertCloud/pkg/telemetry"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

// WatchHandler handles watchlist HTTP requests
type WatchHandler struct {
	watchService service.WatchService
	scanService  service.ScanService
}

// NewWatchHandler creates a new WatchHandler
func NewWatchHandler(watchService service.WatchService, scanService service.ScanService) *WatchHandler {
	return &WatchHandler{
		watchService: watchService,
		scanService:  scanService,
	}
}

// Create handles POST /watchlist - adds an event to the user's watchlist
func (h *WatchHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	var req dto.CreateWatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}
	if valid, msg := req.Validate(); !valid {
		response.BadRequest(c, msg)
		return
	}

	watch, err := h.watchService.CreateWatch(c.Request.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrEventNotFound) {
			response.NotFound(c, "Event not found")
			return
		}
		response.InternalError(c, errors.New("failed to create watch"))
		return
	}

	response.Created(c, dto.ToWatchResponse(watch))
}

// List handles GET /watchlist - lists the user's watchlist
func (h *WatchHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	watches, err := h.watchService.ListWatches(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c, errors.New("failed to list watches"))
		return
	}

	responses := make([]*dto.WatchResponse, len(watches))
	for i, watch := range watches {
		responses[i] = dto.ToWatchResponse(watch)
	}
	response.Success(c, responses)
}

// Delete handles DELETE /watchlist/:id - removes a watchlist entry
func (h *WatchHandler) Delete(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	id, ok := parseID(c, "id")
	if !ok {
		return
	}

	if err := h.watchService.DeleteWatch(c.Request.Context(), userID, id); err != nil {
		if errors.Is(err, service.ErrWatchNotFound) {
			response.NotFound(c, "Watchlist entry not found")
			return
		}
		response.InternalError(c, errors.New("failed to delete watch"))
		return
	}

	response.Success(c, gin.H{"deleted": true})
}

// Notifications handles GET /notifications - lists the user's notifications
func (h *WatchHandler) Notifications(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Unauthorized(c, "Authentication required")
		return
	}

	notifications, err := h.watchService.ListNotifications(c.Request.Context(), userID)
	if err != nil {
		response.InternalError(c, errors.New("failed to list notifications"))
		return
	}

	responses := make([]*dto.NotificationResponse, len(notifications))
	for i, n := range notifications {
		responses[i] = dto.ToNotificationResponse(n)
	}
	response.Success(c, responses)
}

// TriggerScan handles POST /watchlist/scan - runs a scan on demand
func (h *WatchHandler) TriggerScan(c *gin.Context) {
	ctx, span := telemetry.StartSpan(c.Request.Context(), "handler.watch.TriggerScan")
	defer span.End()
	c.Request = c.Request.WithContext(ctx)

	if _, ok := middleware.GetUserID(c); !ok {
		span.SetStatus(codes.Error, "Authentication required")
		response.Unauthorized(c, "Authentication required")
		return
	}

	created, err := h.scanService.Scan(ctx)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Scan failed")
		response.InternalError(c, errors.New("scan failed"))
		return
	}

	span.SetAttributes(attribute.Int("notifications_created", created))
	span.SetStatus(codes.Ok, "")
	response.Success(c, gin.H{"created": created})
}
