package service

import (
	"context"

	"github.com/jenniferhuangg/ConcertCloud/internal/domain"
	"github.com/jenniferhuangg/ConcertCloud/internal/dto"
)

// VenueService handles venue business logic
type VenueService interface {
	// CreateVenue creates a venue together with its map sections
	CreateVenue(ctx context.Context, req *dto.CreateVenueRequest) (*domain.Venue, []*domain.Section, error)
	// GetVenue retrieves a venue and its sections
	GetVenue(ctx context.Context, id int64) (*domain.Venue, []*domain.Section, error)
}

// EventService handles event business logic
type EventService interface {
	// CreateEvent creates an event, resolving the artist and venue by name
	CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*dto.EventResponse, error)
	// GetEvent retrieves an event by ID
	GetEvent(ctx context.Context, id int64) (*dto.EventResponse, error)
	// ListEvents lists events with filters and pagination
	ListEvents(ctx context.Context, query *dto.EventListQuery) ([]*dto.EventResponse, int, error)
	// GetSeatMap builds the seat map for an event's venue with price markers
	GetSeatMap(ctx context.Context, eventID int64) (*dto.SeatMapResponse, error)
	// ListArtists lists all known artists
	ListArtists(ctx context.Context) ([]*domain.Artist, error)
	// CreateArtist registers an artist by name
	CreateArtist(ctx context.Context, req *dto.CreateArtistRequest) (*domain.Artist, error)
}

// ListingService handles listing queries and ingestion
type ListingService interface {
	// ListForEvent retrieves an event's listings filtered, grouped and ranked
	// per the query
	ListForEvent(ctx context.Context, eventID int64, query *dto.ListingQuery) ([]*domain.Listing, error)
	// IngestListings stores a batch of listings for an event
	IngestListings(ctx context.Context, eventID int64, req *dto.IngestListingsRequest) ([]*domain.Listing, error)
}

// WatchService handles watchlist business logic
type WatchService interface {
	// CreateWatch adds an event to a user's watchlist
	CreateWatch(ctx context.Context, userID string, req *dto.CreateWatchRequest) (*domain.Watchlist, error)
	// ListWatches retrieves a user's watchlist
	ListWatches(ctx context.Context, userID string) ([]*domain.Watchlist, error)
	// DeleteWatch removes a watchlist entry owned by the user
	DeleteWatch(ctx context.Context, userID string, watchID int64) error
	// ListNotifications retrieves a user's notifications, newest first
	ListNotifications(ctx context.Context, userID string) ([]*domain.Notification, error)
}

// ScanService runs watchlist scans that produce notifications
type ScanService interface {
	// Scan checks every watchlist entry against current listings and
	// records a notification per newly matching (user, listing) pair.
	// It returns the number of notifications created.
	Scan(ctx context.Context) (int, error)
}
