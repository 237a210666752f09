package repository

import (
	"context"

	"github.com/jenniferhuangg/ConcertCloud/internal/domain"
)

// VenueRepository defines the interface for venue and section data access
type VenueRepository interface {
	// Create creates a new venue
	Create(ctx context.Context, venue *domain.Venue) error
	// CreateSections creates map sections for a venue
	CreateSections(ctx context.Context, venueID int64, sections []*domain.Section) error
	// GetByID retrieves a venue by ID
	GetByID(ctx context.Context, id int64) (*domain.Venue, error)
	// GetByName retrieves a venue by its unique name
	GetByName(ctx context.Context, name string) (*domain.Venue, error)
	// GetSections retrieves all sections of a venue
	GetSections(ctx context.Context, venueID int64) ([]*domain.Section, error)
	// Delete deletes a venue (sections cascade)
	Delete(ctx context.Context, id int64) error
}

// ArtistRepository defines the interface for artist data access
type ArtistRepository interface {
	// Create creates a new artist
	Create(ctx context.Context, artist *domain.Artist) error
	// GetByID retrieves an artist by ID
	GetByID(ctx context.Context, id int64) (*domain.Artist, error)
	// GetByName retrieves an artist by its unique name
	GetByName(ctx context.Context, name string) (*domain.Artist, error)
	// List lists all artists
	List(ctx context.Context) ([]*domain.Artist, error)
}

// EventFilter contains filter options for listing events
type EventFilter struct {
	Status   string
	ArtistID *int64
}

// EventRepository defines the interface for event data access
type EventRepository interface {
	// Create creates a new event
	Create(ctx context.Context, event *domain.Event) error
	// GetByID retrieves an event by ID
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	// List lists events with filters and pagination
	List(ctx context.Context, filter *EventFilter, limit, offset int) ([]*domain.Event, int, error)
}

// ListingFilter contains filter options for querying an event's listings
type ListingFilter struct {
	MaxPrice     *float64
	VerifiedOnly bool
	SectionID    *int64
}

// IsEmpty reports whether the filter restricts nothing
func (f *ListingFilter) IsEmpty() bool {
	return f == nil || (f.MaxPrice == nil && !f.VerifiedOnly && f.SectionID == nil)
}

// ListingRepository defines the interface for listing data access
type ListingRepository interface {
	// Create creates a new listing
	Create(ctx context.Context, listing *domain.Listing) error
	// CreateBatch creates multiple listings at once
	CreateBatch(ctx context.Context, listings []*domain.Listing) error
	// GetByID retrieves a listing by ID
	GetByID(ctx context.Context, id int64) (*domain.Listing, error)
	// GetByEventID retrieves an event's listings, optionally filtered
	GetByEventID(ctx context.Context, eventID int64, filter *ListingFilter) ([]*domain.Listing, error)
}

// WatchlistRepository defines the interface for watchlist data access
type WatchlistRepository interface {
	// Create creates a new watchlist entry
	Create(ctx context.Context, watch *domain.Watchlist) error
	// GetByID retrieves a watchlist entry by ID
	GetByID(ctx context.Context, id int64) (*domain.Watchlist, error)
	// ListByUser retrieves a user's watchlist entries
	ListByUser(ctx context.Context, userID string) ([]*domain.Watchlist, error)
	// ListAll retrieves every watchlist entry (scan pass)
	ListAll(ctx context.Context) ([]*domain.Watchlist, error)
	// Delete deletes a watchlist entry by ID
	Delete(ctx context.Context, id int64) error
}

// NotificationKey identifies a (user, listing) notification pair
type NotificationKey struct {
	UserID    string
	ListingID int64
}

// NotificationRepository defines the interface for notification data access.
// Notifications are append-only; uniqueness of (user, listing) is enforced
// by the store, so concurrent writers cannot double-notify.
type NotificationRepository interface {
	// CreateBatchIfAbsent inserts a notification for every pair that does
	// not already have one, atomically for the whole batch, and returns
	// how many rows were actually inserted.
	CreateBatchIfAbsent(ctx context.Context, pairs []NotificationKey) (int, error)
	// ListByUser retrieves a user's notifications, newest first
	ListByUser(ctx context.Context, userID string) ([]*domain.Notification, error)
}

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create creates a new user
	Create(ctx context.Context, user *domain.User) error
	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, id string) (*domain.User, error)
}
