package service

import (
	"context"
	"sort"
	"time"

	"github.com/jenniferhuangg/ConcertCloud/internal/domain"
	"github.com/jenniferhuangg/ConcertCloud/internal/repository"
)

// MockVenueRepository is a mock implementation of VenueRepository
type MockVenueRepository struct {
	venues   map[int64]*domain.Venue
	sections map[int64][]*domain.Section
	nextID   int64
}

func NewMockVenueRepository() *MockVenueRepository {
	return &MockVenueRepository{
		venues:   make(map[int64]*domain.Venue),
		sections: make(map[int64][]*domain.Section),
	}
}

func (m *MockVenueRepository) Create(ctx context.Context, venue *domain.Venue) error {
	m.nextID++
	venue.ID = m.nextID
	m.venues[venue.ID] = venue
	return nil
}

func (m *MockVenueRepository) CreateSections(ctx context.Context, venueID int64, sections []*domain.Section) error {
	for _, section := range sections {
		m.nextID++
		section.ID = m.nextID
		section.VenueID = venueID
		m.sections[venueID] = append(m.sections[venueID], section)
	}
	return nil
}

func (m *MockVenueRepository) GetByID(ctx context.Context, id int64) (*domain.Venue, error) {
	return m.venues[id], nil
}

func (m *MockVenueRepository) GetByName(ctx context.Context, name string) (*domain.Venue, error) {
	for _, v := range m.venues {
		if v.Name == name {
			return v, nil
		}
	}
	return nil, nil
}

func (m *MockVenueRepository) GetSections(ctx context.Context, venueID int64) ([]*domain.Section, error) {
	return m.sections[venueID], nil
}

func (m *MockVenueRepository) Delete(ctx context.Context, id int64) error {
	delete(m.venues, id)
	delete(m.sections, id)
	return nil
}

// MockArtistRepository is a mock implementation of ArtistRepository
type MockArtistRepository struct {
	artists map[int64]*domain.Artist
	nextID  int64
}

func NewMockArtistRepository() *MockArtistRepository {
	return &MockArtistRepository{artists: make(map[int64]*domain.Artist)}
}

func (m *MockArtistRepository) Create(ctx context.Context, artist *domain.Artist) error {
	m.nextID++
	artist.ID = m.nextID
	m.artists[artist.ID] = artist
	return nil
}

func (m *MockArtistRepository) GetByID(ctx context.Context, id int64) (*domain.Artist, error) {
	return m.artists[id], nil
}

func (m *MockArtistRepository) GetByName(ctx context.Context, name string) (*domain.Artist, error) {
	for _, a := range m.artists {
		if a.Name == name {
			return a, nil
		}
	}
	return nil, nil
}

func (m *MockArtistRepository) List(ctx context.Context) ([]*domain.Artist, error) {
	var artists []*domain.Artist
	for _, a := range m.artists {
		artists = append(artists, a)
	}
	sort.Slice(artists, func(i, j int) bool { return artists[i].Name < artists[j].Name })
	return artists, nil
}

// MockEventRepository is a mock implementation of EventRepository
type MockEventRepository struct {
	events map[int64]*domain.Event
	nextID int64
}

func NewMockEventRepository() *MockEventRepository {
	return &MockEventRepository{events: make(map[int64]*domain.Event)}
}

func (m *MockEventRepository) Create(ctx context.Context, event *domain.Event) error {
	m.nextID++
	event.ID = m.nextID
	m.events[event.ID] = event
	return nil
}

func (m *MockEventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	return m.events[id], nil
}

func (m *MockEventRepository) List(ctx context.Context, filter *repository.EventFilter, limit, offset int) ([]*domain.Event, int, error) {
	var events []*domain.Event
	for _, e := range m.events {
		if filter != nil && filter.Status != "" && e.Status != filter.Status {
			continue
		}
		if filter != nil && filter.ArtistID != nil && e.ArtistID != *filter.ArtistID {
			continue
		}
		events = append(events, e)
	}
	sort.Slice(events, func(i, j int) bool { return events[i].When.Before(events[j].When) })
	total := len(events)
	if offset > len(events) {
		offset = len(events)
	}
	events = events[offset:]
	if limit < len(events) {
		events = events[:limit]
	}
	return events, total, nil
}

// MockListingRepository is a mock implementation of ListingRepository
type MockListingRepository struct {
	listings map[int64]*domain.Listing
	nextID   int64
	getErr   error
}

func NewMockListingRepository() *MockListingRepository {
	return &MockListingRepository{listings: make(map[int64]*domain.Listing)}
}

func (m *MockListingRepository) Create(ctx context.Context, listing *domain.Listing) error {
	m.nextID++
	listing.ID = m.nextID
	listing.CreatedAt = time.Now()
	m.listings[listing.ID] = listing
	return nil
}

func (m *MockListingRepository) CreateBatch(ctx context.Context, listings []*domain.Listing) error {
	for _, listing := range listings {
		if err := m.Create(ctx, listing); err != nil {
			return err
		}
	}
	return nil
}

func (m *MockListingRepository) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	return m.listings[id], nil
}

func (m *MockListingRepository) GetByEventID(ctx context.Context, eventID int64, filter *repository.ListingFilter) ([]*domain.Listing, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	var listings []*domain.Listing
	for _, l := range m.listings {
		if l.EventID != eventID {
			continue
		}
		if filter != nil {
			if filter.MaxPrice != nil && l.Price > *filter.MaxPrice {
				continue
			}
			if filter.VerifiedOnly && !l.IsVerified {
				continue
			}
			if filter.SectionID != nil && (l.SectionID == nil || *l.SectionID != *filter.SectionID) {
				continue
			}
		}
		listings = append(listings, l)
	}
	sort.Slice(listings, func(i, j int) bool { return listings[i].ID < listings[j].ID })
	return listings, nil
}

// MockWatchlistRepository is a mock implementation of WatchlistRepository
type MockWatchlistRepository struct {
	watches map[int64]*domain.Watchlist
	nextID  int64
}

func NewMockWatchlistRepository() *MockWatchlistRepository {
	return &MockWatchlistRepository{watches: make(map[int64]*domain.Watchlist)}
}

func (m *MockWatchlistRepository) Create(ctx context.Context, watch *domain.Watchlist) error {
	m.nextID++
	watch.ID = m.nextID
	m.watches[watch.ID] = watch
	return nil
}

func (m *MockWatchlistRepository) GetByID(ctx context.Context, id int64) (*domain.Watchlist, error) {
	return m.watches[id], nil
}

func (m *MockWatchlistRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Watchlist, error) {
	var watches []*domain.Watchlist
	for _, w := range m.watches {
		if w.UserID == userID {
			watches = append(watches, w)
		}
	}
	sort.Slice(watches, func(i, j int) bool { return watches[i].ID < watches[j].ID })
	return watches, nil
}

func (m *MockWatchlistRepository) ListAll(ctx context.Context) ([]*domain.Watchlist, error) {
	var watches []*domain.Watchlist
	for _, w := range m.watches {
		watches = append(watches, w)
	}
	sort.Slice(watches, func(i, j int) bool { return watches[i].ID < watches[j].ID })
	return watches, nil
}

func (m *MockWatchlistRepository) Delete(ctx context.Context, id int64) error {
	delete(m.watches, id)
	return nil
}

// MockUserRepository is a mock implementation of UserRepository
type MockUserRepository struct {
	users map[string]*domain.User
}

func NewMockUserRepository() *MockUserRepository {
	return &MockUserRepository{users: make(map[string]*domain.User)}
}

func (m *MockUserRepository) Create(ctx context.Context, user *domain.User) error {
	if _, ok := m.users[user.ID]; !ok {
		m.users[user.ID] = user
	}
	return nil
}

func (m *MockUserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return m.users[id], nil
}

// MockNotificationRepository is a mock implementation of NotificationRepository
type MockNotificationRepository struct {
	notifications map[repository.NotificationKey]*domain.Notification
	nextID        int64
}

func NewMockNotificationRepository() *MockNotificationRepository {
	return &MockNotificationRepository{
		notifications: make(map[repository.NotificationKey]*domain.Notification),
	}
}

func (m *MockNotificationRepository) CreateBatchIfAbsent(ctx context.Context, pairs []repository.NotificationKey) (int, error) {
	created := 0
	for _, pair := range pairs {
		if _, ok := m.notifications[pair]; ok {
			continue
		}
		m.nextID++
		m.notifications[pair] = &domain.Notification{
			ID:        m.nextID,
			UserID:    pair.UserID,
			ListingID: pair.ListingID,
			CreatedAt: time.Now(),
		}
		created++
	}
	return created, nil
}

func (m *MockNotificationRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Notification, error) {
	var notifications []*domain.Notification
	for _, n := range m.notifications {
		if n.UserID == userID {
			notifications = append(notifications, n)
		}
	}
	sort.Slice(notifications, func(i, j int) bool { return notifications[i].ID > notifications[j].ID })
	return notifications, nil
}
