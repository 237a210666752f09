package handler

import (
	"context"
	"errors"

	"github.com/jenniferhuangg/ConcertCloud/internal/domain"
	"github.com/jenniferhuangg/ConcertCloud/internal/dto"
	"github.com/jenniferhuangg/ConcertCloud/internal/ranking"
	"github.com/jenniferhuangg/ConcertCloud/internal/service"
)

// MockEventService is a mock implementation of service.EventService
type MockEventService struct {
	events  map[int64]*dto.EventResponse
	seatMap *dto.SeatMapResponse
	nextID  int64
}

func NewMockEventService() *MockEventService {
	return &MockEventService{events: make(map[int64]*dto.EventResponse)}
}

func (m *MockEventService) AddEvent(event *dto.EventResponse) {
	m.events[event.ID] = event
}

func (m *MockEventService) CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*dto.EventResponse, error) {
	if valid, msg := req.Validate(); !valid {
		return nil, errors.New(msg)
	}
	m.nextID++
	event := &dto.EventResponse{
		ID:     m.nextID,
		Artist: req.Artist,
		Venue:  req.Venue,
		When:   req.When,
		Status: domain.EventStatusOnSale,
	}
	m.events[event.ID] = event
	return event, nil
}

func (m *MockEventService) GetEvent(ctx context.Context, id int64) (*dto.EventResponse, error) {
	event, ok := m.events[id]
	if !ok {
		return nil, service.ErrEventNotFound
	}
	return event, nil
}

func (m *MockEventService) ListEvents(ctx context.Context, query *dto.EventListQuery) ([]*dto.EventResponse, int, error) {
	var events []*dto.EventResponse
	for _, e := range m.events {
		events = append(events, e)
	}
	return events, len(events), nil
}

func (m *MockEventService) GetSeatMap(ctx context.Context, eventID int64) (*dto.SeatMapResponse, error) {
	event, ok := m.events[eventID]
	if !ok {
		return nil, service.ErrEventNotFound
	}
	if m.seatMap == nil {
		return &dto.SeatMapResponse{
			EventID: eventID,
			Venue:   event.Venue,
			Width:   domain.DefaultVenueWidth,
			Height:  domain.DefaultVenueHeight,
			StageX:  domain.DefaultStageX,
			StageY:  domain.DefaultStageY,
		}, nil
	}
	return m.seatMap, nil
}

func (m *MockEventService) ListArtists(ctx context.Context) ([]*domain.Artist, error) {
	return nil, nil
}

func (m *MockEventService) CreateArtist(ctx context.Context, req *dto.CreateArtistRequest) (*domain.Artist, error) {
	if valid, msg := req.Validate(); !valid {
		return nil, errors.New(msg)
	}
	m.nextID++
	return &domain.Artist{ID: m.nextID, Name: req.Name, ImageURL: req.ImageURL}, nil
}

// MockListingService is a mock implementation of service.ListingService
type MockListingService struct {
	listings map[int64][]*domain.Listing
}

func NewMockListingService() *MockListingService {
	return &MockListingService{listings: make(map[int64][]*domain.Listing)}
}

func (m *MockListingService) AddListings(eventID int64, listings ...*domain.Listing) {
	m.listings[eventID] = append(m.listings[eventID], listings...)
}

func (m *MockListingService) ListForEvent(ctx context.Context, eventID int64, query *dto.ListingQuery) ([]*domain.Listing, error) {
	query.SetDefaults()
	if valid, msg := query.Validate(); !valid {
		return nil, errors.New(msg)
	}
	listings, ok := m.listings[eventID]
	if !ok {
		return nil, service.ErrEventNotFound
	}
	return ranking.RankCheapest(listings), nil
}

func (m *MockListingService) IngestListings(ctx context.Context, eventID int64, req *dto.IngestListingsRequest) ([]*domain.Listing, error) {
	if valid, msg := req.Validate(); !valid {
		return nil, errors.New(msg)
	}
	if _, ok := m.listings[eventID]; !ok {
		return nil, service.ErrEventNotFound
	}
	var created []*domain.Listing
	for _, in := range req.Listings {
		created = append(created, &domain.Listing{
			EventID: eventID,
			Section: in.Section,
			Price:   in.Price,
		})
	}
	m.listings[eventID] = append(m.listings[eventID], created...)
	return created, nil
}

// MockWatchService is a mock implementation of service.WatchService
type MockWatchService struct {
	watches       map[int64]*domain.Watchlist
	notifications []*domain.Notification
	nextID        int64
}

func NewMockWatchService() *MockWatchService {
	return &MockWatchService{watches: make(map[int64]*domain.Watchlist)}
}

func (m *MockWatchService) CreateWatch(ctx context.Context, userID string, req *dto.CreateWatchRequest) (*domain.Watchlist, error) {
	if valid, msg := req.Validate(); !valid {
		return nil, errors.New(msg)
	}
	if req.EventID >= 100 {
		return nil, service.ErrEventNotFound
	}
	m.nextID++
	watch := &domain.Watchlist{ID: m.nextID, UserID: userID, EventID: req.EventID, MaxPrice: req.MaxPrice}
	m.watches[watch.ID] = watch
	return watch, nil
}

func (m *MockWatchService) ListWatches(ctx context.Context, userID string) ([]*domain.Watchlist, error) {
	var watches []*domain.Watchlist
	for _, w := range m.watches {
		if w.UserID == userID {
			watches = append(watches, w)
		}
	}
	return watches, nil
}

func (m *MockWatchService) DeleteWatch(ctx context.Context, userID string, watchID int64) error {
	watch, ok := m.watches[watchID]
	if !ok {
		return service.ErrWatchNotFound
	}
	if watch.UserID != userID {
		return service.ErrWatchNotFound
	}
	delete(m.watches, watchID)
	return nil
}

func (m *MockWatchService) ListNotifications(ctx context.Context, userID string) ([]*domain.Notification, error) {
	var out []*domain.Notification
	for _, n := range m.notifications {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

// MockScanService is a mock implementation of service.ScanService
type MockScanService struct {
	created int
	err     error
}

func (m *MockScanService) Scan(ctx context.Context) (int, error) {
	return m.created, m.err
}
