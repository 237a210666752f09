package service

import (
	"context"
	"errors"

	"github.com/jenniferhuangg/ConcertCloud/internal/domain"
	"github.com/jenniferhuangg/ConcertCloud/internal/dto"
	"github.com/jenniferhuangg/ConcertCloud/internal/repository"
)

// ErrWatchNotFound covers both missing entries and entries owned by
// another user; callers cannot probe for foreign watch IDs.
var ErrWatchNotFound = errors.New("watchlist entry not found")

// watchService implements WatchService
type watchService struct {
	watchRepo        repository.WatchlistRepository
	notificationRepo repository.NotificationRepository
	eventRepo        repository.EventRepository
	userRepo         repository.UserRepository
}

// NewWatchService creates a new WatchService
func NewWatchService(
	watchRepo repository.WatchlistRepository,
	notificationRepo repository.NotificationRepository,
	eventRepo repository.EventRepository,
	userRepo repository.UserRepository,
) WatchService {
	return &watchService{
		watchRepo:        watchRepo,
		notificationRepo: notificationRepo,
		eventRepo:        eventRepo,
		userRepo:         userRepo,
	}
}

// CreateWatch adds an event to a user's watchlist
func (s *watchService) CreateWatch(ctx context.Context, userID string, req *dto.CreateWatchRequest) (*domain.Watchlist, error) {
	if valid, msg := req.Validate(); !valid {
		return nil, errors.New(msg)
	}

	event, err := s.eventRepo.GetByID(ctx, req.EventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	// provision the user row on first use; the identity token is the
	// source of truth for the ID
	if err := s.userRepo.Create(ctx, &domain.User{ID: userID, IsActive: true}); err != nil {
		return nil, err
	}

	watch := &domain.Watchlist{
		UserID:   userID,
		EventID:  req.EventID,
		MaxPrice: req.MaxPrice,
	}
	if err := s.watchRepo.Create(ctx, watch); err != nil {
		return nil, err
	}
	return watch, nil
}

// ListWatches retrieves a user's watchlist
func (s *watchService) ListWatches(ctx context.Context, userID string) ([]*domain.Watchlist, error) {
	return s.watchRepo.ListByUser(ctx, userID)
}

// DeleteWatch removes a watchlist entry owned by the user
func (s *watchService) DeleteWatch(ctx context.Context, userID string, watchID int64) error {
	watch, err := s.watchRepo.GetByID(ctx, watchID)
	if err != nil {
		return err
	}
	if watch == nil {
		return ErrWatchNotFound
	}
	if watch.UserID != userID {
		// A foreign watch is indistinguishable from a missing one.
		return ErrWatchNotFound
	}
	return s.watchRepo.Delete(ctx, watchID)
}

// ListNotifications retrieves a user's notifications, newest first
func (s *watchService) ListNotifications(ctx context.Context, userID string) ([]*domain.Notification, error) {
	return s.notificationRepo.ListByUser(ctx, userID)
}
