package service

import (
	"context"

	"github.com/jenniferhuangg/ConcertCloud/internal/domain"
	"github.com/jenniferhuangg/ConcertCloud/internal/repository"
)

// scanService implements ScanService
type scanService struct {
	watchRepo        repository.WatchlistRepository
	listingRepo      repository.ListingRepository
	notificationRepo repository.NotificationRepository
}

// NewScanService creates a new ScanService
func NewScanService(
	watchRepo repository.WatchlistRepository,
	listingRepo repository.ListingRepository,
	notificationRepo repository.NotificationRepository,
) ScanService {
	return &scanService{
		watchRepo:        watchRepo,
		listingRepo:      listingRepo,
		notificationRepo: notificationRepo,
	}
}

// Scan matches every watchlist entry against the event's current listings.
// An entry without a price ceiling matches all of its event's listings.
// All candidate pairs go through one insert-or-ignore batch, so repeated
// or concurrent scans never double-notify and the returned count reflects
// only rows actually written.
func (s *scanService) Scan(ctx context.Context) (int, error) {
	watches, err := s.watchRepo.ListAll(ctx)
	if err != nil {
		return 0, err
	}
	if len(watches) == 0 {
		return 0, nil
	}

	// listings are fetched once per event across the whole pass
	byEvent := make(map[int64][]*domain.Listing)
	var pairs []repository.NotificationKey
	for _, watch := range watches {
		listings, ok := byEvent[watch.EventID]
		if !ok {
			listings, err = s.listingRepo.GetByEventID(ctx, watch.EventID, nil)
			if err != nil {
				return 0, err
			}
			byEvent[watch.EventID] = listings
		}
		for _, listing := range listings {
			if watch.MaxPrice != nil && listing.Price > *watch.MaxPrice {
				continue
			}
			pairs = append(pairs, repository.NotificationKey{
				UserID:    watch.UserID,
				ListingID: listing.ID,
			})
		}
	}

	return s.notificationRepo.CreateBatchIfAbsent(ctx, pairs)
}
