package repository

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jenniferhuangg/ConcertCloud/internal/domain"
	"github.com/jenniferhuangg/ConcertCloud/pkg/redis"
)

// listingCacheTTL bounds staleness of the per-event listing snapshot.
const listingCacheTTL = 30 * time.Second

// CachedListingRepository wraps a ListingRepository with a Redis cache
// for per-event listing reads. Filtered reads bypass the cache; writes
// invalidate the event's snapshot. A nil or unreachable Redis degrades
// to the inner repository.
type CachedListingRepository struct {
	inner ListingRepository
	redis *redis.Client
}

// NewCachedListingRepository creates a new CachedListingRepository
func NewCachedListingRepository(inner ListingRepository, redisClient *redis.Client) *CachedListingRepository {
	return &CachedListingRepository{
		inner: inner,
		redis: redisClient,
	}
}

func listingCacheKey(eventID int64) string {
	return fmt.Sprintf("listings:event:%d", eventID)
}

// Create creates a new listing and invalidates the event's cache entry
func (r *CachedListingRepository) Create(ctx context.Context, listing *domain.Listing) error {
	if err := r.inner.Create(ctx, listing); err != nil {
		return err
	}
	r.invalidate(ctx, listing.EventID)
	return nil
}

// CreateBatch creates multiple listings and invalidates affected events
func (r *CachedListingRepository) CreateBatch(ctx context.Context, listings []*domain.Listing) error {
	if err := r.inner.CreateBatch(ctx, listings); err != nil {
		return err
	}
	seen := make(map[int64]bool)
	for _, listing := range listings {
		if !seen[listing.EventID] {
			seen[listing.EventID] = true
			r.invalidate(ctx, listing.EventID)
		}
	}
	return nil
}

// GetByID retrieves a listing by ID
func (r *CachedListingRepository) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	return r.inner.GetByID(ctx, id)
}

// GetByEventID retrieves an event's listings, serving unfiltered reads
// from the cache when possible
func (r *CachedListingRepository) GetByEventID(ctx context.Context, eventID int64, filter *ListingFilter) ([]*domain.Listing, error) {
	if r.redis == nil || !filter.IsEmpty() {
		return r.inner.GetByEventID(ctx, eventID, filter)
	}

	key := listingCacheKey(eventID)
	if cached, err := r.redis.Get(ctx, key).Result(); err == nil && cached != "" {
		var listings []*domain.Listing
		if err := json.Unmarshal([]byte(cached), &listings); err == nil {
			return listings, nil
		}
	}

	listings, err := r.inner.GetByEventID(ctx, eventID, filter)
	if err != nil {
		return nil, err
	}

	if data, err := json.Marshal(listings); err == nil {
		// best effort; a failed write just means a cache miss next time
		_ = r.redis.Set(ctx, key, string(data), listingCacheTTL).Err()
	}
	return listings, nil
}

func (r *CachedListingRepository) invalidate(ctx context.Context, eventID int64) {
	if r.redis == nil {
		return
	}
	_ = r.redis.Del(ctx, listingCacheKey(eventID)).Err()
}
