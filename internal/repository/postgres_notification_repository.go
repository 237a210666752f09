package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jenniferhuangg/ConcertCloud/internal/domain"
)

// PostgresNotificationRepository implements NotificationRepository using PostgreSQL
type PostgresNotificationRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresNotificationRepository creates a new PostgresNotificationRepository
func NewPostgresNotificationRepository(pool *pgxpool.Pool) *PostgresNotificationRepository {
	return &PostgresNotificationRepository{pool: pool}
}

// CreateBatchIfAbsent inserts a notification for every pair without one.
// The whole batch runs in a single transaction, so a failed scan leaves
// nothing behind. The unique index on (user_id, listing_id) makes the
// inserts race-safe against concurrent scans.
func (r *PostgresNotificationRepository) CreateBatchIfAbsent(ctx context.Context, pairs []NotificationKey) (int, error) {
	if len(pairs) == 0 {
		return 0, nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO notifications (user_id, listing_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, listing_id) DO NOTHING
	`

	created := 0
	for _, pair := range pairs {
		result, err := tx.Exec(ctx, query, pair.UserID, pair.ListingID)
		if err != nil {
			return 0, err
		}
		created += int(result.RowsAffected())
	}

	if err := tx.Commit(ctx); err != nil {
		return 0, err
	}
	return created, nil
}

// ListByUser retrieves a user's notifications, newest first
func (r *PostgresNotificationRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Notification, error) {
	query := `
		SELECT id, user_id, listing_id, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var notifications []*domain.Notification
	for rows.Next() {
		n := &domain.Notification{}
		if err := rows.Scan(&n.ID, &n.UserID, &n.ListingID, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}
	return notifications, rows.Err()
}
