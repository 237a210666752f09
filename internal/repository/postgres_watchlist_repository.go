package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jenniferhuangg/ConcertCloud/internal/domain"
)

// PostgresWatchlistRepository implements WatchlistRepository using PostgreSQL
type PostgresWatchlistRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresWatchlistRepository creates a new PostgresWatchlistRepository
func NewPostgresWatchlistRepository(pool *pgxpool.Pool) *PostgresWatchlistRepository {
	return &PostgresWatchlistRepository{pool: pool}
}

const watchlistColumns = `id, user_id, event_id, max_price`

func (r *PostgresWatchlistRepository) scanWatchlist(row pgx.Row) (*domain.Watchlist, error) {
	watch := &domain.Watchlist{}
	err := row.Scan(&watch.ID, &watch.UserID, &watch.EventID, &watch.MaxPrice)
	if err != nil {
		return nil, err
	}
	return watch, nil
}

func (r *PostgresWatchlistRepository) scanWatchlists(rows pgx.Rows) ([]*domain.Watchlist, error) {
	var watches []*domain.Watchlist
	for rows.Next() {
		watch := &domain.Watchlist{}
		if err := rows.Scan(&watch.ID, &watch.UserID, &watch.EventID, &watch.MaxPrice); err != nil {
			return nil, err
		}
		watches = append(watches, watch)
	}
	return watches, rows.Err()
}

// Create creates a new watchlist entry
func (r *PostgresWatchlistRepository) Create(ctx context.Context, watch *domain.Watchlist) error {
	query := `
		INSERT INTO watchlists (user_id, event_id, max_price)
		VALUES ($1, $2, $3)
		RETURNING id
	`
	return r.pool.QueryRow(ctx, query, watch.UserID, watch.EventID, watch.MaxPrice).Scan(&watch.ID)
}

// GetByID retrieves a watchlist entry by ID
func (r *PostgresWatchlistRepository) GetByID(ctx context.Context, id int64) (*domain.Watchlist, error) {
	query := `SELECT ` + watchlistColumns + ` FROM watchlists WHERE id = $1`
	watch, err := r.scanWatchlist(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return watch, nil
}

// ListByUser retrieves a user's watchlist entries
func (r *PostgresWatchlistRepository) ListByUser(ctx context.Context, userID string) ([]*domain.Watchlist, error) {
	query := `SELECT ` + watchlistColumns + ` FROM watchlists WHERE user_id = $1 ORDER BY id`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.scanWatchlists(rows)
}

// ListAll retrieves every watchlist entry for a scan pass
func (r *PostgresWatchlistRepository) ListAll(ctx context.Context) ([]*domain.Watchlist, error) {
	query := `SELECT ` + watchlistColumns + ` FROM watchlists ORDER BY id`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.scanWatchlists(rows)
}

// Delete deletes a watchlist entry by ID
func (r *PostgresWatchlistRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM watchlists WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return errors.New("watchlist entry not found")
	}
	return nil
}
