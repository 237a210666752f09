package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jenniferhuangg/ConcertCloud/internal/domain"
)

// PostgresEventRepository implements EventRepository using PostgreSQL
type PostgresEventRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresEventRepository creates a new PostgresEventRepository
func NewPostgresEventRepository(pool *pgxpool.Pool) *PostgresEventRepository {
	return &PostgresEventRepository{pool: pool}
}

const eventColumns = `id, artist_id, venue_name, venue_id, when_at, status`

func (r *PostgresEventRepository) scanEvent(row pgx.Row) (*domain.Event, error) {
	event := &domain.Event{}
	err := row.Scan(
		&event.ID,
		&event.ArtistID,
		&event.VenueName,
		&event.VenueID,
		&event.When,
		&event.Status,
	)
	if err != nil {
		return nil, err
	}
	return event, nil
}

func (r *PostgresEventRepository) scanEvents(rows pgx.Rows) ([]*domain.Event, error) {
	var events []*domain.Event
	for rows.Next() {
		event := &domain.Event{}
		err := rows.Scan(
			&event.ID,
			&event.ArtistID,
			&event.VenueName,
			&event.VenueID,
			&event.When,
			&event.Status,
		)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}
	return events, rows.Err()
}

// Create creates a new event
func (r *PostgresEventRepository) Create(ctx context.Context, event *domain.Event) error {
	query := `
		INSERT INTO events (artist_id, venue_name, venue_id, when_at, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.pool.QueryRow(ctx, query,
		event.ArtistID,
		event.VenueName,
		event.VenueID,
		event.When,
		event.Status,
	).Scan(&event.ID)
}

// GetByID retrieves an event by ID
func (r *PostgresEventRepository) GetByID(ctx context.Context, id int64) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	event, err := r.scanEvent(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return event, nil
}

// List lists events with filters and pagination, soonest first
func (r *PostgresEventRepository) List(ctx context.Context, filter *EventFilter, limit, offset int) ([]*domain.Event, int, error) {
	var conditions []string
	var args []interface{}
	argIndex := 1

	if filter != nil {
		if filter.Status != "" {
			conditions = append(conditions, fmt.Sprintf("status = $%d", argIndex))
			args = append(args, filter.Status)
			argIndex++
		}
		if filter.ArtistID != nil {
			conditions = append(conditions, fmt.Sprintf("artist_id = $%d", argIndex))
			args = append(args, *filter.ArtistID)
			argIndex++
		}
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf(`SELECT COUNT(*) FROM events %s`, whereClause)
	var total int
	if err := r.pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := fmt.Sprintf(`
		SELECT %s FROM events %s
		ORDER BY when_at ASC
		LIMIT $%d OFFSET $%d
	`, eventColumns, whereClause, argIndex, argIndex+1)
	args = append(args, limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	events, err := r.scanEvents(rows)
	if err != nil {
		return nil, 0, err
	}
	return events, total, nil
}
