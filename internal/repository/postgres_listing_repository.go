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

// PostgresListingRepository implements ListingRepository using PostgreSQL
type PostgresListingRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresListingRepository creates a new PostgresListingRepository
func NewPostgresListingRepository(pool *pgxpool.Pool) *PostgresListingRepository {
	return &PostgresListingRepository{pool: pool}
}

const listingColumns = `id, event_id, section, section_id,
	COALESCE(row_label, '') as row_label,
	COALESCE(seat_label, '') as seat_label,
	seat_num, price, seat_score, is_verified, created_at`

func (r *PostgresListingRepository) scanListing(row pgx.Row) (*domain.Listing, error) {
	listing := &domain.Listing{}
	err := row.Scan(
		&listing.ID,
		&listing.EventID,
		&listing.Section,
		&listing.SectionID,
		&listing.Row,
		&listing.Seat,
		&listing.SeatNum,
		&listing.Price,
		&listing.SeatScore,
		&listing.IsVerified,
		&listing.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return listing, nil
}

func (r *PostgresListingRepository) scanListings(rows pgx.Rows) ([]*domain.Listing, error) {
	var listings []*domain.Listing
	for rows.Next() {
		listing := &domain.Listing{}
		err := rows.Scan(
			&listing.ID,
			&listing.EventID,
			&listing.Section,
			&listing.SectionID,
			&listing.Row,
			&listing.Seat,
			&listing.SeatNum,
			&listing.Price,
			&listing.SeatScore,
			&listing.IsVerified,
			&listing.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		listings = append(listings, listing)
	}
	return listings, rows.Err()
}

// Create creates a new listing
func (r *PostgresListingRepository) Create(ctx context.Context, listing *domain.Listing) error {
	query := `
		INSERT INTO listings (event_id, section, section_id, row_label, seat_label,
			seat_num, price, seat_score, is_verified)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`
	return r.pool.QueryRow(ctx, query,
		listing.EventID,
		listing.Section,
		listing.SectionID,
		listing.Row,
		listing.Seat,
		listing.SeatNum,
		listing.Price,
		listing.SeatScore,
		listing.IsVerified,
	).Scan(&listing.ID, &listing.CreatedAt)
}

// CreateBatch creates multiple listings in a single transaction
func (r *PostgresListingRepository) CreateBatch(ctx context.Context, listings []*domain.Listing) error {
	if len(listings) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO listings (event_id, section, section_id, row_label, seat_label,
			seat_num, price, seat_score, is_verified)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, created_at
	`
	for _, listing := range listings {
		err := tx.QueryRow(ctx, query,
			listing.EventID,
			listing.Section,
			listing.SectionID,
			listing.Row,
			listing.Seat,
			listing.SeatNum,
			listing.Price,
			listing.SeatScore,
			listing.IsVerified,
		).Scan(&listing.ID, &listing.CreatedAt)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// GetByID retrieves a listing by ID
func (r *PostgresListingRepository) GetByID(ctx context.Context, id int64) (*domain.Listing, error) {
	query := `SELECT ` + listingColumns + ` FROM listings WHERE id = $1`
	listing, err := r.scanListing(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return listing, nil
}

// GetByEventID retrieves an event's listings, optionally filtered
func (r *PostgresListingRepository) GetByEventID(ctx context.Context, eventID int64, filter *ListingFilter) ([]*domain.Listing, error) {
	conditions := []string{"event_id = $1"}
	args := []interface{}{eventID}
	argIndex := 2

	if filter != nil {
		if filter.MaxPrice != nil {
			conditions = append(conditions, fmt.Sprintf("price <= $%d", argIndex))
			args = append(args, *filter.MaxPrice)
			argIndex++
		}
		if filter.VerifiedOnly {
			conditions = append(conditions, "is_verified = true")
		}
		if filter.SectionID != nil {
			conditions = append(conditions, fmt.Sprintf("section_id = $%d", argIndex))
			args = append(args, *filter.SectionID)
			argIndex++
		}
	}

	query := fmt.Sprintf(`
		SELECT %s FROM listings
		WHERE %s
		ORDER BY id
	`, listingColumns, strings.Join(conditions, " AND "))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return r.scanListings(rows)
}
