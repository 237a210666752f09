package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jenniferhuangg/ConcertCloud/internal/domain"
)

// PostgresVenueRepository implements VenueRepository using PostgreSQL
type PostgresVenueRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresVenueRepository creates a new PostgresVenueRepository
func NewPostgresVenueRepository(pool *pgxpool.Pool) *PostgresVenueRepository {
	return &PostgresVenueRepository{pool: pool}
}

const venueColumns = `id, name, width, height, stage_x, stage_y`

const sectionColumns = `id, venue_id, name, cx, cy, base_closeness`

func (r *PostgresVenueRepository) scanVenue(row pgx.Row) (*domain.Venue, error) {
	venue := &domain.Venue{}
	err := row.Scan(
		&venue.ID,
		&venue.Name,
		&venue.Width,
		&venue.Height,
		&venue.StageX,
		&venue.StageY,
	)
	if err != nil {
		return nil, err
	}
	return venue, nil
}

// Create creates a new venue
func (r *PostgresVenueRepository) Create(ctx context.Context, venue *domain.Venue) error {
	query := `
		INSERT INTO venues (name, width, height, stage_x, stage_y)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`
	return r.pool.QueryRow(ctx, query,
		venue.Name,
		venue.Width,
		venue.Height,
		venue.StageX,
		venue.StageY,
	).Scan(&venue.ID)
}

// CreateSections creates map sections for a venue
func (r *PostgresVenueRepository) CreateSections(ctx context.Context, venueID int64, sections []*domain.Section) error {
	if len(sections) == 0 {
		return nil
	}

	query := `
		INSERT INTO sections (venue_id, name, cx, cy, base_closeness)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, section := range sections {
		section.VenueID = venueID
		err := tx.QueryRow(ctx, query,
			venueID,
			section.Name,
			section.CX,
			section.CY,
			section.BaseCloseness,
		).Scan(&section.ID)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// GetByID retrieves a venue by ID
func (r *PostgresVenueRepository) GetByID(ctx context.Context, id int64) (*domain.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues WHERE id = $1`
	venue, err := r.scanVenue(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return venue, nil
}

// GetByName retrieves a venue by its unique name
func (r *PostgresVenueRepository) GetByName(ctx context.Context, name string) (*domain.Venue, error) {
	query := `SELECT ` + venueColumns + ` FROM venues WHERE name = $1`
	venue, err := r.scanVenue(r.pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return venue, nil
}

// GetSections retrieves all sections of a venue
func (r *PostgresVenueRepository) GetSections(ctx context.Context, venueID int64) ([]*domain.Section, error) {
	query := `SELECT ` + sectionColumns + ` FROM sections WHERE venue_id = $1 ORDER BY id`

	rows, err := r.pool.Query(ctx, query, venueID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sections []*domain.Section
	for rows.Next() {
		section := &domain.Section{}
		err := rows.Scan(
			&section.ID,
			&section.VenueID,
			&section.Name,
			&section.CX,
			&section.CY,
			&section.BaseCloseness,
		)
		if err != nil {
			return nil, err
		}
		sections = append(sections, section)
	}
	return sections, rows.Err()
}

// Delete deletes a venue by ID, sections cascade
func (r *PostgresVenueRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM venues WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if result.RowsAffected() == 0 {
		return errors.New("venue not found")
	}
	return nil
}
