package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jenniferhuangg/ConcertCloud/internal/domain"
)

// PostgresArtistRepository implements ArtistRepository using PostgreSQL
type PostgresArtistRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresArtistRepository creates a new PostgresArtistRepository
func NewPostgresArtistRepository(pool *pgxpool.Pool) *PostgresArtistRepository {
	return &PostgresArtistRepository{pool: pool}
}

const artistColumns = `id, name, COALESCE(image_url, '') as image_url`

func (r *PostgresArtistRepository) scanArtist(row pgx.Row) (*domain.Artist, error) {
	artist := &domain.Artist{}
	err := row.Scan(&artist.ID, &artist.Name, &artist.ImageURL)
	if err != nil {
		return nil, err
	}
	return artist, nil
}

// Create creates a new artist
func (r *PostgresArtistRepository) Create(ctx context.Context, artist *domain.Artist) error {
	query := `
		INSERT INTO artists (name, image_url)
		VALUES ($1, $2)
		RETURNING id
	`
	return r.pool.QueryRow(ctx, query, artist.Name, artist.ImageURL).Scan(&artist.ID)
}

// GetByID retrieves an artist by ID
func (r *PostgresArtistRepository) GetByID(ctx context.Context, id int64) (*domain.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists WHERE id = $1`
	artist, err := r.scanArtist(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return artist, nil
}

// GetByName retrieves an artist by its unique name
func (r *PostgresArtistRepository) GetByName(ctx context.Context, name string) (*domain.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists WHERE name = $1`
	artist, err := r.scanArtist(r.pool.QueryRow(ctx, query, name))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return artist, nil
}

// List lists all artists ordered by name
func (r *PostgresArtistRepository) List(ctx context.Context) ([]*domain.Artist, error) {
	query := `SELECT ` + artistColumns + ` FROM artists ORDER BY name`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var artists []*domain.Artist
	for rows.Next() {
		artist := &domain.Artist{}
		if err := rows.Scan(&artist.ID, &artist.Name, &artist.ImageURL); err != nil {
			return nil, err
		}
		artists = append(artists, artist)
	}
	return artists, rows.Err()
}
