package service

import (
	"context"
	"errors"

	"github.com/jenniferhuangg/ConcertCloud/internal/domain"
	"github.com/jenniferhuangg/ConcertCloud/internal/dto"
	"github.com/jenniferhuangg/ConcertCloud/internal/repository"
)

// Common errors
var (
	ErrVenueNotFound      = errors.New("venue not found")
	ErrVenueAlreadyExists = errors.New("venue with this name already exists")
)

// venueService implements VenueService
type venueService struct {
	venueRepo repository.VenueRepository
}

// NewVenueService creates a new VenueService
func NewVenueService(venueRepo repository.VenueRepository) VenueService {
	return &venueService{venueRepo: venueRepo}
}

// CreateVenue creates a venue together with its map sections
func (s *venueService) CreateVenue(ctx context.Context, req *dto.CreateVenueRequest) (*domain.Venue, []*domain.Section, error) {
	if valid, msg := req.Validate(); !valid {
		return nil, nil, errors.New(msg)
	}

	existing, err := s.venueRepo.GetByName(ctx, req.Name)
	if err != nil {
		return nil, nil, err
	}
	if existing != nil {
		return nil, nil, ErrVenueAlreadyExists
	}

	venue := domain.DefaultVenue(req.Name)
	if req.Width > 0 {
		venue.Width = req.Width
	}
	if req.Height > 0 {
		venue.Height = req.Height
	}
	if req.StageX != nil {
		venue.StageX = *req.StageX
	}
	if req.StageY != nil {
		venue.StageY = *req.StageY
	}

	if err := s.venueRepo.Create(ctx, venue); err != nil {
		return nil, nil, err
	}

	sections := make([]*domain.Section, 0, len(req.Sections))
	for _, in := range req.Sections {
		sections = append(sections, &domain.Section{
			Name:          in.Name,
			CX:            in.CX,
			CY:            in.CY,
			BaseCloseness: in.BaseCloseness,
		})
	}
	if err := s.venueRepo.CreateSections(ctx, venue.ID, sections); err != nil {
		return nil, nil, err
	}

	return venue, sections, nil
}

// GetVenue retrieves a venue and its sections
func (s *venueService) GetVenue(ctx context.Context, id int64) (*domain.Venue, []*domain.Section, error) {
	venue, err := s.venueRepo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if venue == nil {
		return nil, nil, ErrVenueNotFound
	}
	sections, err := s.venueRepo.GetSections(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return venue, sections, nil
}
