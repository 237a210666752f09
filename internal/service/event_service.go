package service

import (
	"context"
	"errors"

	"github.com/jenniferhuangg/ConcertCloud/internal/domain"
	"github.com/jenniferhuangg/ConcertCloud/internal/dto"
	"github.com/jenniferhuangg/ConcertCloud/internal/ranking"
	"github.com/jenniferhuangg/ConcertCloud/internal/repository"
)

// Common errors
var (
	ErrEventNotFound       = errors.New("event not found")
	ErrArtistAlreadyExists = errors.New("artist already exists")
)

// eventService implements EventService
type eventService struct {
	eventRepo   repository.EventRepository
	artistRepo  repository.ArtistRepository
	venueRepo   repository.VenueRepository
	listingRepo repository.ListingRepository
	weights     ranking.Weights
}

// NewEventService creates a new EventService
func NewEventService(
	eventRepo repository.EventRepository,
	artistRepo repository.ArtistRepository,
	venueRepo repository.VenueRepository,
	listingRepo repository.ListingRepository,
	weights ranking.Weights,
) EventService {
	return &eventService{
		eventRepo:   eventRepo,
		artistRepo:  artistRepo,
		venueRepo:   venueRepo,
		listingRepo: listingRepo,
		weights:     weights,
	}
}

// CreateEvent creates an event, resolving the artist and venue by name.
// The artist is created on first mention. The venue link stays empty when
// no venue of that name is registered; the event still carries the name.
func (s *eventService) CreateEvent(ctx context.Context, req *dto.CreateEventRequest) (*dto.EventResponse, error) {
	if valid, msg := req.Validate(); !valid {
		return nil, errors.New(msg)
	}

	artist, err := s.artistRepo.GetByName(ctx, req.Artist)
	if err != nil {
		return nil, err
	}
	if artist == nil {
		artist = &domain.Artist{Name: req.Artist}
		if err := s.artistRepo.Create(ctx, artist); err != nil {
			return nil, err
		}
	}

	var venueID *int64
	venue, err := s.venueRepo.GetByName(ctx, req.Venue)
	if err != nil {
		return nil, err
	}
	if venue != nil {
		venueID = &venue.ID
	}

	status := req.Status
	if status == "" {
		status = domain.EventStatusOnSale
	}

	event := &domain.Event{
		ArtistID:  artist.ID,
		VenueName: req.Venue,
		VenueID:   venueID,
		When:      req.When,
		Status:    status,
	}
	if err := s.eventRepo.Create(ctx, event); err != nil {
		return nil, err
	}

	return dto.ToEventResponse(event, artist.Name), nil
}

// GetEvent retrieves an event by ID
func (s *eventService) GetEvent(ctx context.Context, id int64) (*dto.EventResponse, error) {
	event, err := s.eventRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	artistName := ""
	if artist, err := s.artistRepo.GetByID(ctx, event.ArtistID); err == nil && artist != nil {
		artistName = artist.Name
	}
	return dto.ToEventResponse(event, artistName), nil
}

// ListEvents lists events with filters and pagination
func (s *eventService) ListEvents(ctx context.Context, query *dto.EventListQuery) ([]*dto.EventResponse, int, error) {
	query.SetDefaults()
	if valid, msg := query.Validate(); !valid {
		return nil, 0, errors.New(msg)
	}

	filter := &repository.EventFilter{
		Status:   query.Status,
		ArtistID: query.ArtistID,
	}
	events, total, err := s.eventRepo.List(ctx, filter, query.Limit, query.Offset)
	if err != nil {
		return nil, 0, err
	}

	// one artist lookup per distinct artist in the page
	names := make(map[int64]string)
	responses := make([]*dto.EventResponse, 0, len(events))
	for _, event := range events {
		name, ok := names[event.ArtistID]
		if !ok {
			if artist, err := s.artistRepo.GetByID(ctx, event.ArtistID); err == nil && artist != nil {
				name = artist.Name
			}
			names[event.ArtistID] = name
		}
		responses = append(responses, dto.ToEventResponse(event, name))
	}
	return responses, total, nil
}

// ListArtists lists all known artists
func (s *eventService) ListArtists(ctx context.Context) ([]*domain.Artist, error) {
	return s.artistRepo.List(ctx)
}

// CreateArtist registers an artist by name
func (s *eventService) CreateArtist(ctx context.Context, req *dto.CreateArtistRequest) (*domain.Artist, error) {
	if valid, msg := req.Validate(); !valid {
		return nil, errors.New(msg)
	}

	existing, err := s.artistRepo.GetByName(ctx, req.Name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrArtistAlreadyExists
	}

	artist := &domain.Artist{Name: req.Name, ImageURL: req.ImageURL}
	if err := s.artistRepo.Create(ctx, artist); err != nil {
		return nil, err
	}
	return artist, nil
}

// GetSeatMap builds the seat map for an event's venue, falling back to a
// name lookup (and then to the default canvas) when the event has no venue
// link. Each section carries its cheapest active price and listing count,
// and the map carries markers for the overall cheapest and best listings.
func (s *eventService) GetSeatMap(ctx context.Context, eventID int64) (*dto.SeatMapResponse, error) {
	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}
	var venue *domain.Venue
	if event.VenueID != nil {
		venue, err = s.venueRepo.GetByID(ctx, *event.VenueID)
	} else {
		// Older rows carry only the venue name.
		venue, err = s.venueRepo.GetByName(ctx, event.VenueName)
	}
	if err != nil {
		return nil, err
	}

	var sections []*domain.Section
	if venue != nil {
		sections, err = s.venueRepo.GetSections(ctx, venue.ID)
		if err != nil {
			return nil, err
		}
	} else {
		// No stored map: render the default canvas with no sections.
		venue = domain.DefaultVenue(event.VenueName)
	}

	listings, err := s.listingRepo.GetByEventID(ctx, eventID, nil)
	if err != nil {
		return nil, err
	}

	sectionIndex := make(map[int64]*domain.Section, len(sections))
	nameIndex := make(map[string]*domain.Section, len(sections))
	for _, section := range sections {
		sectionIndex[section.ID] = section
		nameIndex[section.Name] = section
	}

	resolve := func(l *domain.Listing) *domain.Section {
		if l.SectionID != nil {
			if sec, ok := sectionIndex[*l.SectionID]; ok {
				return sec
			}
		}
		return nameIndex[l.Section]
	}

	minPrice := make(map[int64]float64)
	count := make(map[int64]int)
	for _, listing := range listings {
		sec := resolve(listing)
		if sec == nil {
			continue
		}
		count[sec.ID]++
		if p, ok := minPrice[sec.ID]; !ok || listing.Price < p {
			minPrice[sec.ID] = listing.Price
		}
	}

	var cheapestMarker, bestMarker *dto.SeatMapMarker
	var cheapestSectionID, bestSectionID int64
	if cheapest := ranking.RankCheapest(listings); len(cheapest) > 0 {
		cheapestMarker = &dto.SeatMapMarker{ListingID: cheapest[0].ID, Price: cheapest[0].Price}
		if sec := resolve(cheapest[0]); sec != nil {
			cheapestMarker.SectionID = sec.ID
			cheapestSectionID = sec.ID
		}
	}
	if best := ranking.RankBest(listings, sectionIndex, venue.StageX, venue.StageY, s.weights); len(best) > 0 {
		bestMarker = &dto.SeatMapMarker{ListingID: best[0].ID, Price: best[0].Price}
		if sec := resolve(best[0]); sec != nil {
			bestMarker.SectionID = sec.ID
			bestSectionID = sec.ID
		}
	}

	resp := &dto.SeatMapResponse{
		EventID:  event.ID,
		VenueID:  venue.ID,
		Venue:    venue.Name,
		Width:    venue.Width,
		Height:   venue.Height,
		StageX:   venue.StageX,
		StageY:   venue.StageY,
		Sections: make([]dto.SeatMapSection, 0, len(sections)),
		Cheapest: cheapestMarker,
		Best:     bestMarker,
	}
	for _, section := range sections {
		entry := dto.SeatMapSection{
			ID:           section.ID,
			Name:         section.Name,
			CX:           section.CX,
			CY:           section.CY,
			ListingCount: count[section.ID],
			HasCheapest:  section.ID == cheapestSectionID && cheapestSectionID != 0,
			HasBest:      section.ID == bestSectionID && bestSectionID != 0,
		}
		if p, ok := minPrice[section.ID]; ok {
			price := p
			entry.MinPrice = &price
		}
		resp.Sections = append(resp.Sections, entry)
	}
	return resp, nil
}
