package service

import (
	"context"
	"errors"

	"github.com/jenniferhuangg/ConcertCloud/internal/domain"
	"github.com/jenniferhuangg/ConcertCloud/internal/dto"
	"github.com/jenniferhuangg/ConcertCloud/internal/ranking"
	"github.com/jenniferhuangg/ConcertCloud/internal/repository"
)

// listingService implements ListingService
type listingService struct {
	listingRepo repository.ListingRepository
	eventRepo   repository.EventRepository
	venueRepo   repository.VenueRepository
	weights     ranking.Weights
}

// NewListingService creates a new ListingService
func NewListingService(
	listingRepo repository.ListingRepository,
	eventRepo repository.EventRepository,
	venueRepo repository.VenueRepository,
	weights ranking.Weights,
) ListingService {
	return &listingService{
		listingRepo: listingRepo,
		eventRepo:   eventRepo,
		venueRepo:   venueRepo,
		weights:     weights,
	}
}

// ListForEvent retrieves an event's listings filtered, grouped and ranked.
// The pipeline is filter, then seats-together grouping, then sort: grouping
// runs over the filtered set so a run of seats must survive the filters to
// count, and ranking sees only what the caller can actually buy.
func (s *listingService) ListForEvent(ctx context.Context, eventID int64, query *dto.ListingQuery) ([]*domain.Listing, error) {
	query.SetDefaults()
	if valid, msg := query.Validate(); !valid {
		return nil, errors.New(msg)
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	filter := &repository.ListingFilter{
		MaxPrice:     query.MaxPrice,
		VerifiedOnly: query.VerifiedOnly,
		SectionID:    query.SectionID,
	}
	listings, err := s.listingRepo.GetByEventID(ctx, eventID, filter)
	if err != nil {
		return nil, err
	}

	if query.Together {
		listings = ranking.FilterTogether(listings, query.Qty)
	}

	switch query.Sort {
	case dto.SortBest:
		sections, stageX, stageY, err := s.venueGeometry(ctx, event)
		if err != nil {
			return nil, err
		}
		listings = ranking.RankBest(listings, sections, stageX, stageY, s.weights)
	default:
		listings = ranking.RankCheapest(listings)
	}

	if listings == nil {
		listings = []*domain.Listing{}
	}
	return listings, nil
}

// venueGeometry loads the section index and stage position for an event.
// Events without a venue link fall back to a name lookup; events whose venue
// is unknown entirely rank on seat scores alone against the default stage.
func (s *listingService) venueGeometry(ctx context.Context, event *domain.Event) (map[int64]*domain.Section, float64, float64, error) {
	var venue *domain.Venue
	var err error
	if event.VenueID != nil {
		venue, err = s.venueRepo.GetByID(ctx, *event.VenueID)
	} else {
		venue, err = s.venueRepo.GetByName(ctx, event.VenueName)
	}
	if err != nil {
		return nil, 0, 0, err
	}
	if venue == nil {
		return nil, domain.DefaultStageX, domain.DefaultStageY, nil
	}
	sections, err := s.venueRepo.GetSections(ctx, venue.ID)
	if err != nil {
		return nil, 0, 0, err
	}
	index := make(map[int64]*domain.Section, len(sections))
	for _, section := range sections {
		index[section.ID] = section
	}
	return index, venue.StageX, venue.StageY, nil
}

// IngestListings stores a batch of listings for an event. Seat numbers are
// parsed out of the seat labels, and sections are linked to the venue map
// by name when the request does not carry explicit section IDs.
func (s *listingService) IngestListings(ctx context.Context, eventID int64, req *dto.IngestListingsRequest) ([]*domain.Listing, error) {
	if valid, msg := req.Validate(); !valid {
		return nil, errors.New(msg)
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, ErrEventNotFound
	}

	nameIndex, err := s.sectionNameIndex(ctx, event)
	if err != nil {
		return nil, err
	}

	listings := make([]*domain.Listing, 0, len(req.Listings))
	for _, in := range req.Listings {
		listing := &domain.Listing{
			EventID:    eventID,
			Section:    in.Section,
			SectionID:  in.SectionID,
			Row:        in.Row,
			Seat:       in.Seat,
			SeatNum:    domain.ParseSeatNum(in.Seat),
			Price:      in.Price,
			SeatScore:  domain.DefaultSeatScore,
			IsVerified: in.IsVerified,
		}
		if in.SeatScore != nil {
			listing.SeatScore = *in.SeatScore
		}
		if listing.SectionID == nil {
			if sec, ok := nameIndex[in.Section]; ok {
				id := sec.ID
				listing.SectionID = &id
			}
		}
		listings = append(listings, listing)
	}

	if err := s.listingRepo.CreateBatch(ctx, listings); err != nil {
		return nil, err
	}
	return listings, nil
}

func (s *listingService) sectionNameIndex(ctx context.Context, event *domain.Event) (map[string]*domain.Section, error) {
	if event.VenueID == nil {
		return nil, nil
	}
	sections, err := s.venueRepo.GetSections(ctx, *event.VenueID)
	if err != nil {
		return nil, err
	}
	index := make(map[string]*domain.Section, len(sections))
	for _, section := range sections {
		index[section.Name] = section
	}
	return index, nil
}
