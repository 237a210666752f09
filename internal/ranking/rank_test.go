package ranking

import (
	"testing"

	"github.com/jenniferhuangg/ConcertCloud/internal/domain"
)

func TestRankCheapest_Ordering(t *testing.T) {
	listings := []*domain.Listing{
		{ID: 1, Price: 90},
		{ID: 2, Price: 40},
		{ID: 3, Price: 70},
	}

	got := RankCheapest(listings)

	for i := 1; i < len(got); i++ {
		if got[i-1].Price > got[i].Price {
			t.Fatalf("output not non-decreasing by price at %d: %v > %v", i, got[i-1].Price, got[i].Price)
		}
	}
	if got[0].ID != 2 || got[2].ID != 1 {
		t.Errorf("unexpected order: %d, %d, %d", got[0].ID, got[1].ID, got[2].ID)
	}
}

func TestRankCheapest_StableOnTies(t *testing.T) {
	listings := []*domain.Listing{
		{ID: 10, Price: 50},
		{ID: 11, Price: 50},
		{ID: 12, Price: 50},
	}

	got := RankCheapest(listings)

	for i, wantID := range []int64{10, 11, 12} {
		if got[i].ID != wantID {
			t.Errorf("tie order not preserved: position %d got id %d, want %d", i, got[i].ID, wantID)
		}
	}
}

func TestRankCheapest_DoesNotMutateInput(t *testing.T) {
	listings := []*domain.Listing{
		{ID: 1, Price: 90},
		{ID: 2, Price: 40},
	}

	_ = RankCheapest(listings)

	if listings[0].ID != 1 || listings[1].ID != 2 {
		t.Error("input slice was reordered")
	}
}

func TestRankBest_EmptyAndSingle(t *testing.T) {
	if got := RankBest(nil, nil, 500, 80, DefaultWeights()); len(got) != 0 {
		t.Errorf("empty input should rank to empty output, got %d", len(got))
	}

	one := []*domain.Listing{{ID: 1, Price: 30}}
	got := RankBest(one, nil, 500, 80, DefaultWeights())
	if len(got) != 1 || got[0].ID != 1 {
		t.Errorf("single listing should be trivially first")
	}
}

func TestRankBest_StageFrontCheapFirst(t *testing.T) {
	sidFront, sidBack := int64(1), int64(2)
	sections := map[int64]*domain.Section{
		sidFront: {ID: sidFront, CX: 500, CY: 80}, // coincides with stage
		sidBack:  {ID: sidBack, CX: 500, CY: 680},
	}

	listings := []*domain.Listing{
		{ID: 2, SectionID: &sidBack, Price: 80, SeatScore: domain.DefaultSeatScore},
		{ID: 1, SectionID: &sidFront, Price: 50, SeatScore: domain.DefaultSeatScore},
	}

	got := RankBest(listings, sections, 500, 80, DefaultWeights())

	if got[0].ID != 1 {
		t.Errorf("listing with stage-front section and lowest price should rank first, got id %d", got[0].ID)
	}
}

// Event with listings A (price 50, section 10 units from stage) and
// B (price 80, section 500 units away): both distance and price favor A.
func TestRankBest_DistanceAndPriceAgree(t *testing.T) {
	sidA, sidB := int64(1), int64(2)
	sections := map[int64]*domain.Section{
		sidA: {ID: sidA, CX: 500, CY: 90},  // 10 units from stage (500,80)
		sidB: {ID: sidB, CX: 500, CY: 580}, // 500 units from stage
	}

	listings := []*domain.Listing{
		{ID: 2, SectionID: &sidB, Price: 80},
		{ID: 1, SectionID: &sidA, Price: 50},
	}

	got := RankBest(listings, sections, 500, 80, DefaultWeights())

	if got[0].ID != 1 {
		t.Errorf("A should rank before B, got id %d first", got[0].ID)
	}
}

func TestDefaultWeights_Valid(t *testing.T) {
	if err := DefaultWeights().Validate(); err != nil {
		t.Fatalf("default weights must validate: %v", err)
	}
}

func TestWeights_Validate(t *testing.T) {
	bad := []Weights{
		{Distance: 0.5, Row: 0.5, Price: 0.5}, // sums to 1.5
		{Distance: -0.1, Row: 0.6, Price: 0.5},
		{},
	}
	for _, w := range bad {
		if err := w.Validate(); err == nil {
			t.Errorf("Validate(%+v) should fail", w)
		}
	}

	good := Weights{Distance: 0.7, Row: 0, Price: 0.3}
	if err := good.Validate(); err != nil {
		t.Errorf("Validate(%+v) failed: %v", good, err)
	}
}
