package ranking

import (
	"testing"

	"github.com/jenniferhuangg/ConcertCloud/internal/domain"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name       string
		x, lo, hi  float64
		want       float64
	}{
		{"midpoint", 5, 0, 10, 0.5},
		{"at lower bound", 0, 0, 10, 0},
		{"at upper bound", 10, 0, 10, 1},
		{"below range clamps", -5, 0, 10, 0},
		{"above range clamps", 50, 0, 10, 1},
		{"degenerate range", 7, 3, 3, 0},
		{"degenerate range at zero", 0, 0, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Normalize(tt.x, tt.lo, tt.hi)
			if got != tt.want {
				t.Errorf("Normalize(%g, %g, %g) = %g, want %g", tt.x, tt.lo, tt.hi, got, tt.want)
			}
			if got < 0 || got > 1 {
				t.Errorf("Normalize(%g, %g, %g) = %g, out of [0,1]", tt.x, tt.lo, tt.hi, got)
			}
		})
	}
}

func TestRowDepth(t *testing.T) {
	tests := []struct {
		row  string
		want int
	}{
		{"A", 1},
		{"B", 2},
		{"Z", 26},
		{"AA", 27},
		{"12", 12},
		{"", 10},
		{"a", 1},      // case-insensitive
		{"R-3x", 492}, // letters filtered and read as base-26: R,X
		{"##", 10},    // no letters left after filtering
	}

	for _, tt := range tests {
		if got := RowDepth(tt.row); got != tt.want {
			t.Errorf("RowDepth(%q) = %d, want %d", tt.row, got, tt.want)
		}
	}
}

func TestDistance(t *testing.T) {
	if got := Distance(0, 0, 3, 4); got != 5 {
		t.Errorf("Distance(0,0,3,4) = %g, want 5", got)
	}
	if got := Distance(2, 2, 2, 2); got != 0 {
		t.Errorf("Distance of identical points = %g, want 0", got)
	}
}

func TestPriceBounds(t *testing.T) {
	listings := []*domain.Listing{
		{Price: 50}, {Price: 80}, {Price: 120},
	}

	lo, hi := PriceBounds(listings)
	if lo != 50 {
		t.Errorf("lo = %g, want 50", lo)
	}
	if hi != 80 {
		t.Errorf("hi = %g, want median 80", hi)
	}
}

func TestPriceBounds_AllEqual(t *testing.T) {
	listings := []*domain.Listing{
		{Price: 60}, {Price: 60}, {Price: 60},
	}

	lo, hi := PriceBounds(listings)
	if hi <= lo {
		t.Errorf("degenerate prices: hi (%g) must exceed lo (%g) via epsilon floor", hi, lo)
	}

	// All listings normalize to ~0 in the epsilon-wide range.
	if n := Normalize(60, lo, hi); n != 0 {
		t.Errorf("Normalize(60, %g, %g) = %g, want 0", lo, hi, n)
	}
}

func TestScore_SectionFallback(t *testing.T) {
	w := DefaultWeights()
	sections := map[int64]*domain.Section{
		1: {ID: 1, CX: 500, CY: 80},
	}

	sid := int64(1)
	onStage := &domain.Listing{SectionID: &sid, Price: 50, SeatScore: domain.DefaultSeatScore}
	unmapped := &domain.Listing{Price: 50, SeatScore: domain.DefaultSeatScore}

	sOn := Score(onStage, sections, 500, 80, 50, 100, w)
	sOff := Score(unmapped, sections, 500, 80, 50, 100, w)

	// Section centroid coincides with the stage: distance term is zero.
	// The unmapped listing pays the full seat-score fallback instead.
	if sOn >= sOff {
		t.Errorf("on-stage section score %g should beat seat-score fallback %g", sOn, sOff)
	}
}

func TestScore_UnknownSectionIDUsesFallback(t *testing.T) {
	w := DefaultWeights()
	sid := int64(99) // not in the map
	l := &domain.Listing{SectionID: &sid, Price: 50, SeatScore: 0}

	got := Score(l, map[int64]*domain.Section{}, 500, 80, 50, 100, w)
	want := Score(&domain.Listing{Price: 50, SeatScore: 0}, nil, 500, 80, 50, 100, w)
	if got != want {
		t.Errorf("unresolvable section id should score like an unmapped listing: %g != %g", got, want)
	}
}
