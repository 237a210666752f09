package ranking

import (
	"sort"

	"github.com/jenniferhuangg/ConcertCloud/internal/domain"
)

// RankCheapest returns the listings reordered by ascending price.
// The sort is stable: equal prices keep their input order. Input is
// never mutated.
func RankCheapest(listings []*domain.Listing) []*domain.Listing {
	out := make([]*domain.Listing, len(listings))
	copy(out, listings)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Price < out[j].Price
	})
	return out
}

// RankBest returns the listings reordered best-first by composite score
// (see Score). Price bounds are derived from the listing set itself.
// The sort is stable and input is never mutated.
func RankBest(listings []*domain.Listing, sections map[int64]*domain.Section, stageX, stageY float64, w Weights) []*domain.Listing {
	if len(listings) == 0 {
		return nil
	}

	priceLo, priceHi := PriceBounds(listings)

	scores := make(map[*domain.Listing]float64, len(listings))
	for _, l := range listings {
		scores[l] = Score(l, sections, stageX, stageY, priceLo, priceHi, w)
	}

	out := make([]*domain.Listing, len(listings))
	copy(out, listings)
	sort.SliceStable(out, func(i, j int) bool {
		return scores[out[i]] < scores[out[j]]
	})
	return out
}
