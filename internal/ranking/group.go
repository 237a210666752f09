package ranking

import (
	"sort"

	"github.com/jenniferhuangg/ConcertCloud/internal/domain"
)

// GroupKey identifies the bucket within which seat numbers can be
// contiguous: same resolved section (or none), same free-text section
// label, same row label.
type GroupKey struct {
	SectionID int64 // 0 when unresolved
	Section   string
	Row       string
}

func keyFor(l *domain.Listing) GroupKey {
	k := GroupKey{Section: l.Section, Row: l.Row}
	if l.SectionID != nil {
		k.SectionID = *l.SectionID
	}
	return k
}

// FilterTogether keeps only listings that belong to a maximal run of
// strictly consecutive seat numbers of length >= qty within their
// (section, row) group. Listings without a parsed seat number cannot
// participate in a run and are dropped; they are invisible to the
// sweep rather than treated as gaps. The result preserves input order.
// qty below 2 disables the filter.
func FilterTogether(listings []*domain.Listing, qty int) []*domain.Listing {
	if qty < 2 {
		return listings
	}

	groups := make(map[GroupKey][]*domain.Listing)
	for _, l := range listings {
		k := keyFor(l)
		groups[k] = append(groups[k], l)
	}

	kept := make(map[*domain.Listing]struct{})
	for _, group := range groups {
		sort.SliceStable(group, func(i, j int) bool {
			a, b := group[i], group[j]
			switch {
			case a.SeatNum == nil && b.SeatNum == nil:
				return a.ID < b.ID
			case a.SeatNum == nil:
				return false // missing seat numbers sort last
			case b.SeatNum == nil:
				return true
			case *a.SeatNum != *b.SeatNum:
				return *a.SeatNum < *b.SeatNum
			default:
				return a.ID < b.ID
			}
		})

		var run []*domain.Listing
		last := -1
		for _, l := range group {
			if l.SeatNum == nil {
				continue
			}
			if last < 0 || *l.SeatNum == last+1 {
				run = append(run, l)
			} else {
				flushRun(kept, run, qty)
				run = []*domain.Listing{l}
			}
			last = *l.SeatNum
		}
		flushRun(kept, run, qty)
	}

	out := make([]*domain.Listing, 0, len(kept))
	for _, l := range listings {
		if _, ok := kept[l]; ok {
			out = append(out, l)
		}
	}
	return out
}

func flushRun(kept map[*domain.Listing]struct{}, run []*domain.Listing, qty int) {
	if len(run) < qty {
		return
	}
	for _, l := range run {
		kept[l] = struct{}{}
	}
}
