package ranking

import (
	"math"
	"sort"
	"strconv"
	"unicode"

	"github.com/jenniferhuangg/ConcertCloud/internal/domain"
)

const (
	// maxCanvasDistance is the normalization ceiling for stage distance.
	// Venue maps share a fixed logical canvas (~0..1000).
	maxCanvasDistance = 1000.0

	// maxSeatScore bounds the fallback seat-quality score.
	maxSeatScore = 100.0

	// Row depth normalization range. Depths past maxRowDepth clamp to 1.
	minRowDepth = 1.0
	maxRowDepth = 30.0

	// defaultRowDepth is assumed when a listing has no usable row label.
	defaultRowDepth = 10

	// priceEpsilon keeps the price range non-degenerate when every
	// listing costs the same.
	priceEpsilon = 1e-6
)

// Normalize linearly maps x into [0,1] over [lo,hi], clamped at both
// ends. A degenerate range (hi == lo) maps everything to 0.
func Normalize(x, lo, hi float64) float64 {
	if hi == lo {
		return 0
	}
	v := (x - lo) / (hi - lo)
	return math.Min(1, math.Max(0, v))
}

// Distance returns the Euclidean distance between two points.
func Distance(ax, ay, bx, by float64) float64 {
	return math.Hypot(ax-bx, ay-by)
}

// RowDepth converts a row label into a depth integer (1 = front).
// Purely numeric labels are used verbatim. Otherwise the alphabetic
// characters are kept and read as a base-26 numeral with A=1
// ("A"→1, "Z"→26, "AA"→27). Labels with neither digits-only form nor
// any letters fall back to defaultRowDepth, as does an empty label.
func RowDepth(row string) int {
	if row == "" {
		return defaultRowDepth
	}
	if n, err := strconv.Atoi(row); err == nil && n >= 0 {
		return n
	}
	depth := 0
	for _, ch := range row {
		ch = unicode.ToUpper(ch)
		if ch >= 'A' && ch <= 'Z' {
			depth = depth*26 + int(ch-'A') + 1
		}
	}
	if depth == 0 {
		return defaultRowDepth
	}
	return depth
}

// PriceBounds returns the normalization range for a listing set's
// prices: (min, max(median, min+epsilon)). Capping the upper bound at
// the median keeps a handful of outrageously priced listings from
// compressing everything else into the bottom of the range.
func PriceBounds(listings []*domain.Listing) (lo, hi float64) {
	if len(listings) == 0 {
		return 0, priceEpsilon
	}
	prices := make([]float64, len(listings))
	for i, l := range listings {
		prices[i] = l.Price
	}
	sort.Float64s(prices)

	lo = prices[0]
	med := median(prices)
	hi = math.Max(med, lo+priceEpsilon)
	return lo, hi
}

// median expects a sorted slice.
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}

// Score computes the composite "lower is better" score for a listing.
// When the listing resolves to a section, distance is measured from the
// section centroid to the stage; otherwise the listing's fallback seat
// score stands in for geometry.
func Score(l *domain.Listing, sections map[int64]*domain.Section, stageX, stageY, priceLo, priceHi float64, w Weights) float64 {
	priceN := Normalize(l.Price, priceLo, priceHi)

	var distN float64
	if sec := resolveSection(l, sections); sec != nil {
		distN = Normalize(Distance(sec.CX, sec.CY, stageX, stageY), 0, maxCanvasDistance)
	} else {
		distN = Normalize(float64(l.SeatScore), 0, maxSeatScore)
	}

	rowN := Normalize(float64(RowDepth(l.Row)), minRowDepth, maxRowDepth)

	return w.Distance*distN + w.Row*rowN + w.Price*priceN
}

func resolveSection(l *domain.Listing, sections map[int64]*domain.Section) *domain.Section {
	if l.SectionID == nil {
		return nil
	}
	return sections[*l.SectionID]
}
