package domain

import "testing"

func TestParseSeatNum(t *testing.T) {
	tests := []struct {
		seat string
		want *int
	}{
		{"12", intPtr(12)},
		{"Seat 12", intPtr(12)},
		{"A-7", intPtr(7)},
		{"GA", nil},
		{"", nil},
	}

	for _, tt := range tests {
		got := ParseSeatNum(tt.seat)
		switch {
		case tt.want == nil && got != nil:
			t.Errorf("ParseSeatNum(%q) = %d, want nil", tt.seat, *got)
		case tt.want != nil && got == nil:
			t.Errorf("ParseSeatNum(%q) = nil, want %d", tt.seat, *tt.want)
		case tt.want != nil && got != nil && *got != *tt.want:
			t.Errorf("ParseSeatNum(%q) = %d, want %d", tt.seat, *got, *tt.want)
		}
	}
}

func intPtr(n int) *int { return &n }
