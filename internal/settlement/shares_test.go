package settlement

import (
	"math"
	"testing"
)

func TestEqualShares(t *testing.T) {
	tests := []struct {
		name         string
		amount       float64
		participants []string
		want         map[string]float64
	}{
		{
			name:         "single participant gets full amount",
			amount:       42.50,
			participants: []string{"alice"},
			want:         map[string]float64{"alice": 42.50},
		},
		{
			name:         "three-way split",
			amount:       90.0,
			participants: []string{"alice", "bob", "carol"},
			want:         map[string]float64{"alice": 30.0, "bob": 30.0, "carol": 30.0},
		},
		{
			name:         "non-divisible amount gives identical quotients",
			amount:       100.0,
			participants: []string{"alice", "bob", "carol"},
			want: map[string]float64{
				"alice": 100.0 / 3,
				"bob":   100.0 / 3,
				"carol": 100.0 / 3,
			},
		},
		{
			name:         "empty participants returns empty map",
			amount:       10.0,
			participants: nil,
			want:         map[string]float64{},
		},
		{
			name:         "duplicate identifiers collapse to one key",
			amount:       30.0,
			participants: []string{"alice", "alice", "bob"},
			want:         map[string]float64{"alice": 10.0, "bob": 10.0},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := EqualShares(tt.amount, tt.participants)
			if len(got) != len(tt.want) {
				t.Fatalf("got %d shares, want %d", len(got), len(tt.want))
			}
			for p, share := range tt.want {
				if math.Abs(got[p]-share) > 1e-9 {
					t.Errorf("share[%s] = %v, want %v", p, got[p], share)
				}
			}
		})
	}
}

func TestEqualSharesSumProperty(t *testing.T) {
	// Shares must sum back to the amount within relative tolerance for any
	// positive amount and duplicate-free participant list.
	cases := []struct {
		amount       float64
		participants []string
	}{
		{10.0, []string{"a"}},
		{99.99, []string{"a", "b"}},
		{100.0, []string{"a", "b", "c"}},
		{0.03, []string{"a", "b", "c"}},
		{1234.567, []string{"a", "b", "c", "d", "e", "f", "g"}},
	}

	for _, c := range cases {
		shares := EqualShares(c.amount, c.participants)
		var sum float64
		for _, s := range shares {
			sum += s
		}
		if math.Abs(sum-c.amount) > 1e-9*c.amount {
			t.Errorf("shares for %v among %d sum to %v, want %v",
				c.amount, len(c.participants), sum, c.amount)
		}
	}
}
