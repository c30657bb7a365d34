package settlement

import (
	"math"
	"reflect"
	"testing"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		name         string
		balances     map[string]float64
		validateFunc func(t *testing.T, transfers []Transfer)
	}{
		{
			name:     "two debtors pay one creditor",
			balances: map[string]float64{"alice": 60.0, "bob": -30.0, "carol": -30.0},
			validateFunc: func(t *testing.T, transfers []Transfer) {
				if len(transfers) != 2 {
					t.Fatalf("got %d transfers, want 2", len(transfers))
				}
				for _, tr := range transfers {
					if tr.To != "alice" {
						t.Errorf("transfer to %s, want alice", tr.To)
					}
					if math.Abs(tr.Amount-30.0) > 1e-9 {
						t.Errorf("transfer amount = %v, want 30", tr.Amount)
					}
				}
				if transfers[0].From == transfers[1].From {
					t.Errorf("both transfers from %s, want distinct debtors", transfers[0].From)
				}
			},
		},
		{
			name:     "single pair settles in one transfer",
			balances: map[string]float64{"alice": 30.0, "bob": -30.0},
			validateFunc: func(t *testing.T, transfers []Transfer) {
				want := []Transfer{{From: "bob", To: "alice", Amount: 30.0}}
				if !reflect.DeepEqual(transfers, want) {
					t.Errorf("transfers = %v, want %v", transfers, want)
				}
			},
		},
		{
			name:     "already settled yields no transfers",
			balances: map[string]float64{"alice": 0.004, "bob": -0.004, "carol": 0.0},
			validateFunc: func(t *testing.T, transfers []Transfer) {
				if len(transfers) != 0 {
					t.Errorf("got %d transfers, want 0", len(transfers))
				}
			},
		},
		{
			name:     "empty balances",
			balances: map[string]float64{},
			validateFunc: func(t *testing.T, transfers []Transfer) {
				if len(transfers) != 0 {
					t.Errorf("got %d transfers, want 0", len(transfers))
				}
			},
		},
		{
			name:     "one debtor split across three creditors",
			balances: map[string]float64{"alice": 50.0, "bob": 30.0, "carol": 20.0, "dave": -100.0},
			validateFunc: func(t *testing.T, transfers []Transfer) {
				if len(transfers) != 3 {
					t.Fatalf("got %d transfers, want 3", len(transfers))
				}
				var total float64
				for _, tr := range transfers {
					if tr.From != "dave" {
						t.Errorf("transfer from %s, want dave", tr.From)
					}
					total += tr.Amount
				}
				if math.Abs(total-100.0) > 0.01 {
					t.Errorf("total transferred = %v, want 100", total)
				}
				// Largest creditor is paid first.
				if transfers[0].To != "alice" || math.Abs(transfers[0].Amount-50.0) > 1e-9 {
					t.Errorf("first transfer = %v, want 50 to alice", transfers[0])
				}
			},
		},
		{
			name:     "amounts are rounded to cents",
			balances: map[string]float64{"alice": 100.0 / 3, "bob": -100.0 / 3},
			validateFunc: func(t *testing.T, transfers []Transfer) {
				if len(transfers) != 1 {
					t.Fatalf("got %d transfers, want 1", len(transfers))
				}
				if transfers[0].Amount != 33.33 {
					t.Errorf("amount = %v, want 33.33", transfers[0].Amount)
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validateFunc(t, Match(tt.balances))
		})
	}
}

func TestMatchSettlesAllBalances(t *testing.T) {
	// Applying every transfer (credit the recipient, debit the sender) must
	// drive every balance to within the dead zone of zero.
	ledgers := []map[string]float64{
		{"a": 60, "b": -30, "c": -30},
		{"a": 50, "b": 30, "c": 20, "d": -100},
		{"a": 12.34, "b": -5.67, "c": -6.67},
		{"a": 100.0 / 3, "b": 100.0 / 3, "c": -200.0 / 3},
		{"a": 0.005, "b": -0.005},
	}

	for i, balances := range ledgers {
		remaining := make(map[string]float64, len(balances))
		for p, bal := range balances {
			remaining[p] = bal
		}

		for _, tr := range Match(balances) {
			if tr.Amount <= 0 {
				t.Errorf("ledger %d: non-positive transfer amount %v", i, tr.Amount)
			}
			remaining[tr.From] += tr.Amount
			remaining[tr.To] -= tr.Amount
		}

		for p, bal := range remaining {
			if math.Abs(bal) > zeroThreshold+1e-9 {
				t.Errorf("ledger %d: %s left with balance %v after settling", i, p, bal)
			}
		}
	}
}

func TestMatchCountBound(t *testing.T) {
	ledgers := []map[string]float64{
		{"a": 60, "b": -30, "c": -30},
		{"a": 50, "b": 30, "c": 20, "d": -100},
		{"a": 40, "b": 10, "c": -25, "d": -25},
		{"a": 1, "b": -1},
	}

	for i, balances := range ledgers {
		creditors, debtors := 0, 0
		for _, bal := range balances {
			if bal > zeroThreshold {
				creditors++
			} else if bal < -zeroThreshold {
				debtors++
			}
		}

		transfers := Match(balances)
		bound := creditors + debtors - 1
		if bound < 0 {
			bound = 0
		}
		if len(transfers) > bound {
			t.Errorf("ledger %d: %d transfers exceeds bound %d", i, len(transfers), bound)
		}
	}
}

func TestMatchDeterminism(t *testing.T) {
	// Equal balances have no inherent order in a map; the identifier
	// tie-break must make repeated runs identical.
	balances := map[string]float64{"a": 25, "b": 25, "c": -25, "d": -25}

	first := Match(balances)
	for run := 0; run < 20; run++ {
		if got := Match(balances); !reflect.DeepEqual(got, first) {
			t.Fatalf("run %d produced %v, first run produced %v", run, got, first)
		}
	}
}
