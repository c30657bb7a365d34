package settlement

// Expense carries the minimal expense information needed for balance
// aggregation. Shares are the per-participant amounts stored when the expense
// was created; they are not recomputed here.
type Expense struct {
	Amount   float64
	PaidBy   string
	PlaceID  string // optional; empty means not tied to a place
	Category string // optional; empty means uncategorized
	Shares   map[string]float64
}

// Summary is the aggregated view of a trip's expense ledger.
type Summary struct {
	// TotalSpent is the sum of all expense amounts.
	TotalSpent float64

	// PerPlace totals expense amounts by place, for expenses that carry a
	// place ID.
	PerPlace map[string]float64

	// PerCategory totals expense amounts by category, for expenses that
	// carry a category.
	PerCategory map[string]float64

	// Balances maps each participant to their net position:
	// positive = owed money, negative = owes money.
	Balances map[string]float64
}

// Aggregate folds an expense ledger into net balances and spending rollups.
//
// For each expense the payer is credited the full amount and every split
// participant is debited their stored share; a payer who is also in the split
// nets out to "paid minus own share". Well-formed input (shares summing to
// the amount) therefore yields balances summing to zero up to floating-point
// tolerance. Malformed expenses are not detected — they simply produce a
// non-zero-sum balance set.
func Aggregate(expenses []Expense) Summary {
	s := Summary{
		PerPlace:    make(map[string]float64),
		PerCategory: make(map[string]float64),
		Balances:    make(map[string]float64),
	}

	for _, e := range expenses {
		s.TotalSpent += e.Amount
		if e.PlaceID != "" {
			s.PerPlace[e.PlaceID] += e.Amount
		}
		if e.Category != "" {
			s.PerCategory[e.Category] += e.Amount
		}

		s.Balances[e.PaidBy] += e.Amount
		for participant, share := range e.Shares {
			s.Balances[participant] -= share
		}
	}

	return s
}
