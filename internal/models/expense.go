package models

// Expense represents a shared cost within a trip.
//
// Shares are computed once when the expense is created (equal split across
// SplitBetween) and stored; editing an expense recomputes them from the new
// amount and participant set. Invariant: the Shares keys are exactly the
// SplitBetween set and the share values sum to Amount up to floating-point
// tolerance.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string `json:"id"`

	// TripID is the trip this expense belongs to.
	TripID string `json:"tripId"`

	// Description is what the money was spent on (e.g., "Dinner").
	Description string `json:"description"`

	// Amount is the total cost, in Currency units.
	Amount float64 `json:"amount"`

	// Currency is an ISO code, informational only. No conversion is
	// performed anywhere.
	Currency string `json:"currency"`

	// Category is an optional spending category (e.g., "food").
	Category string `json:"category,omitempty"`

	// PaidBy is the participant who fronted the money.
	PaidBy string `json:"paidBy"`

	// PlaceID optionally ties the expense to a logged place.
	PlaceID string `json:"placeId,omitempty"`

	// SplitBetween are the participants sharing this expense.
	SplitBetween []string `json:"splitBetween"`

	// Shares maps each participant in SplitBetween to their owed portion.
	Shares map[string]float64 `json:"calculatedShares"`

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64 `json:"createdAt"`

	// UpdatedAt is the Unix timestamp of the last edit.
	UpdatedAt int64 `json:"updatedAt"`
}
