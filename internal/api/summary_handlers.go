package api

import (
	"net/http"

	"github.com/mmehta/wayfarer/internal/settlement"
)

type transferJSON struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

type summaryResponse struct {
	TotalSpent         float64            `json:"totalSpent"`
	ExpensePerPlace    map[string]float64 `json:"expensePerPlace"`
	ExpensePerCategory map[string]float64 `json:"expensePerCategory"`
	SplitDue           map[string]float64 `json:"splitDue"`
	Settlements        []transferJSON     `json:"settlements"`
}

// handleTripSummary recomputes balances and settlements from the full
// expense ledger on every request. Nothing is persisted; a repeated request
// after new expenses simply reflects the new ledger.
func (a *API) handleTripSummary(w http.ResponseWriter, r *http.Request) {
	trip := a.loadTripForMember(w, r)
	if trip == nil {
		return
	}

	expenses, err := a.store.ListExpensesByTrip(r.Context(), trip.ID)
	if err != nil {
		respondStoreError(w, "ListExpensesByTrip", err)
		return
	}

	ledger := make([]settlement.Expense, len(expenses))
	for i, e := range expenses {
		ledger[i] = settlement.Expense{
			Amount:   e.Amount,
			PaidBy:   e.PaidBy,
			PlaceID:  e.PlaceID,
			Category: e.Category,
			Shares:   e.Shares,
		}
	}

	summary := settlement.Aggregate(ledger)
	transfers := settlement.Match(summary.Balances)

	settlements := make([]transferJSON, len(transfers))
	for i, t := range transfers {
		settlements[i] = transferJSON{From: t.From, To: t.To, Amount: t.Amount}
	}

	respondJSON(w, http.StatusOK, summaryResponse{
		TotalSpent:         summary.TotalSpent,
		ExpensePerPlace:    summary.PerPlace,
		ExpensePerCategory: summary.PerCategory,
		SplitDue:           summary.Balances,
		Settlements:        settlements,
	})
}
