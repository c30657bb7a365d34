package api

import (
	"fmt"
	"math"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mmehta/wayfarer/internal/models"
	"github.com/mmehta/wayfarer/internal/settlement"
)

type expenseRequest struct {
	Description  string   `json:"description"`
	Amount       float64  `json:"amount"`
	Currency     string   `json:"currency"`
	Category     string   `json:"category"`
	PaidBy       string   `json:"paidBy"`
	PlaceID      string   `json:"placeId"`
	SplitBetween []string `json:"splitBetween"`
}

// validateExpense enforces the engine's preconditions at the boundary:
// positive finite amount, non-empty duplicate-free split, payer and every
// split participant a trip member.
func validateExpense(req *expenseRequest, trip *models.Trip) error {
	if req.Amount <= 0 || math.IsInf(req.Amount, 0) || math.IsNaN(req.Amount) {
		return fmt.Errorf("amount must be a positive finite number")
	}
	if req.Currency == "" {
		return fmt.Errorf("currency is required")
	}
	if req.PaidBy == "" {
		return fmt.Errorf("paidBy is required")
	}
	if len(req.SplitBetween) == 0 {
		return fmt.Errorf("splitBetween must not be empty")
	}

	seen := make(map[string]bool, len(req.SplitBetween))
	for _, p := range req.SplitBetween {
		if seen[p] {
			return fmt.Errorf("duplicate participant %q in splitBetween", p)
		}
		seen[p] = true
		if !isParticipant(p, trip.Members) {
			return fmt.Errorf("participant %q is not a trip member", p)
		}
	}
	if !isParticipant(req.PaidBy, trip.Members) {
		return fmt.Errorf("payer %q is not a trip member", req.PaidBy)
	}

	return nil
}

func (a *API) handleCreateExpense(w http.ResponseWriter, r *http.Request) {
	trip := a.loadTripForMember(w, r)
	if trip == nil {
		return
	}

	var req expenseRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validateExpense(&req, trip); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	// Shares are computed once, here, and stored with the expense
	expense := &models.Expense{
		TripID:       trip.ID,
		Description:  req.Description,
		Amount:       req.Amount,
		Currency:     req.Currency,
		Category:     req.Category,
		PaidBy:       req.PaidBy,
		PlaceID:      req.PlaceID,
		SplitBetween: req.SplitBetween,
		Shares:       settlement.EqualShares(req.Amount, req.SplitBetween),
	}

	if err := a.store.CreateExpense(r.Context(), expense); err != nil {
		respondStoreError(w, "CreateExpense", err)
		return
	}

	respondJSON(w, http.StatusCreated, expense)
}

func (a *API) handleListExpenses(w http.ResponseWriter, r *http.Request) {
	trip := a.loadTripForMember(w, r)
	if trip == nil {
		return
	}

	expenses, err := a.store.ListExpensesByTrip(r.Context(), trip.ID)
	if err != nil {
		respondStoreError(w, "ListExpensesByTrip", err)
		return
	}
	if expenses == nil {
		expenses = []*models.Expense{}
	}
	respondJSON(w, http.StatusOK, expenses)
}

// loadExpenseInTrip fetches the expense and verifies it belongs to the trip.
// On failure it writes the error response and returns nil.
func (a *API) loadExpenseInTrip(w http.ResponseWriter, r *http.Request, trip *models.Trip) *models.Expense {
	expenseID := mux.Vars(r)["expense_id"]
	expense, err := a.store.GetExpense(r.Context(), expenseID)
	if err != nil {
		respondStoreError(w, "GetExpense", err)
		return nil
	}
	if expense.TripID != trip.ID {
		respondError(w, http.StatusNotFound, "expense not found in this trip")
		return nil
	}
	return expense
}

func (a *API) handleGetExpense(w http.ResponseWriter, r *http.Request) {
	trip := a.loadTripForMember(w, r)
	if trip == nil {
		return
	}
	expense := a.loadExpenseInTrip(w, r, trip)
	if expense == nil {
		return
	}
	respondJSON(w, http.StatusOK, expense)
}

func (a *API) handleUpdateExpense(w http.ResponseWriter, r *http.Request) {
	trip := a.loadTripForMember(w, r)
	if trip == nil {
		return
	}
	expense := a.loadExpenseInTrip(w, r, trip)
	if expense == nil {
		return
	}

	var req expenseRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validateExpense(&req, trip); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	expense.Description = req.Description
	expense.Amount = req.Amount
	expense.Currency = req.Currency
	expense.Category = req.Category
	expense.PaidBy = req.PaidBy
	expense.PlaceID = req.PlaceID
	expense.SplitBetween = req.SplitBetween
	// Edits fully recalculate shares from the new amount and participant set
	expense.Shares = settlement.EqualShares(req.Amount, req.SplitBetween)

	if err := a.store.UpdateExpense(r.Context(), expense); err != nil {
		respondStoreError(w, "UpdateExpense", err)
		return
	}

	respondJSON(w, http.StatusOK, expense)
}

func (a *API) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	trip := a.loadTripForMember(w, r)
	if trip == nil {
		return
	}
	expense := a.loadExpenseInTrip(w, r, trip)
	if expense == nil {
		return
	}

	if err := a.store.DeleteExpense(r.Context(), expense.ID); err != nil {
		respondStoreError(w, "DeleteExpense", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"deleted": expense.ID})
}
