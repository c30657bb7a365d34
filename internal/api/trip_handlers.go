package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mmehta/wayfarer/internal/models"
)

type tripRequest struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Members     []string `json:"members"`
}

// isParticipant checks if the identifier is in the participants list.
func isParticipant(id string, participants []string) bool {
	for _, p := range participants {
		if p == id {
			return true
		}
	}
	return false
}

// loadTripForMember fetches the trip and verifies the authenticated user is
// a member. On failure it writes the error response and returns nil.
func (a *API) loadTripForMember(w http.ResponseWriter, r *http.Request) *models.Trip {
	tripID := mux.Vars(r)["trip_id"]
	trip, err := a.store.GetTrip(r.Context(), tripID)
	if err != nil {
		respondStoreError(w, "GetTrip", err)
		return nil
	}

	if !isParticipant(GetUserID(r.Context()), trip.Members) {
		respondError(w, http.StatusForbidden, "you must be a trip member")
		return nil
	}

	return trip
}

func (a *API) handleCreateTrip(w http.ResponseWriter, r *http.Request) {
	userID := GetUserID(r.Context())

	var req tripRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	// The creator is always a member
	members := req.Members
	if !isParticipant(userID, members) {
		members = append(members, userID)
	}

	trip := &models.Trip{
		Name:        req.Name,
		Description: req.Description,
		OwnerID:     userID,
		Members:     members,
	}

	if err := a.store.CreateTrip(r.Context(), trip); err != nil {
		respondStoreError(w, "CreateTrip", err)
		return
	}

	respondJSON(w, http.StatusCreated, trip)
}

func (a *API) handleListTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := a.store.ListTripsByMember(r.Context(), GetUserID(r.Context()))
	if err != nil {
		respondStoreError(w, "ListTripsByMember", err)
		return
	}
	if trips == nil {
		trips = []*models.Trip{}
	}
	respondJSON(w, http.StatusOK, trips)
}

func (a *API) handleGetTrip(w http.ResponseWriter, r *http.Request) {
	trip := a.loadTripForMember(w, r)
	if trip == nil {
		return
	}
	respondJSON(w, http.StatusOK, trip)
}

func (a *API) handleUpdateTrip(w http.ResponseWriter, r *http.Request) {
	trip := a.loadTripForMember(w, r)
	if trip == nil {
		return
	}

	var req tripRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	trip.Name = req.Name
	trip.Description = req.Description
	if len(req.Members) > 0 {
		// The owner can never be removed
		trip.Members = req.Members
		if !isParticipant(trip.OwnerID, trip.Members) {
			trip.Members = append(trip.Members, trip.OwnerID)
		}
	}

	if err := a.store.UpdateTrip(r.Context(), trip); err != nil {
		respondStoreError(w, "UpdateTrip", err)
		return
	}

	respondJSON(w, http.StatusOK, trip)
}

func (a *API) handleDeleteTrip(w http.ResponseWriter, r *http.Request) {
	trip := a.loadTripForMember(w, r)
	if trip == nil {
		return
	}

	if trip.OwnerID != GetUserID(r.Context()) {
		respondError(w, http.StatusForbidden, "only the trip owner can delete it")
		return
	}

	if err := a.store.DeleteTrip(r.Context(), trip.ID); err != nil {
		respondStoreError(w, "DeleteTrip", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"deleted": trip.ID})
}

func (a *API) handleAddMembers(w http.ResponseWriter, r *http.Request) {
	trip := a.loadTripForMember(w, r)
	if trip == nil {
		return
	}

	var req struct {
		Members []string `json:"members"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(req.Members) == 0 {
		respondError(w, http.StatusBadRequest, "members is required")
		return
	}
	for _, m := range req.Members {
		if m == "" {
			respondError(w, http.StatusBadRequest, "member names must be non-empty")
			return
		}
	}

	if err := a.store.AddTripMembers(r.Context(), trip.ID, req.Members); err != nil {
		respondStoreError(w, "AddTripMembers", err)
		return
	}

	updated, err := a.store.GetTrip(r.Context(), trip.ID)
	if err != nil {
		respondStoreError(w, "GetTrip", err)
		return
	}

	respondJSON(w, http.StatusOK, updated)
}
