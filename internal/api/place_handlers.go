package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mmehta/wayfarer/internal/models"
)

type placeRequest struct {
	Name      string  `json:"name"`
	Lat       float64 `json:"lat"`
	Lng       float64 `json:"lng"`
	Notes     string  `json:"notes"`
	VisitedAt int64   `json:"visitedAt"`
}

func (a *API) handleCreatePlace(w http.ResponseWriter, r *http.Request) {
	trip := a.loadTripForMember(w, r)
	if trip == nil {
		return
	}

	var req placeRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}

	place := &models.Place{
		TripID:    trip.ID,
		Name:      req.Name,
		Lat:       req.Lat,
		Lng:       req.Lng,
		Notes:     req.Notes,
		VisitedAt: req.VisitedAt,
	}

	if err := a.store.CreatePlace(r.Context(), place); err != nil {
		respondStoreError(w, "CreatePlace", err)
		return
	}

	respondJSON(w, http.StatusCreated, place)
}

func (a *API) handleListPlaces(w http.ResponseWriter, r *http.Request) {
	trip := a.loadTripForMember(w, r)
	if trip == nil {
		return
	}

	places, err := a.store.ListPlacesByTrip(r.Context(), trip.ID)
	if err != nil {
		respondStoreError(w, "ListPlacesByTrip", err)
		return
	}
	if places == nil {
		places = []*models.Place{}
	}
	respondJSON(w, http.StatusOK, places)
}

func (a *API) handleDeletePlace(w http.ResponseWriter, r *http.Request) {
	trip := a.loadTripForMember(w, r)
	if trip == nil {
		return
	}

	placeID := mux.Vars(r)["place_id"]
	if err := a.store.DeletePlace(r.Context(), placeID); err != nil {
		respondStoreError(w, "DeletePlace", err)
		return
	}

	respondJSON(w, http.StatusOK, map[string]string{"deleted": placeID})
}
