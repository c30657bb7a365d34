package models

// Trip represents a journey being logged: places visited, expenses shared.
type Trip struct {
	// ID is the unique identifier for the trip (UUID format).
	ID string `json:"id"`

	// Name is the display name of the trip (e.g., "Kyoto 2026").
	Name string `json:"name"`

	// Description is an optional free-form note.
	Description string `json:"description,omitempty"`

	// OwnerID is the user who created the trip. Only the owner may delete
	// it.
	OwnerID string `json:"ownerId"`

	// Members are the participant identifiers on this trip: registered user
	// IDs or guest names. The owner is always a member.
	Members []string `json:"members"`

	// CreatedAt is the Unix timestamp when the trip was created.
	CreatedAt int64 `json:"createdAt"`
}

// Place represents a location logged within a trip.
type Place struct {
	// ID is the unique identifier for the place (UUID format).
	ID string `json:"id"`

	// TripID is the trip this place belongs to.
	TripID string `json:"tripId"`

	// Name is the display name of the place.
	Name string `json:"name"`

	// Lat and Lng are the coordinates, if known.
	Lat float64 `json:"lat,omitempty"`
	Lng float64 `json:"lng,omitempty"`

	// Notes is an optional free-form note.
	Notes string `json:"notes,omitempty"`

	// VisitedAt is the Unix timestamp of the visit, if recorded.
	VisitedAt int64 `json:"visitedAt,omitempty"`

	// CreatedAt is the Unix timestamp when the place was logged.
	CreatedAt int64 `json:"createdAt"`
}
