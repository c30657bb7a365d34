// Package api exposes Wayfarer's REST API: auth, trips, places, expenses,
// and the settlement summary.
package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/cors"

	"github.com/mmehta/wayfarer/internal/auth"
	"github.com/mmehta/wayfarer/internal/storage"
)

// API wires the HTTP routes to storage and auth.
type API struct {
	router        *mux.Router
	store         storage.Store
	authenticator auth.Authenticator
	jwtManager    *auth.JWTManager
}

// New creates the API with all routes registered.
func New(store storage.Store, authenticator auth.Authenticator, jwtManager *auth.JWTManager) *API {
	a := &API{
		router:        mux.NewRouter(),
		store:         store,
		authenticator: authenticator,
		jwtManager:    jwtManager,
	}
	a.setupRoutes()
	return a
}

func (a *API) setupRoutes() {
	a.router.Use(requestLogging, metricsMiddleware)

	// Public endpoints
	a.router.HandleFunc("/healthz", a.handleHealth).Methods("GET")
	a.router.Handle("/metrics", promhttp.Handler()).Methods("GET")
	a.router.HandleFunc("/api/auth/register", a.handleRegister).Methods("POST")
	a.router.HandleFunc("/api/auth/login", a.handleLogin).Methods("POST")

	// Protected endpoints
	protected := a.router.PathPrefix("/api").Subrouter()
	protected.Use(a.requireAuth)

	protected.HandleFunc("/trips", a.handleCreateTrip).Methods("POST")
	protected.HandleFunc("/trips", a.handleListTrips).Methods("GET")
	protected.HandleFunc("/trips/{trip_id}", a.handleGetTrip).Methods("GET")
	protected.HandleFunc("/trips/{trip_id}", a.handleUpdateTrip).Methods("PUT")
	protected.HandleFunc("/trips/{trip_id}", a.handleDeleteTrip).Methods("DELETE")
	protected.HandleFunc("/trips/{trip_id}/members", a.handleAddMembers).Methods("POST")

	protected.HandleFunc("/trips/{trip_id}/places", a.handleCreatePlace).Methods("POST")
	protected.HandleFunc("/trips/{trip_id}/places", a.handleListPlaces).Methods("GET")
	protected.HandleFunc("/trips/{trip_id}/places/{place_id}", a.handleDeletePlace).Methods("DELETE")

	protected.HandleFunc("/trips/{trip_id}/expenses", a.handleCreateExpense).Methods("POST")
	protected.HandleFunc("/trips/{trip_id}/expenses", a.handleListExpenses).Methods("GET")
	protected.HandleFunc("/trips/{trip_id}/expenses/{expense_id}", a.handleGetExpense).Methods("GET")
	protected.HandleFunc("/trips/{trip_id}/expenses/{expense_id}", a.handleUpdateExpense).Methods("PUT")
	protected.HandleFunc("/trips/{trip_id}/expenses/{expense_id}", a.handleDeleteExpense).Methods("DELETE")

	protected.HandleFunc("/trips/{trip_id}/summary", a.handleTripSummary).Methods("GET")
}

// Handler returns the fully wrapped http.Handler, CORS included.
func (a *API) Handler() http.Handler {
	corsOptions := cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}
	return cors.New(corsOptions).Handler(a.router)
}

func (a *API) handleHealth(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
