// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmehta/wayfarer/internal/models"
)

// ErrNotFound is returned when a requested entity does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the interface for Wayfarer's storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL,
// etc.) without changing the API layer.
type Store interface {
	// CreateUser persists a new user account.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail retrieves a user by email.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)

	// GetUserByID retrieves a user by ID.
	GetUserByID(ctx context.Context, id string) (*models.User, error)

	// CreateTrip persists a new trip and its member list. The trip's ID and
	// CreatedAt fields are populated by the store if unset.
	CreateTrip(ctx context.Context, trip *models.Trip) error

	// GetTrip retrieves a trip with its members.
	GetTrip(ctx context.Context, tripID string) (*models.Trip, error)

	// ListTripsByMember retrieves all trips the given participant belongs
	// to, newest first.
	ListTripsByMember(ctx context.Context, participant string) ([]*models.Trip, error)

	// UpdateTrip replaces a trip's name, description, and member list.
	UpdateTrip(ctx context.Context, trip *models.Trip) error

	// DeleteTrip removes a trip and everything logged under it.
	DeleteTrip(ctx context.Context, tripID string) error

	// AddTripMembers adds participants to a trip, skipping ones already
	// present.
	AddTripMembers(ctx context.Context, tripID string, members []string) error

	// CreatePlace persists a new place under a trip.
	CreatePlace(ctx context.Context, place *models.Place) error

	// ListPlacesByTrip retrieves all places logged for a trip.
	ListPlacesByTrip(ctx context.Context, tripID string) ([]*models.Place, error)

	// DeletePlace removes a place.
	DeletePlace(ctx context.Context, placeID string) error

	// CreateExpense persists a new expense with its stored shares.
	CreateExpense(ctx context.Context, expense *models.Expense) error

	// GetExpense retrieves an expense with its shares.
	GetExpense(ctx context.Context, expenseID string) (*models.Expense, error)

	// UpdateExpense replaces an existing expense and its shares.
	UpdateExpense(ctx context.Context, expense *models.Expense) error

	// DeleteExpense removes an expense and its shares.
	DeleteExpense(ctx context.Context, expenseID string) error

	// ListExpensesByTrip retrieves the full expense ledger for a trip,
	// oldest first.
	ListExpensesByTrip(ctx context.Context, tripID string) ([]*models.Expense, error)

	// Close releases any resources held by the store.
	Close() error
}
