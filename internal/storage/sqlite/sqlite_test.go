package sqlite

import (
	"context"
	"errors"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/mmehta/wayfarer/internal/models"
	"github.com/mmehta/wayfarer/internal/settlement"
	"github.com/mmehta/wayfarer/internal/storage"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "wayfarer-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func TestSQLiteStore(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateTrip generates ID and stores members", func(t *testing.T) {
		trip := &models.Trip{
			Name:    "Kyoto 2026",
			OwnerID: "user-1",
			Members: []string{"user-1", "Bob"},
		}

		if err := store.CreateTrip(ctx, trip); err != nil {
			t.Fatalf("CreateTrip failed: %v", err)
		}
		if trip.ID == "" {
			t.Error("Expected trip ID to be generated")
		}
		if trip.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}

		retrieved, err := store.GetTrip(ctx, trip.ID)
		if err != nil {
			t.Fatalf("GetTrip failed: %v", err)
		}
		if retrieved.Name != trip.Name {
			t.Errorf("Name mismatch: got %s, want %s", retrieved.Name, trip.Name)
		}
		if len(retrieved.Members) != 2 {
			t.Errorf("Members = %v, want 2 entries", retrieved.Members)
		}
	})

	t.Run("GetTrip returns ErrNotFound for unknown ID", func(t *testing.T) {
		_, err := store.GetTrip(ctx, "no-such-trip")
		if !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected ErrNotFound, got %v", err)
		}
	})

	t.Run("ListTripsByMember", func(t *testing.T) {
		trip := &models.Trip{
			Name:    "Lisbon",
			OwnerID: "user-2",
			Members: []string{"user-2", "Carol"},
		}
		if err := store.CreateTrip(ctx, trip); err != nil {
			t.Fatalf("CreateTrip failed: %v", err)
		}

		trips, err := store.ListTripsByMember(ctx, "Carol")
		if err != nil {
			t.Fatalf("ListTripsByMember failed: %v", err)
		}
		if len(trips) != 1 || trips[0].ID != trip.ID {
			t.Errorf("ListTripsByMember = %v, want the Lisbon trip", trips)
		}
	})

	t.Run("AddTripMembers skips duplicates", func(t *testing.T) {
		trip := &models.Trip{Name: "Andes", OwnerID: "user-3", Members: []string{"user-3"}}
		if err := store.CreateTrip(ctx, trip); err != nil {
			t.Fatalf("CreateTrip failed: %v", err)
		}

		if err := store.AddTripMembers(ctx, trip.ID, []string{"user-3", "Dana", "Dana"}); err != nil {
			t.Fatalf("AddTripMembers failed: %v", err)
		}

		retrieved, err := store.GetTrip(ctx, trip.ID)
		if err != nil {
			t.Fatalf("GetTrip failed: %v", err)
		}
		if len(retrieved.Members) != 2 {
			t.Errorf("Members = %v, want [Dana user-3]", retrieved.Members)
		}
	})

	t.Run("Expense roundtrip preserves shares", func(t *testing.T) {
		trip := &models.Trip{Name: "Rome", OwnerID: "alice", Members: []string{"alice", "bob", "carol"}}
		if err := store.CreateTrip(ctx, trip); err != nil {
			t.Fatalf("CreateTrip failed: %v", err)
		}

		expense := &models.Expense{
			TripID:       trip.ID,
			Description:  "Dinner",
			Amount:       90.0,
			Currency:     "EUR",
			Category:     "food",
			PaidBy:       "alice",
			SplitBetween: []string{"alice", "bob", "carol"},
			Shares:       settlement.EqualShares(90.0, []string{"alice", "bob", "carol"}),
		}
		if err := store.CreateExpense(ctx, expense); err != nil {
			t.Fatalf("CreateExpense failed: %v", err)
		}
		if expense.ID == "" {
			t.Error("Expected expense ID to be generated")
		}

		retrieved, err := store.GetExpense(ctx, expense.ID)
		if err != nil {
			t.Fatalf("GetExpense failed: %v", err)
		}
		if retrieved.Amount != 90.0 || retrieved.PaidBy != "alice" {
			t.Errorf("Expense mismatch: got %+v", retrieved)
		}
		if len(retrieved.Shares) != 3 {
			t.Fatalf("Shares = %v, want 3 entries", retrieved.Shares)
		}
		for p, share := range retrieved.Shares {
			if math.Abs(share-30.0) > 1e-9 {
				t.Errorf("share[%s] = %v, want 30", p, share)
			}
		}
	})

	t.Run("UpdateExpense replaces shares wholesale", func(t *testing.T) {
		trip := &models.Trip{Name: "Oslo", OwnerID: "alice", Members: []string{"alice", "bob"}}
		if err := store.CreateTrip(ctx, trip); err != nil {
			t.Fatalf("CreateTrip failed: %v", err)
		}

		expense := &models.Expense{
			TripID:       trip.ID,
			Description:  "Museum",
			Amount:       40.0,
			Currency:     "NOK",
			PaidBy:       "alice",
			SplitBetween: []string{"alice", "bob"},
			Shares:       settlement.EqualShares(40.0, []string{"alice", "bob"}),
		}
		if err := store.CreateExpense(ctx, expense); err != nil {
			t.Fatalf("CreateExpense failed: %v", err)
		}

		expense.Amount = 60.0
		expense.SplitBetween = []string{"alice", "bob", "carol"}
		expense.Shares = settlement.EqualShares(60.0, expense.SplitBetween)
		if err := store.UpdateExpense(ctx, expense); err != nil {
			t.Fatalf("UpdateExpense failed: %v", err)
		}

		retrieved, err := store.GetExpense(ctx, expense.ID)
		if err != nil {
			t.Fatalf("GetExpense failed: %v", err)
		}
		if retrieved.Amount != 60.0 {
			t.Errorf("Amount = %v, want 60", retrieved.Amount)
		}
		if len(retrieved.Shares) != 3 {
			t.Fatalf("Shares = %v, want 3 entries", retrieved.Shares)
		}
		if math.Abs(retrieved.Shares["carol"]-20.0) > 1e-9 {
			t.Errorf("carol share = %v, want 20", retrieved.Shares["carol"])
		}
	})

	t.Run("DeleteTrip cascades to expenses and places", func(t *testing.T) {
		trip := &models.Trip{Name: "Doomed", OwnerID: "alice", Members: []string{"alice"}}
		if err := store.CreateTrip(ctx, trip); err != nil {
			t.Fatalf("CreateTrip failed: %v", err)
		}

		place := &models.Place{TripID: trip.ID, Name: "Castle"}
		if err := store.CreatePlace(ctx, place); err != nil {
			t.Fatalf("CreatePlace failed: %v", err)
		}
		expense := &models.Expense{
			TripID:       trip.ID,
			Description:  "Tickets",
			Amount:       10.0,
			Currency:     "EUR",
			PaidBy:       "alice",
			SplitBetween: []string{"alice"},
			Shares:       map[string]float64{"alice": 10.0},
		}
		if err := store.CreateExpense(ctx, expense); err != nil {
			t.Fatalf("CreateExpense failed: %v", err)
		}

		if err := store.DeleteTrip(ctx, trip.ID); err != nil {
			t.Fatalf("DeleteTrip failed: %v", err)
		}

		if _, err := store.GetExpense(ctx, expense.ID); !errors.Is(err, storage.ErrNotFound) {
			t.Errorf("Expected expense to be gone, got %v", err)
		}
		places, err := store.ListPlacesByTrip(ctx, trip.ID)
		if err != nil {
			t.Fatalf("ListPlacesByTrip failed: %v", err)
		}
		if len(places) != 0 {
			t.Errorf("Expected no places after trip delete, got %d", len(places))
		}
	})

	t.Run("User roundtrip by email and ID", func(t *testing.T) {
		user := models.NewUser("ana@example.com", "Ana", "hash")
		if err := store.CreateUser(ctx, user); err != nil {
			t.Fatalf("CreateUser failed: %v", err)
		}

		byEmail, err := store.GetUserByEmail(ctx, "ana@example.com")
		if err != nil {
			t.Fatalf("GetUserByEmail failed: %v", err)
		}
		if byEmail.ID != user.ID {
			t.Errorf("ID mismatch: got %s, want %s", byEmail.ID, user.ID)
		}

		byID, err := store.GetUserByID(ctx, user.ID)
		if err != nil {
			t.Fatalf("GetUserByID failed: %v", err)
		}
		if byID.Email != user.Email {
			t.Errorf("Email mismatch: got %s, want %s", byID.Email, user.Email)
		}
	})
}
