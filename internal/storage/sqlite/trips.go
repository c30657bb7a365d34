package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmehta/wayfarer/internal/models"
	"github.com/mmehta/wayfarer/internal/storage"
)

// CreateTrip persists a new trip and its member list.
func (s *SQLiteStore) CreateTrip(ctx context.Context, trip *models.Trip) error {
	if trip.ID == "" {
		trip.ID = uuid.New().String()
	}
	if trip.CreatedAt == 0 {
		trip.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO trips (id, name, description, owner_id, created_at) VALUES (?, ?, ?, ?, ?)",
		trip.ID, trip.Name, trip.Description, trip.OwnerID, trip.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert trip: %w", err)
	}

	for _, member := range trip.Members {
		_, err = tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO trip_members (trip_id, participant) VALUES (?, ?)",
			trip.ID, member,
		)
		if err != nil {
			return fmt.Errorf("failed to insert trip member: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetTrip retrieves a trip by ID, including its members.
func (s *SQLiteStore) GetTrip(ctx context.Context, tripID string) (*models.Trip, error) {
	trip := &models.Trip{}
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name, description, owner_id, created_at FROM trips WHERE id = ?",
		tripID,
	).Scan(&trip.ID, &trip.Name, &trip.Description, &trip.OwnerID, &trip.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("trip %s: %w", tripID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get trip: %w", err)
	}

	members, err := s.tripMembers(ctx, tripID)
	if err != nil {
		return nil, err
	}
	trip.Members = members

	return trip, nil
}

// ListTripsByMember retrieves all trips the participant belongs to, newest
// first.
func (s *SQLiteStore) ListTripsByMember(ctx context.Context, participant string) ([]*models.Trip, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT t.id, t.name, t.description, t.owner_id, t.created_at
		 FROM trips t
		 JOIN trip_members m ON m.trip_id = t.id
		 WHERE m.participant = ?
		 ORDER BY t.created_at DESC`,
		participant,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list trips: %w", err)
	}
	defer rows.Close()

	var trips []*models.Trip
	for rows.Next() {
		trip := &models.Trip{}
		if err := rows.Scan(&trip.ID, &trip.Name, &trip.Description, &trip.OwnerID, &trip.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan trip: %w", err)
		}
		trips = append(trips, trip)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate trips: %w", err)
	}

	for _, trip := range trips {
		members, err := s.tripMembers(ctx, trip.ID)
		if err != nil {
			return nil, err
		}
		trip.Members = members
	}

	return trips, nil
}

// UpdateTrip replaces a trip's name, description, and member list.
func (s *SQLiteStore) UpdateTrip(ctx context.Context, trip *models.Trip) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"UPDATE trips SET name = ?, description = ? WHERE id = ?",
		trip.Name, trip.Description, trip.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update trip: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("trip %s: %w", trip.ID, storage.ErrNotFound)
	}

	// Replace the member list wholesale
	if _, err := tx.ExecContext(ctx, "DELETE FROM trip_members WHERE trip_id = ?", trip.ID); err != nil {
		return fmt.Errorf("failed to clear trip members: %w", err)
	}
	for _, member := range trip.Members {
		_, err = tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO trip_members (trip_id, participant) VALUES (?, ?)",
			trip.ID, member,
		)
		if err != nil {
			return fmt.Errorf("failed to insert trip member: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// DeleteTrip removes a trip; places, expenses, and members cascade.
func (s *SQLiteStore) DeleteTrip(ctx context.Context, tripID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM trips WHERE id = ?", tripID)
	if err != nil {
		return fmt.Errorf("failed to delete trip: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("trip %s: %w", tripID, storage.ErrNotFound)
	}
	return nil
}

// AddTripMembers adds participants to a trip, skipping existing ones.
func (s *SQLiteStore) AddTripMembers(ctx context.Context, tripID string, members []string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	for _, member := range members {
		_, err = tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO trip_members (trip_id, participant) VALUES (?, ?)",
			tripID, member,
		)
		if err != nil {
			return fmt.Errorf("failed to add trip member: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (s *SQLiteStore) tripMembers(ctx context.Context, tripID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT participant FROM trip_members WHERE trip_id = ? ORDER BY participant",
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get trip members: %w", err)
	}
	defer rows.Close()

	var members []string
	for rows.Next() {
		var member string
		if err := rows.Scan(&member); err != nil {
			return nil, fmt.Errorf("failed to scan trip member: %w", err)
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate trip members: %w", err)
	}

	return members, nil
}
