package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmehta/wayfarer/internal/models"
	"github.com/mmehta/wayfarer/internal/storage"
)

// CreatePlace persists a new place under a trip.
func (s *SQLiteStore) CreatePlace(ctx context.Context, place *models.Place) error {
	if place.ID == "" {
		place.ID = uuid.New().String()
	}
	if place.CreatedAt == 0 {
		place.CreatedAt = time.Now().Unix()
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO places (id, trip_id, name, lat, lng, notes, visited_at, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		place.ID, place.TripID, place.Name, place.Lat, place.Lng,
		place.Notes, place.VisitedAt, place.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert place: %w", err)
	}

	return nil
}

// ListPlacesByTrip retrieves all places logged for a trip, in visit order.
func (s *SQLiteStore) ListPlacesByTrip(ctx context.Context, tripID string) ([]*models.Place, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, trip_id, name, lat, lng, notes, visited_at, created_at
		 FROM places WHERE trip_id = ?
		 ORDER BY visited_at, created_at`,
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list places: %w", err)
	}
	defer rows.Close()

	var places []*models.Place
	for rows.Next() {
		place := &models.Place{}
		if err := rows.Scan(&place.ID, &place.TripID, &place.Name, &place.Lat, &place.Lng,
			&place.Notes, &place.VisitedAt, &place.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan place: %w", err)
		}
		places = append(places, place)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate places: %w", err)
	}

	return places, nil
}

// DeletePlace removes a place by ID.
func (s *SQLiteStore) DeletePlace(ctx context.Context, placeID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM places WHERE id = ?", placeID)
	if err != nil {
		return fmt.Errorf("failed to delete place: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("place %s: %w", placeID, storage.ErrNotFound)
	}
	return nil
}
