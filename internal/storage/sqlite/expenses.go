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

// CreateExpense persists a new expense with its stored shares.
func (s *SQLiteStore) CreateExpense(ctx context.Context, expense *models.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	now := time.Now().Unix()
	if expense.CreatedAt == 0 {
		expense.CreatedAt = now
	}
	if expense.UpdatedAt == 0 {
		expense.UpdatedAt = now
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var placeID interface{}
	if expense.PlaceID != "" {
		placeID = expense.PlaceID
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO expenses (id, trip_id, description, amount, currency, category, paid_by, place_id, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		expense.ID, expense.TripID, expense.Description, expense.Amount, expense.Currency,
		expense.Category, expense.PaidBy, placeID, expense.CreatedAt, expense.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	if err := insertSplits(ctx, tx, expense); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// GetExpense retrieves an expense by ID, including its shares.
func (s *SQLiteStore) GetExpense(ctx context.Context, expenseID string) (*models.Expense, error) {
	expense := &models.Expense{}
	var placeID sql.NullString

	err := s.db.QueryRowContext(ctx,
		`SELECT id, trip_id, description, amount, currency, category, paid_by, place_id, created_at, updated_at
		 FROM expenses WHERE id = ?`,
		expenseID,
	).Scan(&expense.ID, &expense.TripID, &expense.Description, &expense.Amount, &expense.Currency,
		&expense.Category, &expense.PaidBy, &placeID, &expense.CreatedAt, &expense.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("expense %s: %w", expenseID, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	if placeID.Valid {
		expense.PlaceID = placeID.String
	}

	if err := s.loadSplits(ctx, expense); err != nil {
		return nil, err
	}

	return expense, nil
}

// UpdateExpense replaces an existing expense and its shares.
func (s *SQLiteStore) UpdateExpense(ctx context.Context, expense *models.Expense) error {
	expense.UpdatedAt = time.Now().Unix()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var placeID interface{}
	if expense.PlaceID != "" {
		placeID = expense.PlaceID
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE expenses
		 SET description = ?, amount = ?, currency = ?, category = ?, paid_by = ?, place_id = ?, updated_at = ?
		 WHERE id = ?`,
		expense.Description, expense.Amount, expense.Currency, expense.Category,
		expense.PaidBy, placeID, expense.UpdatedAt, expense.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check update result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("expense %s: %w", expense.ID, storage.ErrNotFound)
	}

	// Shares are fully recalculated on edit, so replace them wholesale
	if _, err := tx.ExecContext(ctx, "DELETE FROM expense_splits WHERE expense_id = ?", expense.ID); err != nil {
		return fmt.Errorf("failed to clear expense splits: %w", err)
	}
	if err := insertSplits(ctx, tx, expense); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// DeleteExpense removes an expense; its splits cascade.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, expenseID string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", expenseID)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("expense %s: %w", expenseID, storage.ErrNotFound)
	}
	return nil
}

// ListExpensesByTrip retrieves the full expense ledger for a trip, oldest
// first.
func (s *SQLiteStore) ListExpensesByTrip(ctx context.Context, tripID string) ([]*models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, trip_id, description, amount, currency, category, paid_by, place_id, created_at, updated_at
		 FROM expenses WHERE trip_id = ?
		 ORDER BY created_at, id`,
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	var expenses []*models.Expense
	for rows.Next() {
		expense := &models.Expense{}
		var placeID sql.NullString
		if err := rows.Scan(&expense.ID, &expense.TripID, &expense.Description, &expense.Amount,
			&expense.Currency, &expense.Category, &expense.PaidBy, &placeID,
			&expense.CreatedAt, &expense.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		if placeID.Valid {
			expense.PlaceID = placeID.String
		}
		expenses = append(expenses, expense)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	for _, expense := range expenses {
		if err := s.loadSplits(ctx, expense); err != nil {
			return nil, err
		}
	}

	return expenses, nil
}

func insertSplits(ctx context.Context, tx *sql.Tx, expense *models.Expense) error {
	for participant, share := range expense.Shares {
		_, err := tx.ExecContext(ctx,
			"INSERT INTO expense_splits (expense_id, participant, share) VALUES (?, ?, ?)",
			expense.ID, participant, share,
		)
		if err != nil {
			return fmt.Errorf("failed to insert expense split: %w", err)
		}
	}
	return nil
}

func (s *SQLiteStore) loadSplits(ctx context.Context, expense *models.Expense) error {
	rows, err := s.db.QueryContext(ctx,
		"SELECT participant, share FROM expense_splits WHERE expense_id = ? ORDER BY participant",
		expense.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to get expense splits: %w", err)
	}
	defer rows.Close()

	expense.Shares = make(map[string]float64)
	expense.SplitBetween = expense.SplitBetween[:0]
	for rows.Next() {
		var participant string
		var share float64
		if err := rows.Scan(&participant, &share); err != nil {
			return fmt.Errorf("failed to scan expense split: %w", err)
		}
		expense.Shares[participant] = share
		expense.SplitBetween = append(expense.SplitBetween, participant)
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("failed to iterate expense splits: %w", err)
	}

	return nil
}
