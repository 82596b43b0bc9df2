package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mmynk/roomsplit/internal/models"
	"github.com/mmynk/roomsplit/internal/storage"
)

// CreateExpense persists a new expense and its involved participants.
func (s *SQLiteStore) CreateExpense(ctx context.Context, e *models.Expense) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.CreatedAt == 0 {
		e.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var note interface{} = nil
	if e.Note != "" {
		note = e.Note
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO expenses (id, paid_by, amount, currency, note, created_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.PaidBy, e.Amount, e.Currency, note, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	for i, participantID := range e.Involved {
		_, err = tx.ExecContext(ctx,
			"INSERT INTO expense_involved (expense_id, participant_id, position) VALUES (?, ?, ?)",
			e.ID, participantID, i,
		)
		if err != nil {
			return fmt.Errorf("failed to insert involved participant: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetExpense retrieves an expense by ID, including its involved participants.
func (s *SQLiteStore) GetExpense(ctx context.Context, id string) (*models.Expense, error) {
	e := &models.Expense{}
	var note sql.NullString
	err := s.db.QueryRowContext(ctx,
		"SELECT id, paid_by, amount, currency, note, created_at FROM expenses WHERE id = ?",
		id,
	).Scan(&e.ID, &e.PaidBy, &e.Amount, &e.Currency, &note, &e.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("expense %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	if note.Valid {
		e.Note = note.String
	}

	rows, err := s.db.QueryContext(ctx,
		"SELECT participant_id FROM expense_involved WHERE expense_id = ? ORDER BY position",
		id,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get involved participants: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var participantID string
		if err := rows.Scan(&participantID); err != nil {
			return nil, fmt.Errorf("failed to scan involved participant: %w", err)
		}
		e.Involved = append(e.Involved, participantID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate involved participants: %w", err)
	}
	return e, nil
}

// ListExpenses retrieves all expenses, newest first.
func (s *SQLiteStore) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, paid_by, amount, currency, note, created_at
		 FROM expenses ORDER BY created_at DESC, rowid DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	expenses := []models.Expense{}
	index := make(map[string]int)
	for rows.Next() {
		var e models.Expense
		var note sql.NullString
		if err := rows.Scan(&e.ID, &e.PaidBy, &e.Amount, &e.Currency, &note, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		if note.Valid {
			e.Note = note.String
		}
		index[e.ID] = len(expenses)
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	involvedRows, err := s.db.QueryContext(ctx,
		"SELECT expense_id, participant_id FROM expense_involved ORDER BY expense_id, position",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list involved participants: %w", err)
	}
	defer involvedRows.Close()

	for involvedRows.Next() {
		var expenseID, participantID string
		if err := involvedRows.Scan(&expenseID, &participantID); err != nil {
			return nil, fmt.Errorf("failed to scan involved participant: %w", err)
		}
		if i, ok := index[expenseID]; ok {
			expenses[i].Involved = append(expenses[i].Involved, participantID)
		}
	}
	if err := involvedRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate involved participants: %w", err)
	}

	return expenses, nil
}

// DeleteExpense removes an expense by ID.
func (s *SQLiteStore) DeleteExpense(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted expense: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("expense %s: %w", id, storage.ErrNotFound)
	}
	return nil
}

// DeleteAllExpenses removes every expense in a single transaction.
func (s *SQLiteStore) DeleteAllExpenses(ctx context.Context) (int64, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, "DELETE FROM expense_involved"); err != nil {
		return 0, fmt.Errorf("failed to delete involved participants: %w", err)
	}
	res, err := tx.ExecContext(ctx, "DELETE FROM expenses")
	if err != nil {
		return 0, fmt.Errorf("failed to delete expenses: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count deleted expenses: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return n, nil
}
