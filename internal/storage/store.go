// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"github.com/mmynk/roomsplit/internal/models"
)

// ErrNotFound is returned when a participant or expense does not exist.
var ErrNotFound = errors.New("not found")

// Store defines the interface for participant and expense storage.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL)
// without changing the service layer.
type Store interface {
	// CreateParticipant persists a new participant.
	// The ID and CreatedAt fields are populated by the store when empty.
	CreateParticipant(ctx context.Context, p *models.Participant) error

	// GetParticipant retrieves a participant by ID.
	// Returns ErrNotFound if the participant does not exist.
	GetParticipant(ctx context.Context, id string) (*models.Participant, error)

	// ListParticipants returns all participants, oldest first.
	ListParticipants(ctx context.Context) ([]models.Participant, error)

	// DeleteParticipant removes a participant. Expenses referencing the
	// participant are kept.
	DeleteParticipant(ctx context.Context, id string) error

	// CreateExpense persists a new expense.
	// The ID and CreatedAt fields are populated by the store when empty.
	CreateExpense(ctx context.Context, e *models.Expense) error

	// GetExpense retrieves an expense by ID.
	GetExpense(ctx context.Context, id string) (*models.Expense, error)

	// ListExpenses returns all expenses, newest first.
	ListExpenses(ctx context.Context) ([]models.Expense, error)

	// DeleteExpense removes one expense.
	DeleteExpense(ctx context.Context, id string) error

	// DeleteAllExpenses removes every expense and returns how many were deleted.
	DeleteAllExpenses(ctx context.Context) (int64, error)

	// Close releases any resources held by the store.
	Close() error
}
