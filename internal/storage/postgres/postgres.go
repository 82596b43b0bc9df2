// Package postgres provides a PostgreSQL-backed implementation of the storage.Store interface.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mmynk/roomsplit/internal/models"
	"github.com/mmynk/roomsplit/internal/storage"
)

// Ensure PostgresStore implements storage.Store
var _ storage.Store = (*PostgresStore)(nil)

const schema = `
CREATE TABLE IF NOT EXISTS participants (
    id TEXT PRIMARY KEY,
    name TEXT NOT NULL,
    created_at BIGINT NOT NULL
);

CREATE TABLE IF NOT EXISTS expenses (
    id TEXT PRIMARY KEY,
    seq BIGSERIAL,
    paid_by TEXT NOT NULL,
    amount DOUBLE PRECISION NOT NULL CHECK (amount > 0),
    currency TEXT NOT NULL,
    involved TEXT[] NOT NULL,
    note TEXT,
    created_at BIGINT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_expenses_created_at ON expenses(created_at);
`

// PostgresStore implements storage.Store using a pgx connection pool.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// New connects to databaseURL, sizes the pool and ensures the schema exists.
func New(ctx context.Context, databaseURL string, maxConns int) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse database url: %w", err)
	}
	if maxConns > 0 {
		cfg.MaxConns = int32(maxConns)
	}
	cfg.HealthCheckPeriod = 15 * time.Second
	cfg.ConnConfig.ConnectTimeout = 5 * time.Second

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create connection pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if _, err := pool.Exec(ctx, schema); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() error {
	s.pool.Close()
	return nil
}

// CreateParticipant persists a new participant.
func (s *PostgresStore) CreateParticipant(ctx context.Context, p *models.Participant) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	if p.CreatedAt == 0 {
		p.CreatedAt = time.Now().Unix()
	}

	_, err := s.pool.Exec(ctx,
		"INSERT INTO participants (id, name, created_at) VALUES ($1, $2, $3)",
		p.ID, p.Name, p.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert participant: %w", err)
	}
	return nil
}

// GetParticipant retrieves a participant by ID.
func (s *PostgresStore) GetParticipant(ctx context.Context, id string) (*models.Participant, error) {
	p := &models.Participant{}
	err := s.pool.QueryRow(ctx,
		"SELECT id, name, created_at FROM participants WHERE id = $1",
		id,
	).Scan(&p.ID, &p.Name, &p.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("participant %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get participant: %w", err)
	}
	return p, nil
}

// ListParticipants retrieves all participants, oldest first.
func (s *PostgresStore) ListParticipants(ctx context.Context) ([]models.Participant, error) {
	rows, err := s.pool.Query(ctx,
		"SELECT id, name, created_at FROM participants ORDER BY created_at, id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list participants: %w", err)
	}
	defer rows.Close()

	participants := []models.Participant{}
	for rows.Next() {
		var p models.Participant
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		participants = append(participants, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}
	return participants, nil
}

// DeleteParticipant removes a participant by ID.
func (s *PostgresStore) DeleteParticipant(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, "DELETE FROM participants WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete participant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("participant %s: %w", id, storage.ErrNotFound)
	}
	return nil
}

// CreateExpense persists a new expense.
func (s *PostgresStore) CreateExpense(ctx context.Context, e *models.Expense) error {
	if e.ID == "" {
		e.ID = uuid.New().String()
	}
	if e.CreatedAt == 0 {
		e.CreatedAt = time.Now().Unix()
	}

	var note *string
	if e.Note != "" {
		note = &e.Note
	}

	_, err := s.pool.Exec(ctx,
		`INSERT INTO expenses (id, paid_by, amount, currency, involved, note, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		e.ID, e.PaidBy, e.Amount, e.Currency, e.Involved, note, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}
	return nil
}

// GetExpense retrieves an expense by ID.
func (s *PostgresStore) GetExpense(ctx context.Context, id string) (*models.Expense, error) {
	row := s.pool.QueryRow(ctx,
		"SELECT id, paid_by, amount, currency, involved, note, created_at FROM expenses WHERE id = $1",
		id,
	)
	e, err := scanExpense(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("expense %s: %w", id, storage.ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get expense: %w", err)
	}
	return &e, nil
}

// ListExpenses retrieves all expenses, newest first.
func (s *PostgresStore) ListExpenses(ctx context.Context) ([]models.Expense, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, paid_by, amount, currency, involved, note, created_at
		 FROM expenses ORDER BY created_at DESC, seq DESC`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list expenses: %w", err)
	}
	defer rows.Close()

	expenses := []models.Expense{}
	for rows.Next() {
		e, err := scanExpense(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}
	return expenses, nil
}

// DeleteExpense removes an expense by ID.
func (s *PostgresStore) DeleteExpense(ctx context.Context, id string) error {
	tag, err := s.pool.Exec(ctx, "DELETE FROM expenses WHERE id = $1", id)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("expense %s: %w", id, storage.ErrNotFound)
	}
	return nil
}

// DeleteAllExpenses removes every expense.
func (s *PostgresStore) DeleteAllExpenses(ctx context.Context) (int64, error) {
	tag, err := s.pool.Exec(ctx, "DELETE FROM expenses")
	if err != nil {
		return 0, fmt.Errorf("failed to delete expenses: %w", err)
	}
	return tag.RowsAffected(), nil
}

func scanExpense(row pgx.Row) (models.Expense, error) {
	var e models.Expense
	var note *string
	if err := row.Scan(&e.ID, &e.PaidBy, &e.Amount, &e.Currency, &e.Involved, &note, &e.CreatedAt); err != nil {
		return models.Expense{}, err
	}
	if note != nil {
		e.Note = *note
	}
	return e, nil
}
