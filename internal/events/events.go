// Package events notifies other processes that the ledger changed, so views
// showing debts can refresh.
package events

import (
	"context"
	"encoding/json"
	"time"
)

// Kind names what changed in the ledger.
type Kind string

const (
	ParticipantAdded   Kind = "participant.added"
	ParticipantRemoved Kind = "participant.removed"
	ExpenseAdded       Kind = "expense.added"
	ExpenseDeleted     Kind = "expense.deleted"
	ExpensesCleared    Kind = "expenses.cleared"
)

// LedgerEvent is a lightweight change notification. Consumers refetch the
// ledger rather than relying on the payload.
type LedgerEvent struct {
	Kind      Kind      `json:"kind"`
	EntityID  string    `json:"entity_id,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// NewLedgerEvent creates an event stamped with the current time.
func NewLedgerEvent(kind Kind, entityID string) LedgerEvent {
	return LedgerEvent{
		Kind:      kind,
		EntityID:  entityID,
		Timestamp: time.Now().UTC(),
	}
}

// ToJSON converts the event to JSON bytes.
func (e LedgerEvent) ToJSON() ([]byte, error) {
	return json.Marshal(e)
}

// Publisher delivers ledger events.
type Publisher interface {
	PublishLedgerChanged(ctx context.Context, event LedgerEvent) error
	Close() error
}

// NopPublisher discards every event. Used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishLedgerChanged(context.Context, LedgerEvent) error { return nil }

func (NopPublisher) Close() error { return nil }
