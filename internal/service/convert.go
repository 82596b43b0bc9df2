package service

import (
	"context"
	"errors"
	"log/slog"

	"connectrpc.com/connect"

	"github.com/mmynk/roomsplit/internal/calculator"
	"github.com/mmynk/roomsplit/internal/events"
	"github.com/mmynk/roomsplit/internal/models"
	"github.com/mmynk/roomsplit/internal/storage"
	"github.com/mmynk/roomsplit/pkg/api"
)

func toAPIParticipant(p *models.Participant) *api.Participant {
	return &api.Participant{
		ID:        p.ID,
		Name:      p.Name,
		CreatedAt: p.CreatedAt,
	}
}

func toAPIExpense(e *models.Expense) *api.Expense {
	return &api.Expense{
		ID:        e.ID,
		PaidBy:    e.PaidBy,
		Amount:    e.Amount,
		Currency:  e.Currency,
		Involved:  e.Involved,
		Note:      e.Note,
		CreatedAt: e.CreatedAt,
	}
}

func toAPIDebt(d models.Debt) *api.Debt {
	return &api.Debt{
		From:    d.From,
		To:      d.To,
		Amount:  d.Amount,
		Removed: d.Removed,
	}
}

func toAPIBalance(b calculator.Balance) *api.Balance {
	return &api.Balance{
		ParticipantID: b.ParticipantID,
		TotalPaid:     b.TotalPaid,
		TotalShare:    b.TotalShare,
		Net:           b.Net,
	}
}

// storeError maps storage failures onto Connect codes.
func storeError(err error) *connect.Error {
	if errors.Is(err, storage.ErrNotFound) {
		return connect.NewError(connect.CodeNotFound, err)
	}
	return connect.NewError(connect.CodeInternal, err)
}

// publish sends a ledger event. Failures are logged and never fail the RPC.
func publish(ctx context.Context, publisher events.Publisher, kind events.Kind, entityID string) {
	if err := publisher.PublishLedgerChanged(ctx, events.NewLedgerEvent(kind, entityID)); err != nil {
		slog.Warn("Failed to publish ledger event", "kind", kind, "entity_id", entityID, "error", err)
	}
}
