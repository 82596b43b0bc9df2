package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"connectrpc.com/connect"

	"github.com/mmynk/roomsplit/internal/calculator"
	"github.com/mmynk/roomsplit/internal/events"
	"github.com/mmynk/roomsplit/internal/models"
	"github.com/mmynk/roomsplit/internal/storage"
	"github.com/mmynk/roomsplit/pkg/api"
	"github.com/mmynk/roomsplit/pkg/api/apiconnect"
)

// ErrUnknownParticipant is returned when an expense references an id that is
// not a current participant.
var ErrUnknownParticipant = errors.New("unknown participant")

// ExpenseService implements the Connect ExpenseService
type ExpenseService struct {
	apiconnect.UnimplementedExpenseServiceHandler
	store     storage.Store
	publisher events.Publisher
	currency  string
}

// NewExpenseService creates a new ExpenseService recording expenses in
// currency. A nil publisher disables ledger events.
func NewExpenseService(store storage.Store, publisher events.Publisher, currency string) *ExpenseService {
	if publisher == nil {
		publisher = events.NopPublisher{}
	}
	return &ExpenseService{
		store:     store,
		publisher: publisher,
		currency:  strings.ToUpper(currency),
	}
}

// AddExpense validates and records a new expense.
func (s *ExpenseService) AddExpense(ctx context.Context, req *connect.Request[api.AddExpenseRequest]) (*connect.Response[api.AddExpenseResponse], error) {
	slog.Info("AddExpense request received",
		"paid_by", req.Msg.PaidBy,
		"amount", req.Msg.Amount,
		"involved_count", len(req.Msg.Involved),
	)

	currency := strings.ToUpper(strings.TrimSpace(req.Msg.Currency))
	if currency == "" {
		currency = s.currency
	}
	if currency != s.currency {
		return nil, connect.NewError(connect.CodeInvalidArgument,
			fmt.Errorf("%w: got %s, want %s", calculator.ErrCurrencyMismatch, currency, s.currency))
	}

	expense := &models.Expense{
		PaidBy:   strings.TrimSpace(req.Msg.PaidBy),
		Amount:   req.Msg.Amount,
		Currency: currency,
		Involved: calculator.UniqueIDs(req.Msg.Involved),
		Note:     strings.TrimSpace(req.Msg.Note),
	}
	if err := calculator.ValidateExpense(*expense); err != nil {
		slog.Warn("AddExpense rejected", "error", err)
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	if err := s.checkKnown(ctx, expense); err != nil {
		var connectErr *connect.Error
		if errors.As(err, &connectErr) {
			return nil, connectErr
		}
		return nil, connect.NewError(connect.CodeInvalidArgument, err)
	}

	if err := s.store.CreateExpense(ctx, expense); err != nil {
		slog.Error("AddExpense failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Expense added", "expense_id", expense.ID)
	publish(ctx, s.publisher, events.ExpenseAdded, expense.ID)

	return connect.NewResponse(&api.AddExpenseResponse{
		Expense: toAPIExpense(expense),
	}), nil
}

// checkKnown verifies that the payer and every involved id are current participants.
func (s *ExpenseService) checkKnown(ctx context.Context, e *models.Expense) error {
	participants, err := s.store.ListParticipants(ctx)
	if err != nil {
		slog.Error("Failed to load participants", "error", err)
		return connect.NewError(connect.CodeInternal, err)
	}

	known := make(map[string]bool, len(participants))
	for _, p := range participants {
		known[p.ID] = true
	}

	if !known[e.PaidBy] {
		return fmt.Errorf("%w: payer %q", ErrUnknownParticipant, e.PaidBy)
	}
	for _, id := range e.Involved {
		if !known[id] {
			return fmt.Errorf("%w: %q", ErrUnknownParticipant, id)
		}
	}
	return nil
}

// ListExpenses returns all expenses, newest first.
func (s *ExpenseService) ListExpenses(ctx context.Context, req *connect.Request[api.ListExpensesRequest]) (*connect.Response[api.ListExpensesResponse], error) {
	slog.Info("ListExpenses request received")

	expenses, err := s.store.ListExpenses(ctx)
	if err != nil {
		slog.Error("ListExpenses failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	out := make([]*api.Expense, len(expenses))
	for i := range expenses {
		out[i] = toAPIExpense(&expenses[i])
	}

	slog.Info("Expenses listed", "count", len(out))
	return connect.NewResponse(&api.ListExpensesResponse{Expenses: out}), nil
}

// DeleteExpense removes a single expense.
func (s *ExpenseService) DeleteExpense(ctx context.Context, req *connect.Request[api.DeleteExpenseRequest]) (*connect.Response[api.DeleteExpenseResponse], error) {
	slog.Info("DeleteExpense request received", "expense_id", req.Msg.ExpenseID)

	if req.Msg.ExpenseID == "" {
		return nil, connect.NewError(connect.CodeInvalidArgument, errors.New("expense_id is required"))
	}

	if err := s.store.DeleteExpense(ctx, req.Msg.ExpenseID); err != nil {
		slog.Error("DeleteExpense failed", "expense_id", req.Msg.ExpenseID, "error", err)
		return nil, storeError(err)
	}

	slog.Info("Expense deleted", "expense_id", req.Msg.ExpenseID)
	publish(ctx, s.publisher, events.ExpenseDeleted, req.Msg.ExpenseID)

	return connect.NewResponse(&api.DeleteExpenseResponse{}), nil
}

// DeleteAllExpenses clears the ledger. Participants are kept.
func (s *ExpenseService) DeleteAllExpenses(ctx context.Context, req *connect.Request[api.DeleteAllExpensesRequest]) (*connect.Response[api.DeleteAllExpensesResponse], error) {
	slog.Info("DeleteAllExpenses request received")

	deleted, err := s.store.DeleteAllExpenses(ctx)
	if err != nil {
		slog.Error("DeleteAllExpenses failed", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	slog.Info("Expenses cleared", "deleted", deleted)
	publish(ctx, s.publisher, events.ExpensesCleared, "")

	return connect.NewResponse(&api.DeleteAllExpensesResponse{Deleted: deleted}), nil
}
