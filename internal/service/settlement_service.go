package service

import (
	"context"
	"log/slog"
	"time"

	"connectrpc.com/connect"
	"golang.org/x/sync/errgroup"

	"github.com/mmynk/roomsplit/internal/calculator"
	"github.com/mmynk/roomsplit/internal/metrics"
	"github.com/mmynk/roomsplit/internal/models"
	"github.com/mmynk/roomsplit/internal/storage"
	"github.com/mmynk/roomsplit/pkg/api"
	"github.com/mmynk/roomsplit/pkg/api/apiconnect"
)

// SettlementService implements the Connect SettlementService
type SettlementService struct {
	apiconnect.UnimplementedSettlementServiceHandler
	store    storage.Store
	metrics  *metrics.Metrics
	currency string
	opts     calculator.Options
}

// NewSettlementService creates a new SettlementService. m may be nil.
func NewSettlementService(store storage.Store, m *metrics.Metrics, currency string, opts calculator.Options) *SettlementService {
	return &SettlementService{
		store:    store,
		metrics:  m,
		currency: currency,
		opts:     opts,
	}
}

// GetDebts computes who owes whom over a snapshot of the ledger.
func (s *SettlementService) GetDebts(ctx context.Context, req *connect.Request[api.GetDebtsRequest]) (*connect.Response[api.GetDebtsResponse], error) {
	slog.Info("GetDebts request received", "removed_policy", s.opts.RemovedPolicy)

	var (
		participants []models.Participant
		expenses     []models.Expense
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		participants, err = s.store.ListParticipants(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		expenses, err = s.store.ListExpenses(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		slog.Error("GetDebts failed to load ledger", "error", err)
		return nil, connect.NewError(connect.CodeInternal, err)
	}

	start := time.Now()
	debts := calculator.ComputeDebtsWithOptions(expenses, participants, s.opts)
	balances := calculator.Summarize(expenses, participants)
	if s.metrics != nil {
		s.metrics.ObserveDebtComputation(time.Since(start), len(debts))
	}

	names := make(map[string]string, len(participants))
	for _, p := range participants {
		names[p.ID] = p.Name
	}
	label := func(id string) {
		if _, ok := names[id]; !ok {
			names[id] = calculator.RemovedParticipantLabel
		}
	}

	resp := &api.GetDebtsResponse{
		Debts:    make([]*api.Debt, len(debts)),
		Balances: make([]*api.Balance, len(balances)),
		Names:    names,
		Currency: s.currency,
	}
	for i, d := range debts {
		label(d.From)
		label(d.To)
		resp.Debts[i] = toAPIDebt(d)
	}
	for i, b := range balances {
		label(b.ParticipantID)
		resp.Balances[i] = toAPIBalance(b)
	}

	slog.Info("Debts computed",
		"participants", len(participants),
		"expenses", len(expenses),
		"debts", len(debts),
	)
	return connect.NewResponse(resp), nil
}
