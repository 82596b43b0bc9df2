// Package calculator turns shared expenses into the minimal set of pairwise
// debts. Everything here is pure: inputs are never mutated and each call
// allocates its own intermediate state, so callers may run it concurrently.
package calculator

import "github.com/mmynk/roomsplit/internal/models"

// ComputeDebts answers "who owes whom" for a snapshot of expenses and
// participants, dropping debts that involve removed participants.
func ComputeDebts(expenses []models.Expense, participants []models.Participant) []models.Debt {
	return ComputeDebtsWithOptions(expenses, participants, Options{})
}

// ComputeDebtsWithOptions is ComputeDebts with an explicit netting policy.
func ComputeDebtsWithOptions(expenses []models.Expense, participants []models.Participant, opts Options) []models.Debt {
	known := make(map[string]struct{}, len(participants))
	for _, p := range participants {
		known[p.ID] = struct{}{}
	}

	obligations := Accumulate(expenses)
	return NetPairs(obligations, func(id string) bool {
		_, ok := known[id]
		return ok
	}, opts)
}
