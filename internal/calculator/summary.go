package calculator

import (
	"math/big"
	"slices"
	"strings"

	"github.com/mmynk/roomsplit/internal/models"
)

// Balance summarizes one participant's position across all expenses.
type Balance struct {
	ParticipantID string
	TotalPaid     float64 // Sum of amounts this participant paid
	TotalShare    float64 // Sum of this participant's shares
	Net           float64 // Positive = owed money, negative = owes money
}

type runningBalance struct {
	paid  *big.Rat
	share *big.Rat
}

// Summarize computes per-participant totals for the given expenses. Every
// known participant gets an entry, as does any id referenced by an expense.
// Results are sorted by participant id.
func Summarize(expenses []models.Expense, participants []models.Participant) []Balance {
	running := make(map[string]*runningBalance)
	get := func(id string) *runningBalance {
		rb, ok := running[id]
		if !ok {
			rb = &runningBalance{paid: new(big.Rat), share: new(big.Rat)}
			running[id] = rb
		}
		return rb
	}

	for _, p := range participants {
		get(p.ID)
	}

	for _, e := range expenses {
		if len(e.Involved) == 0 {
			continue
		}
		amount := new(big.Rat).SetFloat64(e.Amount)
		if amount == nil || amount.Sign() <= 0 {
			continue
		}
		payer := get(e.PaidBy)
		payer.paid.Add(payer.paid, amount)

		share := new(big.Rat).Quo(amount, big.NewRat(int64(len(e.Involved)), 1))
		for _, id := range e.Involved {
			rb := get(id)
			rb.share.Add(rb.share, share)
		}
	}

	balances := make([]Balance, 0, len(running))
	for id, rb := range running {
		paid, _ := rb.paid.Float64()
		share, _ := rb.share.Float64()
		net, _ := new(big.Rat).Sub(rb.paid, rb.share).Float64()
		balances = append(balances, Balance{
			ParticipantID: id,
			TotalPaid:     paid,
			TotalShare:    share,
			Net:           net,
		})
	}
	slices.SortFunc(balances, func(a, b Balance) int {
		return strings.Compare(a.ParticipantID, b.ParticipantID)
	})
	return balances
}
