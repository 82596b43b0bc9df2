package calculator

import (
	"fmt"
	"math/big"
	"slices"
	"strings"

	"github.com/mmynk/roomsplit/internal/models"
)

// SettledTolerance is the smallest net amount reported as a debt.
// Nets below half a minor currency unit are treated as settled.
const SettledTolerance = 0.005

// RemovedParticipantLabel is the display name used for debt endpoints that
// no longer resolve to a participant.
const RemovedParticipantLabel = "Removed participant"

// RemovedPolicy decides what happens to a debt whose debtor or creditor is
// no longer a known participant.
type RemovedPolicy int

const (
	// DropRemoved omits such debts from the output.
	DropRemoved RemovedPolicy = iota
	// RetainRemoved keeps such debts and flags them with Debt.Removed.
	RetainRemoved
)

// String returns the configuration name of the policy.
func (p RemovedPolicy) String() string {
	switch p {
	case RetainRemoved:
		return "retain"
	default:
		return "drop"
	}
}

// ParseRemovedPolicy parses "drop" or "retain".
func ParseRemovedPolicy(s string) (RemovedPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "drop":
		return DropRemoved, nil
	case "retain":
		return RetainRemoved, nil
	default:
		return DropRemoved, fmt.Errorf("unknown removed participant policy %q", s)
	}
}

// Options tunes the netting stage.
type Options struct {
	RemovedPolicy RemovedPolicy

	// Tolerance overrides SettledTolerance when positive.
	Tolerance float64
}

func (o Options) tolerance() float64 {
	if o.Tolerance > 0 {
		return o.Tolerance
	}
	return SettledTolerance
}

// NetPairs collapses each unordered pair of participants in the obligation
// graph into at most one debt.
//
// For a pair {A, B} with x = A→B and y = B→A, net = x - y:
// - net > 0: A owes B net
// - net < 0: B owes A -net
// - |net| below the tolerance: nothing, the pair is settled
//
// known reports whether a participant still exists; debts touching an
// unknown participant follow opts.RemovedPolicy. The result is sorted by
// From, then To.
func NetPairs(o *Obligations, known func(id string) bool, opts Options) []models.Debt {
	tolerance := opts.tolerance()
	seen := make(map[edge]struct{}, len(o.edges))
	debts := make([]models.Debt, 0, len(o.edges))

	for key, amount := range o.edges {
		if amount.Sign() <= 0 {
			continue
		}
		pk := pairKey(key.debtor, key.creditor)
		if _, ok := seen[pk]; ok {
			continue
		}
		seen[pk] = struct{}{}

		net := new(big.Rat).Set(amount)
		if reverse := o.amount(key.creditor, key.debtor); reverse != nil {
			net.Sub(net, reverse)
		}

		from, to := key.debtor, key.creditor
		if net.Sign() < 0 {
			from, to = to, from
			net.Neg(net)
		}

		value, _ := net.Float64()
		if value < tolerance {
			continue
		}

		removed := !known(from) || !known(to)
		if removed && opts.RemovedPolicy == DropRemoved {
			continue
		}

		debts = append(debts, models.Debt{
			From:    from,
			To:      to,
			Amount:  value,
			Removed: removed,
		})
	}

	sortDebts(debts)
	return debts
}

// pairKey orders two ids so both directions of a pair share one key.
func pairKey(a, b string) edge {
	if b < a {
		a, b = b, a
	}
	return edge{debtor: a, creditor: b}
}

func sortDebts(debts []models.Debt) {
	slices.SortFunc(debts, func(a, b models.Debt) int {
		if c := strings.Compare(a.From, b.From); c != 0 {
			return c
		}
		return strings.Compare(a.To, b.To)
	})
}
