package calculator

import (
	"math/big"
	"slices"
	"strings"

	"github.com/mmynk/roomsplit/internal/models"
)

// Obligation is a raw, directed amount one participant owes another,
// accumulated across expenses before netting.
type Obligation struct {
	Debtor   string
	Creditor string
	Amount   float64
}

// edge is an ordered (debtor, creditor) pair.
type edge struct {
	debtor   string
	creditor string
}

// Obligations is the directed obligation graph produced by Accumulate.
// Amounts are held as exact rationals so shares such as 100/3 add and
// cancel without residue.
type Obligations struct {
	edges map[edge]*big.Rat
}

// Accumulate folds expenses into a directed obligation graph.
//
// Algorithm:
// - share = amount / len(involved), exact division
// - every involved participant other than the payer owes the payer one share
// - the payer's own share is excluded
//
// Expenses with no involved participants or a non-positive, non-finite
// amount contribute nothing. Expense order does not affect the result.
func Accumulate(expenses []models.Expense) *Obligations {
	o := &Obligations{edges: make(map[edge]*big.Rat)}
	for _, e := range expenses {
		o.add(e)
	}
	return o
}

func (o *Obligations) add(e models.Expense) {
	k := len(e.Involved)
	if k == 0 {
		return
	}

	// SetFloat64 is exact for finite values and returns nil otherwise.
	amount := new(big.Rat).SetFloat64(e.Amount)
	if amount == nil || amount.Sign() <= 0 {
		return
	}

	share := amount.Quo(amount, big.NewRat(int64(k), 1))
	for _, id := range e.Involved {
		if id == e.PaidBy {
			continue
		}
		key := edge{debtor: id, creditor: e.PaidBy}
		acc, ok := o.edges[key]
		if !ok {
			acc = new(big.Rat)
			o.edges[key] = acc
		}
		acc.Add(acc, share)
	}
}

// Amount returns how much debtor owes creditor before netting.
func (o *Obligations) Amount(debtor, creditor string) float64 {
	r, ok := o.edges[edge{debtor: debtor, creditor: creditor}]
	if !ok {
		return 0
	}
	f, _ := r.Float64()
	return f
}

// Len returns the number of directed edges in the graph.
func (o *Obligations) Len() int {
	return len(o.edges)
}

// List returns every directed edge, sorted by debtor then creditor.
func (o *Obligations) List() []Obligation {
	out := make([]Obligation, 0, len(o.edges))
	for key, r := range o.edges {
		f, _ := r.Float64()
		out = append(out, Obligation{Debtor: key.debtor, Creditor: key.creditor, Amount: f})
	}
	slices.SortFunc(out, func(a, b Obligation) int {
		if c := strings.Compare(a.Debtor, b.Debtor); c != 0 {
			return c
		}
		return strings.Compare(a.Creditor, b.Creditor)
	})
	return out
}

// amount returns the exact edge value, or nil when the edge is absent.
func (o *Obligations) amount(debtor, creditor string) *big.Rat {
	return o.edges[edge{debtor: debtor, creditor: creditor}]
}
