package calculator

import (
	"math"
	"testing"

	"github.com/mmynk/roomsplit/internal/models"
)

func TestAccumulate(t *testing.T) {
	tests := []struct {
		name         string
		expenses     []models.Expense
		validateFunc func(t *testing.T, o *Obligations)
	}{
		{
			name: "payer share is excluded",
			expenses: []models.Expense{
				{ID: "e1", PaidBy: "A", Amount: 90, Involved: []string{"A", "B", "C"}},
			},
			validateFunc: func(t *testing.T, o *Obligations) {
				if got := o.Amount("B", "A"); math.Abs(got-30) > 1e-9 {
					t.Errorf("B->A = %v, want 30", got)
				}
				if got := o.Amount("C", "A"); math.Abs(got-30) > 1e-9 {
					t.Errorf("C->A = %v, want 30", got)
				}
				if got := o.Amount("A", "A"); got != 0 {
					t.Errorf("A->A = %v, want 0", got)
				}
				if o.Len() != 2 {
					t.Errorf("edges = %d, want 2", o.Len())
				}
			},
		},
		{
			name: "payer not involved pays for everyone",
			expenses: []models.Expense{
				{ID: "e1", PaidBy: "A", Amount: 40, Involved: []string{"B", "C"}},
			},
			validateFunc: func(t *testing.T, o *Obligations) {
				if got := o.Amount("B", "A"); math.Abs(got-20) > 1e-9 {
					t.Errorf("B->A = %v, want 20", got)
				}
				if got := o.Amount("C", "A"); math.Abs(got-20) > 1e-9 {
					t.Errorf("C->A = %v, want 20", got)
				}
			},
		},
		{
			name: "multiple expenses add into the same edge",
			expenses: []models.Expense{
				{ID: "e1", PaidBy: "A", Amount: 10, Involved: []string{"A", "B"}},
				{ID: "e2", PaidBy: "A", Amount: 30, Involved: []string{"A", "B"}},
			},
			validateFunc: func(t *testing.T, o *Obligations) {
				if got := o.Amount("B", "A"); math.Abs(got-20) > 1e-9 {
					t.Errorf("B->A = %v, want 20", got)
				}
			},
		},
		{
			name: "empty involved contributes nothing",
			expenses: []models.Expense{
				{ID: "e1", PaidBy: "A", Amount: 10, Involved: nil},
			},
			validateFunc: func(t *testing.T, o *Obligations) {
				if o.Len() != 0 {
					t.Errorf("edges = %d, want 0", o.Len())
				}
			},
		},
		{
			name: "non-positive and non-finite amounts contribute nothing",
			expenses: []models.Expense{
				{ID: "e1", PaidBy: "A", Amount: 0, Involved: []string{"A", "B"}},
				{ID: "e2", PaidBy: "A", Amount: -5, Involved: []string{"A", "B"}},
				{ID: "e3", PaidBy: "A", Amount: math.NaN(), Involved: []string{"A", "B"}},
				{ID: "e4", PaidBy: "A", Amount: math.Inf(1), Involved: []string{"A", "B"}},
			},
			validateFunc: func(t *testing.T, o *Obligations) {
				if o.Len() != 0 {
					t.Errorf("edges = %d, want 0", o.Len())
				}
			},
		},
		{
			name: "self-only expense produces no edge",
			expenses: []models.Expense{
				{ID: "e1", PaidBy: "A", Amount: 25, Involved: []string{"A"}},
			},
			validateFunc: func(t *testing.T, o *Obligations) {
				if o.Len() != 0 {
					t.Errorf("edges = %d, want 0", o.Len())
				}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.validateFunc(t, Accumulate(tt.expenses))
		})
	}
}

func TestAccumulateConservation(t *testing.T) {
	// For one expense the contributed total is M * |S \ {P}| / k.
	tests := []struct {
		amount   float64
		paidBy   string
		involved []string
	}{
		{100, "A", []string{"A", "B"}},
		{100, "A", []string{"A", "B", "C"}},
		{57.31, "B", []string{"A", "B", "C", "D", "E", "F", "G"}},
		{12, "Z", []string{"A", "B", "C"}},
	}

	for _, tt := range tests {
		o := Accumulate([]models.Expense{{PaidBy: tt.paidBy, Amount: tt.amount, Involved: tt.involved}})

		others := 0
		for _, id := range tt.involved {
			if id != tt.paidBy {
				others++
			}
		}
		want := tt.amount * float64(others) / float64(len(tt.involved))

		var got float64
		for _, ob := range o.List() {
			got += ob.Amount
		}
		if math.Abs(got-want) > 1e-9 {
			t.Errorf("amount %v paid by %s over %v: total = %v, want %v", tt.amount, tt.paidBy, tt.involved, got, want)
		}
	}
}

func TestAccumulateOrderIndependent(t *testing.T) {
	expenses := []models.Expense{
		{PaidBy: "A", Amount: 10.1, Involved: []string{"A", "B", "C"}},
		{PaidBy: "B", Amount: 0.2, Involved: []string{"A", "B"}},
		{PaidBy: "A", Amount: 7.77, Involved: []string{"B"}},
	}
	reversed := []models.Expense{expenses[2], expenses[1], expenses[0]}

	a := Accumulate(expenses).List()
	b := Accumulate(reversed).List()
	if len(a) != len(b) {
		t.Fatalf("edge counts differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Errorf("edge %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

func TestObligationsListOrder(t *testing.T) {
	o := Accumulate([]models.Expense{
		{PaidBy: "C", Amount: 30, Involved: []string{"A", "B", "C"}},
		{PaidBy: "A", Amount: 10, Involved: []string{"B"}},
	})

	list := o.List()
	want := []struct{ debtor, creditor string }{
		{"A", "C"},
		{"B", "A"},
		{"B", "C"},
	}
	if len(list) != len(want) {
		t.Fatalf("got %d edges, want %d", len(list), len(want))
	}
	for i, w := range want {
		if list[i].Debtor != w.debtor || list[i].Creditor != w.creditor {
			t.Errorf("edge %d = %s->%s, want %s->%s", i, list[i].Debtor, list[i].Creditor, w.debtor, w.creditor)
		}
	}
}
