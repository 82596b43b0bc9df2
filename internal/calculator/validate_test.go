package calculator

import (
	"errors"
	"math"
	"math/big"
	"testing"

	"github.com/mmynk/roomsplit/internal/models"
)

func TestValidateExpense(t *testing.T) {
	tests := []struct {
		name    string
		expense models.Expense
		wantErr error
	}{
		{
			name:    "valid",
			expense: models.Expense{PaidBy: "A", Amount: 12.5, Involved: []string{"A", "B"}},
		},
		{
			name:    "missing payer",
			expense: models.Expense{Amount: 12.5, Involved: []string{"A"}},
			wantErr: ErrMissingPayer,
		},
		{
			name:    "zero amount",
			expense: models.Expense{PaidBy: "A", Amount: 0, Involved: []string{"A"}},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "negative amount",
			expense: models.Expense{PaidBy: "A", Amount: -1, Involved: []string{"A"}},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "NaN amount",
			expense: models.Expense{PaidBy: "A", Amount: math.NaN(), Involved: []string{"A"}},
			wantErr: ErrInvalidAmount,
		},
		{
			name:    "no involved",
			expense: models.Expense{PaidBy: "A", Amount: 10},
			wantErr: ErrNoInvolved,
		},
		{
			name:    "blank involved id",
			expense: models.Expense{PaidBy: "A", Amount: 10, Involved: []string{"A", " "}},
			wantErr: ErrEmptyID,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateExpense(tt.expense)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("ValidateExpense() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestUniqueIDs(t *testing.T) {
	got := UniqueIDs([]string{"B", "A", "B", "C", "A"})
	want := []string{"B", "A", "C"}
	if len(got) != len(want) {
		t.Fatalf("UniqueIDs() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("UniqueIDs()[%d] = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestSummarize(t *testing.T) {
	expenses := []models.Expense{
		{PaidBy: "A", Amount: 90, Involved: []string{"A", "B", "C"}},
		{PaidBy: "B", Amount: 30, Involved: []string{"B", "C"}},
	}

	balances := Summarize(expenses, participants("A", "B", "C", "D"))
	want := map[string]Balance{
		"A": {ParticipantID: "A", TotalPaid: 90, TotalShare: 30, Net: 60},
		"B": {ParticipantID: "B", TotalPaid: 30, TotalShare: 45, Net: -15},
		"C": {ParticipantID: "C", TotalPaid: 0, TotalShare: 45, Net: -45},
		"D": {ParticipantID: "D"},
	}
	if len(balances) != len(want) {
		t.Fatalf("got %d balances, want %d", len(balances), len(want))
	}

	total := new(big.Rat)
	for _, b := range balances {
		w := want[b.ParticipantID]
		if math.Abs(b.TotalPaid-w.TotalPaid) > 1e-9 || math.Abs(b.TotalShare-w.TotalShare) > 1e-9 || math.Abs(b.Net-w.Net) > 1e-9 {
			t.Errorf("%s balance = %+v, want %+v", b.ParticipantID, b, w)
		}
		total.Add(total, new(big.Rat).SetFloat64(b.Net))
	}
	if total.Sign() != 0 {
		t.Errorf("net balances should sum to zero, got %s", total.FloatString(6))
	}
}
