package calculator

import (
	"errors"
	"math"
	"strings"

	"github.com/mmynk/roomsplit/internal/models"
)

var (
	ErrInvalidAmount    = errors.New("amount must be a positive, finite number")
	ErrMissingPayer     = errors.New("expense must have a payer")
	ErrNoInvolved       = errors.New("expense must involve at least one participant")
	ErrEmptyID          = errors.New("participant id cannot be empty")
	ErrEmptyName        = errors.New("participant name cannot be empty")
	ErrCurrencyMismatch = errors.New("expense currency does not match the ledger currency")
)

// ValidateAmount checks that amount is strictly positive and finite.
func ValidateAmount(amount float64) error {
	if math.IsNaN(amount) || math.IsInf(amount, 0) || amount <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

// ValidateExpense checks the write-path preconditions of an expense.
// Expenses that pass are safe to feed to Accumulate.
func ValidateExpense(e models.Expense) error {
	if strings.TrimSpace(e.PaidBy) == "" {
		return ErrMissingPayer
	}
	if err := ValidateAmount(e.Amount); err != nil {
		return err
	}
	if len(e.Involved) == 0 {
		return ErrNoInvolved
	}
	for _, id := range e.Involved {
		if strings.TrimSpace(id) == "" {
			return ErrEmptyID
		}
	}
	return nil
}

// UniqueIDs returns ids with duplicates removed, keeping first occurrences.
func UniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
