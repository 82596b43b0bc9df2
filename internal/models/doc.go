// Package models defines the core domain models for roomsplit.
//
// # Models
//
//   - Participant: a member of the household sharing expenses
//   - Expense: one payment made by a participant, shared among several participants
//   - Debt: the computed statement "From owes To Amount"
//
// # Design Principles
//
// 1. **Value data**: models are plain structs owned by the caller; nothing here holds state
// 2. **IDs, not pointers**: expenses reference participants by ID string, so an
//    expense may outlive the participant it names
// 3. **Immutable records**: participants and expenses are never updated, only
//    created and deleted
//
// Debts are never persisted. They are recomputed from a snapshot of
// participants and expenses by the calculator package.
package models
