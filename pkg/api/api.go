// Package api defines the roomsplit.v1 wire messages. They are encoded as
// JSON by the apiconnect package.
package api

// Participant is a household member.
type Participant struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	CreatedAt int64  `json:"created_at"`
}

// Expense is a recorded payment shared among participants.
type Expense struct {
	ID        string   `json:"id"`
	PaidBy    string   `json:"paid_by"`
	Amount    float64  `json:"amount"`
	Currency  string   `json:"currency"`
	Involved  []string `json:"involved"`
	Note      string   `json:"note,omitempty"`
	CreatedAt int64    `json:"created_at"`
}

// Debt states that From owes To Amount.
type Debt struct {
	From    string  `json:"from"`
	To      string  `json:"to"`
	Amount  float64 `json:"amount"`
	Removed bool    `json:"removed,omitempty"`
}

// Balance is one participant's position across all expenses.
type Balance struct {
	ParticipantID string  `json:"participant_id"`
	TotalPaid     float64 `json:"total_paid"`
	TotalShare    float64 `json:"total_share"`
	Net           float64 `json:"net"`
}

type AddParticipantRequest struct {
	Name string `json:"name"`
}

type AddParticipantResponse struct {
	Participant *Participant `json:"participant"`
}

type ListParticipantsRequest struct{}

type ListParticipantsResponse struct {
	Participants []*Participant `json:"participants"`
}

type DeleteParticipantRequest struct {
	ParticipantID string `json:"participant_id"`
}

type DeleteParticipantResponse struct{}

type AddExpenseRequest struct {
	PaidBy   string   `json:"paid_by"`
	Amount   float64  `json:"amount"`
	Currency string   `json:"currency,omitempty"`
	Involved []string `json:"involved"`
	Note     string   `json:"note,omitempty"`
}

type AddExpenseResponse struct {
	Expense *Expense `json:"expense"`
}

type ListExpensesRequest struct{}

type ListExpensesResponse struct {
	Expenses []*Expense `json:"expenses"`
}

type DeleteExpenseRequest struct {
	ExpenseID string `json:"expense_id"`
}

type DeleteExpenseResponse struct{}

type DeleteAllExpensesRequest struct{}

type DeleteAllExpensesResponse struct {
	Deleted int64 `json:"deleted"`
}

type GetDebtsRequest struct{}

type GetDebtsResponse struct {
	Debts    []*Debt           `json:"debts"`
	Balances []*Balance        `json:"balances"`
	Names    map[string]string `json:"names"`
	Currency string            `json:"currency"`
}

type LoginRequest struct {
	Passphrase string `json:"passphrase"`
}

type LoginResponse struct {
	Token     string `json:"token"`
	Household string `json:"household"`
}
