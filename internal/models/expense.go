package models

// Expense represents a single payment made by one participant and shared
// equally among the involved participants.
type Expense struct {
	// ID is the unique identifier for the expense (UUID format).
	ID string `json:"id"`

	// PaidBy is the ID of the participant who paid.
	PaidBy string `json:"paid_by"`

	// Amount is the total paid, in Currency. Always positive.
	Amount float64 `json:"amount"`

	// Currency is the currency code of Amount (e.g. "AED").
	Currency string `json:"currency"`

	// Involved lists the IDs of the participants sharing the cost.
	// Includes PaidBy when the payer shares in the cost.
	Involved []string `json:"involved"`

	// Note is an optional free-form description.
	Note string `json:"note,omitempty"`

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64 `json:"created_at"`
}
