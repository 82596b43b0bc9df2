package models

// Debt is a single net amount one participant owes another.
type Debt struct {
	// From is the ID of the participant who owes.
	From string `json:"from"`

	// To is the ID of the participant who is owed.
	To string `json:"to"`

	// Amount is the net amount owed. Always positive.
	Amount float64 `json:"amount"`

	// Removed is set when From or To no longer exists as a participant.
	// Only produced when removed participants are retained.
	Removed bool `json:"removed,omitempty"`
}
