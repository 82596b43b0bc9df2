package models

import "time"

// Participant represents one member of the household.
type Participant struct {
	// ID is the unique identifier for the participant (UUID format).
	ID string `json:"id"`

	// Name is the display name shown next to debts and expenses.
	Name string `json:"name"`

	// CreatedAt is the Unix timestamp when the participant was added.
	CreatedAt int64 `json:"created_at"`
}

// NewParticipant creates a participant with the given name.
// ID is left empty; the store assigns it on insert.
func NewParticipant(name string) *Participant {
	return &Participant{
		Name:      name,
		CreatedAt: time.Now().Unix(),
	}
}
