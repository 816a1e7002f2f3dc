package usecase

import "context"

// SweepResult counts what one reminder sweep did.
type SweepResult struct {
	Scanned   int `json:"scanned"`   // Warranties classified.
	Due       int `json:"due"`       // Warranties found expiring soon.
	Published int `json:"published"` // Reminder events handed to the publisher.
	Failed    int `json:"failed"`    // Reminder events the publisher rejected.
}

// ReminderUsecase defines the scheduled reminder use case
type ReminderUsecase interface {
	// Sweep publishes a reminder event for every warranty that is expiring
	// soon. A failed publish is counted and the sweep moves on.
	Sweep(ctx context.Context) (SweepResult, error)
}
