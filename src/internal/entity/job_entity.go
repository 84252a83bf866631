package entity

import "time"

type JobStatus string

const (
	JobStatusOpen      JobStatus = "OPEN"
	JobStatusAssigned  JobStatus = "ASSIGNED"
	JobStatusCompleted JobStatus = "COMPLETED"
	// JobStatusPaid is declared for a future payout-approval step; no
	// operation produces it yet.
	JobStatusPaid JobStatus = "PAID"
)

type Job struct {
	ID             string     `json:"id"`
	Title          string     `json:"title"`
	Instruction    string     `json:"instruction"` // tone and delivery notes for the voice actor
	Script         string     `json:"script"`      // the text to read
	Reward         float64    `json:"reward"`
	Status         JobStatus  `json:"status"`
	AssignedUserID string     `json:"assigned_user_id,omitempty"`
	CompletedAt    *time.Time `json:"completed_at,omitempty"`
}
