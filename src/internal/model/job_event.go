package model

type Event interface {
	GetId() string
}

const (
	JobEventTaken     = "job.taken"
	JobEventCompleted = "job.completed"
)

// JobEvent is published on job lifecycle transitions when the producer is
// enabled.
type JobEvent struct {
	EventID    string  `json:"event_id"`
	Type       string  `json:"type"`
	JobID      string  `json:"job_id"`
	UserID     string  `json:"user_id"`
	Reward     float64 `json:"reward,omitempty"`
	OccurredAt string  `json:"occurred_at"`
}

func (e *JobEvent) GetId() string {
	return e.EventID
}
