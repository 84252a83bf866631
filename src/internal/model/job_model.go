package model

type AddJobRequest struct {
	Title       string  `json:"title" validate:"required,max=200"`
	Instruction string  `json:"instruction" validate:"max=1000"`
	Script      string  `json:"script" validate:"max=5000"`
	Reward      float64 `json:"reward" validate:"required,gt=0"`
	// Topic, when set, asks the generation gateway to fill in the
	// instruction and script.
	Topic string `json:"topic,omitempty" validate:"max=200"`
}

type TakeJobRequest struct {
	JobID  string `json:"-" validate:"required,max=100"`
	UserID string `json:"-" validate:"required,max=100"`
}

type CompleteJobRequest struct {
	JobID string `json:"-" validate:"required,max=100"`
}

type ListJobsRequest struct {
	Status         string `json:"-" validate:"omitempty,oneof=OPEN ASSIGNED COMPLETED PAID"`
	AssignedUserID string `json:"-" validate:"omitempty,max=100"`
}

type JobResponse struct {
	ID             string  `json:"id"`
	Title          string  `json:"title"`
	Instruction    string  `json:"instruction"`
	Script         string  `json:"script"`
	Reward         float64 `json:"reward"`
	Status         string  `json:"status"`
	AssignedUserID string  `json:"assigned_user_id,omitempty"`
	CompletedAt    string  `json:"completed_at,omitempty"`
}

type CompleteJobResponse struct {
	Job         JobResponse         `json:"job"`
	Transaction TransactionResponse `json:"transaction"`
	Balance     float64             `json:"balance"`
}
