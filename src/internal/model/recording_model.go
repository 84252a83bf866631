package model

type RecordingStateResponse struct {
	JobID          string `json:"job_id"`
	State          string `json:"state"`
	ElapsedSeconds int    `json:"elapsed_seconds"`
}
