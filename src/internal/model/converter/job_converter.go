package converter

import (
	"time"

	"vocalwork/src/internal/entity"
	"vocalwork/src/internal/model"
)

func JobToResponse(job entity.Job) *model.JobResponse {
	completedAt := ""
	if job.CompletedAt != nil {
		completedAt = job.CompletedAt.Format(time.RFC3339)
	}
	return &model.JobResponse{
		ID:             job.ID,
		Title:          job.Title,
		Instruction:    job.Instruction,
		Script:         job.Script,
		Reward:         job.Reward,
		Status:         string(job.Status),
		AssignedUserID: job.AssignedUserID,
		CompletedAt:    completedAt,
	}
}

func JobsToResponse(jobs []entity.Job) []*model.JobResponse {
	responses := make([]*model.JobResponse, 0, len(jobs))
	for _, j := range jobs {
		responses = append(responses, JobToResponse(j))
	}
	return responses
}
