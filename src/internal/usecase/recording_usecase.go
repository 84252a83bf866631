package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"vocalwork/src/internal/entity"
	"vocalwork/src/internal/model"
	"vocalwork/src/internal/recording"
	"vocalwork/src/internal/repository"
	httpError "vocalwork/src/pkg/http-error"
	"vocalwork/src/pkg/log"
	"vocalwork/src/pkg/utils"
)

// RecordingUseCase drives one capture attempt per assigned job. Submitting a
// take fires the session's completion callback, which is the job-completion
// operation; the recorder itself never touches the wallet.
type RecordingUseCase struct {
	Log           log.Log
	Store         *repository.Store
	JobRepository *repository.JobRepository
	Manager       *recording.Manager
	Jobs          *JobUseCase

	mu          sync.Mutex
	completions map[string]utils.Result
}

func NewRecordingUseCase(
	logger log.Log,
	store *repository.Store,
	jobRepository *repository.JobRepository,
	manager *recording.Manager,
	jobs *JobUseCase,
) *RecordingUseCase {
	return &RecordingUseCase{
		Log:           logger,
		Store:         store,
		JobRepository: jobRepository,
		Manager:       manager,
		Jobs:          jobs,
		completions:   make(map[string]utils.Result),
	}
}

// Start acquires the microphone for the job's script. Only the assigned
// session user may record.
func (c *RecordingUseCase) Start(ctx context.Context, jobID string) utils.Result {
	var result utils.Result

	user, ok := c.Store.SessionUser()
	if !ok {
		errObj := httpError.NewUnauthorized()
		errObj.Message = "recording requires an active session"
		result.Error = errObj
		return result
	}

	job, err := c.JobRepository.FindByID(jobID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("job with id %s not found", jobID)
		result.Error = errObj
		return result
	}
	if job.Status != entity.JobStatusAssigned || job.AssignedUserID != user.ID {
		errObj := httpError.NewConflict()
		errObj.Message = "job is not assigned to the current user"
		result.Error = errObj
		return result
	}

	onComplete := func() {
		completion := c.Jobs.CompleteJob(&model.CompleteJobRequest{JobID: jobID})
		c.mu.Lock()
		c.completions[jobID] = completion
		c.mu.Unlock()
	}

	if err := c.Manager.Start(ctx, jobID, job.Script, onComplete); err != nil {
		result.Error = c.mapRecordingError(err, jobID, "Start")
		return result
	}

	result.Data = c.stateResponse(jobID)
	return result
}

func (c *RecordingUseCase) Stop(jobID string) utils.Result {
	var result utils.Result

	if err := c.Manager.Stop(jobID); err != nil {
		result.Error = c.mapRecordingError(err, jobID, "Stop")
		return result
	}
	result.Data = c.stateResponse(jobID)
	return result
}

func (c *RecordingUseCase) Retry(jobID string) utils.Result {
	var result utils.Result

	if err := c.Manager.Retry(jobID); err != nil {
		result.Error = c.mapRecordingError(err, jobID, "Retry")
		return result
	}
	result.Data = c.stateResponse(jobID)
	return result
}

// Submit finishes the attempt: the completion callback transitions the job
// and pays the session user, and the session is evicted whatever the
// outcome.
func (c *RecordingUseCase) Submit(jobID string) utils.Result {
	if err := c.Manager.Submit(jobID); err != nil {
		return utils.Result{Error: c.mapRecordingError(err, jobID, "Submit")}
	}

	c.mu.Lock()
	completion, ok := c.completions[jobID]
	delete(c.completions, jobID)
	c.mu.Unlock()

	if !ok {
		c.Log.Error("recording-usecase", "submit fired no completion", "Submit", jobID)
		return utils.Result{Error: httpError.NewInternalServerError()}
	}
	return completion
}

func (c *RecordingUseCase) State(jobID string) utils.Result {
	var result utils.Result

	state, elapsed, err := c.Manager.Lookup(jobID)
	if err != nil {
		result.Error = c.mapRecordingError(err, jobID, "State")
		return result
	}
	result.Data = &model.RecordingStateResponse{
		JobID:          jobID,
		State:          string(state),
		ElapsedSeconds: elapsed,
	}
	return result
}

// Cancel releases the session without submitting; the navigate-away path.
func (c *RecordingUseCase) Cancel(jobID string) utils.Result {
	c.Manager.Evict(jobID)
	c.mu.Lock()
	delete(c.completions, jobID)
	c.mu.Unlock()
	return utils.Result{Data: true}
}

func (c *RecordingUseCase) stateResponse(jobID string) *model.RecordingStateResponse {
	state, elapsed, err := c.Manager.Lookup(jobID)
	if err != nil {
		return &model.RecordingStateResponse{JobID: jobID, State: string(recording.StateIdle)}
	}
	return &model.RecordingStateResponse{
		JobID:          jobID,
		State:          string(state),
		ElapsedSeconds: elapsed,
	}
}

func (c *RecordingUseCase) mapRecordingError(err error, jobID, scope string) error {
	c.Log.Error("recording-usecase", err.Error(), scope, jobID)
	switch {
	case errors.Is(err, recording.ErrPermissionDenied):
		errObj := httpError.NewForbidden()
		errObj.Message = "microphone access is required to complete this task"
		return errObj
	case errors.Is(err, recording.ErrNoSession):
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("no recording session for job %s", jobID)
		return errObj
	case errors.Is(err, recording.ErrInvalidState):
		errObj := httpError.NewConflict()
		errObj.Message = "recording session is not in a state that allows this action"
		return errObj
	default:
		return httpError.NewInternalServerError()
	}
}
