package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"vocalwork/src/internal/entity"
	"vocalwork/src/internal/gateway/generation"
	"vocalwork/src/internal/gateway/messaging"
	"vocalwork/src/internal/model"
	"vocalwork/src/internal/model/converter"
	"vocalwork/src/internal/repository"
	httpError "vocalwork/src/pkg/http-error"
	"vocalwork/src/pkg/log"
	"vocalwork/src/pkg/metrics"
	"vocalwork/src/pkg/utils"
)

type JobUseCase struct {
	Log            log.Log
	Validate       *validator.Validate
	JobRepository  *repository.JobRepository
	UserRepository *repository.UserRepository
	Generation     *generation.Client
	JobProducer    *messaging.JobProducer
}

func NewJobUseCase(
	logger log.Log,
	validate *validator.Validate,
	jobRepository *repository.JobRepository,
	userRepository *repository.UserRepository,
	generationClient *generation.Client,
	jobProducer *messaging.JobProducer,
) *JobUseCase {
	return &JobUseCase{
		Log:            logger,
		Validate:       validate,
		JobRepository:  jobRepository,
		UserRepository: userRepository,
		Generation:     generationClient,
		JobProducer:    jobProducer,
	}
}

// AddJob creates an OPEN job. When the request carries a topic instead of a
// ready script, the generation gateway fills in the instruction and script
// (falling back to fixed text if generation is unavailable).
func (c *JobUseCase) AddJob(ctx context.Context, request *model.AddJobRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("job-usecase", errObj.Message, "AddJob", utils.ConvertString(request))
		return result
	}

	instruction := request.Instruction
	script := request.Script
	if script == "" && request.Topic != "" {
		generated := c.Generation.GenerateScript(ctx, request.Topic)
		instruction = generated.Instruction
		script = generated.Script
	}
	if script == "" {
		errObj := httpError.NewBadRequest()
		errObj.Message = "either script or topic is required"
		result.Error = errObj
		return result
	}

	job := entity.Job{
		ID:          uuid.NewString(),
		Title:       request.Title,
		Instruction: instruction,
		Script:      script,
		Reward:      request.Reward,
		Status:      entity.JobStatusOpen,
	}
	if err := c.JobRepository.Insert(job); err != nil {
		result.Error = httpError.NewInternalServerError()
		c.Log.Error("job-usecase", err.Error(), "AddJob", job.ID)
		return result
	}

	c.Log.Info("job-usecase", "job created", "AddJob", job.ID)
	result.Data = converter.JobToResponse(job)
	return result
}

func (c *JobUseCase) ListJobs(request *model.ListJobsRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	jobs := c.JobRepository.List(repository.JobFilter{
		Status:         entity.JobStatus(request.Status),
		AssignedUserID: request.AssignedUserID,
	})
	result.Data = converter.JobsToResponse(jobs)
	return result
}

func (c *JobUseCase) GetJob(id string) utils.Result {
	var result utils.Result

	job, err := c.JobRepository.FindByID(id)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("job with id %s not found", id)
		result.Error = errObj
		return result
	}
	result.Data = converter.JobToResponse(job)
	return result
}

// TakeJob claims an OPEN job for the user. The claim is a compare-and-set in
// the store, so when two takers race the first wins and the second gets a
// conflict.
func (c *JobUseCase) TakeJob(request *model.TakeJobRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("job-usecase", errObj.Message, "TakeJob", utils.ConvertString(request))
		return result
	}

	job, err := c.JobRepository.Take(request.JobID, request.UserID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			errObj := httpError.NewNotFound()
			errObj.Message = fmt.Sprintf("job %s or user %s not found", request.JobID, request.UserID)
			result.Error = errObj
		case errors.Is(err, repository.ErrConflict):
			errObj := httpError.NewConflict()
			errObj.Message = "job is no longer open"
			result.Error = errObj
		default:
			result.Error = httpError.NewInternalServerError()
		}
		c.Log.Error("job-usecase", err.Error(), "TakeJob", request.JobID)
		return result
	}

	c.publishEvent(&model.JobEvent{
		EventID:    uuid.NewString(),
		Type:       model.JobEventTaken,
		JobID:      job.ID,
		UserID:     request.UserID,
		OccurredAt: time.Now().Format(time.RFC3339),
	})

	c.Log.Info("job-usecase", "job assigned", "TakeJob", job.ID)
	result.Data = converter.JobToResponse(job)
	return result
}

// CompleteJob finishes the job for the session user. The status transition,
// wallet credit and ledger append happen as one unit inside the store; this
// method only maps errors, publishes the event and shapes the response.
func (c *JobUseCase) CompleteJob(request *model.CompleteJobRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		return result
	}

	job, tx, err := c.JobRepository.Complete(request.JobID, uuid.NewString(), time.Now())
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNoSession):
			errObj := httpError.NewUnauthorized()
			errObj.Message = "completing a job requires an active session"
			result.Error = errObj
		case errors.Is(err, repository.ErrNotFound):
			errObj := httpError.NewNotFound()
			errObj.Message = fmt.Sprintf("job with id %s not found", request.JobID)
			result.Error = errObj
		case errors.Is(err, repository.ErrConflict):
			errObj := httpError.NewConflict()
			errObj.Message = "job is not in progress"
			result.Error = errObj
		default:
			result.Error = httpError.NewInternalServerError()
		}
		c.Log.Error("job-usecase", err.Error(), "CompleteJob", request.JobID)
		return result
	}

	metrics.JobsCompleted.Inc()
	metrics.WalletCredited.Add(tx.Amount)

	c.publishEvent(&model.JobEvent{
		EventID:    uuid.NewString(),
		Type:       model.JobEventCompleted,
		JobID:      job.ID,
		UserID:     tx.UserID,
		Reward:     tx.Amount,
		OccurredAt: time.Now().Format(time.RFC3339),
	})

	balance := 0.0
	if user, err := c.UserRepository.FindByID(tx.UserID); err == nil {
		balance = user.WalletBalance
	}

	c.Log.Info("job-usecase", "job completed and paid", "CompleteJob", job.ID)
	result.Data = &model.CompleteJobResponse{
		Job:         *converter.JobToResponse(job),
		Transaction: converter.TransactionToResponse(tx),
		Balance:     balance,
	}
	return result
}

// publishEvent is best-effort; a dead broker must not fail the domain
// operation.
func (c *JobUseCase) publishEvent(event *model.JobEvent) {
	if c.JobProducer == nil {
		return
	}
	if err := c.JobProducer.Send(event); err != nil {
		c.Log.Error("job-usecase", fmt.Sprintf("failed to publish %s event: %v", event.Type, err), "publishEvent", event.JobID)
	}
}
