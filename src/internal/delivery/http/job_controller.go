package http

import (
	"github.com/gofiber/fiber/v2"

	"vocalwork/src/internal/delivery/http/middleware"
	"vocalwork/src/internal/model"
	"vocalwork/src/internal/usecase"
	"vocalwork/src/pkg/log"
	"vocalwork/src/pkg/utils"
)

type JobController struct {
	Log     log.Log
	UseCase *usecase.JobUseCase
}

func NewJobController(useCase *usecase.JobUseCase, logger log.Log) *JobController {
	return &JobController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *JobController) ListJobs(ctx *fiber.Ctx) error {
	request := &model.ListJobsRequest{
		Status:         ctx.Query("status"),
		AssignedUserID: ctx.Query("assigned_user_id"),
	}

	result := c.UseCase.ListJobs(request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "ListJobs", fiber.StatusOK, ctx)
}

func (c *JobController) GetJob(ctx *fiber.Ctx) error {
	result := c.UseCase.GetJob(ctx.Params("id"))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "GetJob", fiber.StatusOK, ctx)
}

func (c *JobController) AddJob(ctx *fiber.Ctx) error {
	request := new(model.AddJobRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("JobController.AddJob", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.AddJob(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "AddJob", fiber.StatusCreated, ctx)
}

func (c *JobController) TakeJob(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	request := &model.TakeJobRequest{
		JobID:  ctx.Params("id"),
		UserID: auth.ID,
	}
	result := c.UseCase.TakeJob(request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "TakeJob", fiber.StatusOK, ctx)
}

func (c *JobController) CompleteJob(ctx *fiber.Ctx) error {
	request := &model.CompleteJobRequest{
		JobID: ctx.Params("id"),
	}
	result := c.UseCase.CompleteJob(request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "CompleteJob", fiber.StatusOK, ctx)
}
