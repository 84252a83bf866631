package http

import (
	"github.com/gofiber/fiber/v2"

	"vocalwork/src/internal/usecase"
	"vocalwork/src/pkg/log"
	"vocalwork/src/pkg/utils"
)

type RecordingController struct {
	Log     log.Log
	UseCase *usecase.RecordingUseCase
}

func NewRecordingController(useCase *usecase.RecordingUseCase, logger log.Log) *RecordingController {
	return &RecordingController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *RecordingController) Start(ctx *fiber.Ctx) error {
	result := c.UseCase.Start(ctx.Context(), ctx.Params("jobId"))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "StartRecording", fiber.StatusOK, ctx)
}

func (c *RecordingController) Stop(ctx *fiber.Ctx) error {
	result := c.UseCase.Stop(ctx.Params("jobId"))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "StopRecording", fiber.StatusOK, ctx)
}

func (c *RecordingController) Retry(ctx *fiber.Ctx) error {
	result := c.UseCase.Retry(ctx.Params("jobId"))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "RetryRecording", fiber.StatusOK, ctx)
}

func (c *RecordingController) Submit(ctx *fiber.Ctx) error {
	result := c.UseCase.Submit(ctx.Params("jobId"))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "SubmitRecording", fiber.StatusOK, ctx)
}

func (c *RecordingController) Cancel(ctx *fiber.Ctx) error {
	result := c.UseCase.Cancel(ctx.Params("jobId"))
	return utils.Response(result.Data, "CancelRecording", fiber.StatusOK, ctx)
}

func (c *RecordingController) GetState(ctx *fiber.Ctx) error {
	result := c.UseCase.State(ctx.Params("jobId"))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "GetRecordingState", fiber.StatusOK, ctx)
}
