package http

import (
	"github.com/gofiber/fiber/v2"

	"vocalwork/src/internal/model"
	"vocalwork/src/internal/usecase"
	"vocalwork/src/pkg/log"
	"vocalwork/src/pkg/utils"
)

type AuthController struct {
	Log     log.Log
	UseCase *usecase.AuthUseCase
}

func NewAuthController(useCase *usecase.AuthUseCase, logger log.Log) *AuthController {
	return &AuthController{
		Log:     logger,
		UseCase: useCase,
	}
}

func (c *AuthController) Login(ctx *fiber.Ctx) error {
	request := new(model.LoginRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("AuthController.Login", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.Login(request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "Login", fiber.StatusOK, ctx)
}

func (c *AuthController) Logout(ctx *fiber.Ctx) error {
	result := c.UseCase.Logout()
	return utils.Response(result.Data, "Logout", fiber.StatusOK, ctx)
}

func (c *AuthController) GetProfile(ctx *fiber.Ctx) error {
	result := c.UseCase.Profile()
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "GetProfile", fiber.StatusOK, ctx)
}
