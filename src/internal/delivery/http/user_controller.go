package http

import (
	"github.com/gofiber/fiber/v2"

	"vocalwork/src/internal/delivery/http/middleware"
	"vocalwork/src/internal/model"
	"vocalwork/src/internal/usecase"
	"vocalwork/src/pkg/log"
	"vocalwork/src/pkg/utils"
)

type UserController struct {
	Log     log.Log
	UseCase *usecase.UserUseCase
	Wallets *usecase.WalletUseCase
}

func NewUserController(useCase *usecase.UserUseCase, wallets *usecase.WalletUseCase, logger log.Log) *UserController {
	return &UserController{
		Log:     logger,
		UseCase: useCase,
		Wallets: wallets,
	}
}

func (c *UserController) ListUsers(ctx *fiber.Ctx) error {
	result := c.UseCase.ListUsers()
	return utils.Response(result.Data, "ListUsers", fiber.StatusOK, ctx)
}

func (c *UserController) AddUser(ctx *fiber.Ctx) error {
	request := new(model.AddUserRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("UserController.AddUser", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}

	result := c.UseCase.AddUser(request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "AddUser", fiber.StatusCreated, ctx)
}

func (c *UserController) UpdateUser(ctx *fiber.Ctx) error {
	request := new(model.UpdateUserRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("UserController.UpdateUser", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.ID = ctx.Params("id")

	result := c.UseCase.UpdateUser(request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "UpdateUser", fiber.StatusOK, ctx)
}

func (c *UserController) DeleteUser(ctx *fiber.Ctx) error {
	result := c.UseCase.DeleteUser(ctx.Params("id"))
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "DeleteUser", fiber.StatusOK, ctx)
}

func (c *UserController) GenerateOffer(ctx *fiber.Ctx) error {
	request := new(model.GenerateOfferRequest)
	if err := ctx.BodyParser(request); err != nil {
		c.Log.Error("UserController.GenerateOffer", "Failed to parse request body", "error", err.Error())
		return utils.ResponseError(err, ctx)
	}
	request.UserID = ctx.Params("id")

	result := c.UseCase.GenerateOffer(ctx.Context(), request)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "GenerateOffer", fiber.StatusOK, ctx)
}

func (c *UserController) AcceptOffer(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	result := c.UseCase.AcceptOffer(auth.ID)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "AcceptOffer", fiber.StatusOK, ctx)
}

func (c *UserController) GetWallet(ctx *fiber.Ctx) error {
	auth := middleware.GetUser(ctx)

	result := c.Wallets.Wallet(auth.ID)
	if result.Error != nil {
		return utils.ResponseError(result.Error, ctx)
	}
	return utils.Response(result.Data, "GetWallet", fiber.StatusOK, ctx)
}
