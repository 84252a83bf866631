package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"vocalwork/src/internal/entity"
	"vocalwork/src/internal/gateway/generation"
	"vocalwork/src/internal/model"
	"vocalwork/src/internal/model/converter"
	"vocalwork/src/internal/repository"
	httpError "vocalwork/src/pkg/http-error"
	"vocalwork/src/pkg/log"
	"vocalwork/src/pkg/utils"
)

type UserUseCase struct {
	Log            log.Log
	Validate       *validator.Validate
	UserRepository *repository.UserRepository
	Generation     *generation.Client
}

func NewUserUseCase(
	logger log.Log,
	validate *validator.Validate,
	userRepository *repository.UserRepository,
	generationClient *generation.Client,
) *UserUseCase {
	return &UserUseCase{
		Log:            logger,
		Validate:       validate,
		UserRepository: userRepository,
		Generation:     generationClient,
	}
}

func (c *UserUseCase) AddUser(request *model.AddUserRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("user-usecase", errObj.Message, "AddUser", utils.ConvertString(request))
		return result
	}

	user := entity.User{
		ID:          request.ID,
		Username:    request.Username,
		DisplayName: request.DisplayName,
		Role:        entity.Role(request.Role),
	}
	if err := c.UserRepository.Insert(user); err != nil {
		errObj := httpError.NewConflict()
		errObj.Message = fmt.Sprintf("user with id %s or username %s already exists", request.ID, request.Username)
		result.Error = errObj
		c.Log.Error("user-usecase", errObj.Message, "AddUser", "")
		return result
	}

	c.Log.Info("user-usecase", "user created", "AddUser", user.ID)
	result.Data = converter.UserToResponse(user)
	return result
}

func (c *UserUseCase) ListUsers() utils.Result {
	return utils.Result{Data: converter.UsersToResponse(c.UserRepository.List())}
}

func (c *UserUseCase) UpdateUser(request *model.UpdateUserRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("user-usecase", errObj.Message, "UpdateUser", utils.ConvertString(request))
		return result
	}

	user, err := c.UserRepository.Update(request.ID, repository.UserPatch{
		Username:    request.Username,
		DisplayName: request.DisplayName,
		OfferLetter: request.OfferLetter,
	})
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("user with id %s not found", request.ID)
		result.Error = errObj
		c.Log.Error("user-usecase", errObj.Message, "UpdateUser", "")
		return result
	}

	result.Data = converter.UserToResponse(user)
	return result
}

// DeleteUser removes the record. Jobs and transactions referencing the user
// stay untouched; their references are weak.
func (c *UserUseCase) DeleteUser(id string) utils.Result {
	var result utils.Result

	if err := c.UserRepository.Delete(id); err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("user with id %s not found", id)
		result.Error = errObj
		c.Log.Error("user-usecase", errObj.Message, "DeleteUser", "")
		return result
	}

	c.Log.Info("user-usecase", "user deleted", "DeleteUser", id)
	result.Data = true
	return result
}

// GenerateOffer asks the generation gateway for an offer letter and attaches
// it to the candidate through the regular merge path. Generation is
// best-effort; a fallback letter is still attached on failure.
func (c *UserUseCase) GenerateOffer(ctx context.Context, request *model.GenerateOfferRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("user-usecase", errObj.Message, "GenerateOffer", utils.ConvertString(request))
		return result
	}

	user, err := c.UserRepository.FindByID(request.UserID)
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("user with id %s not found", request.UserID)
		result.Error = errObj
		c.Log.Error("user-usecase", errObj.Message, "GenerateOffer", "")
		return result
	}

	letter := c.Generation.GenerateOfferLetter(ctx, user.DisplayName, request.JobRole)
	updated, err := c.UserRepository.Update(user.ID, repository.UserPatch{OfferLetter: &letter})
	if err != nil {
		errObj := httpError.NewNotFound()
		errObj.Message = fmt.Sprintf("user with id %s not found", request.UserID)
		result.Error = errObj
		c.Log.Error("user-usecase", errObj.Message, "GenerateOffer", "concurrent-delete")
		return result
	}

	c.Log.Info("user-usecase", "offer letter attached", "GenerateOffer", user.ID)
	result.Data = converter.UserToResponse(updated)
	return result
}

// AcceptOffer flips the acceptance flag through the same merge path as
// UpdateUser.
func (c *UserUseCase) AcceptOffer(userID string) utils.Result {
	var result utils.Result

	accepted := true
	user, err := c.UserRepository.Update(userID, repository.UserPatch{OfferAccepted: &accepted})
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			errObj := httpError.NewNotFound()
			errObj.Message = fmt.Sprintf("user with id %s not found", userID)
			result.Error = errObj
		} else {
			result.Error = httpError.NewInternalServerError()
		}
		c.Log.Error("user-usecase", err.Error(), "AcceptOffer", userID)
		return result
	}

	c.Log.Info("user-usecase", "offer accepted", "AcceptOffer", userID)
	result.Data = converter.UserToResponse(user)
	return result
}
