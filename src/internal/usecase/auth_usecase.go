package usecase

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	"vocalwork/src/internal/model/converter"
	"vocalwork/src/internal/repository"
	httpError "vocalwork/src/pkg/http-error"
	"vocalwork/src/pkg/log"
	"vocalwork/src/pkg/utils"

	"vocalwork/src/internal/model"
)

type AuthUseCase struct {
	Log      log.Log
	Validate *validator.Validate
	Store    *repository.Store
}

func NewAuthUseCase(logger log.Log, validate *validator.Validate, store *repository.Store) *AuthUseCase {
	return &AuthUseCase{
		Log:      logger,
		Validate: validate,
		Store:    store,
	}
}

// Login looks up a user by exact username and establishes the process-wide
// session. An unknown username is reported, not swallowed.
func (c *AuthUseCase) Login(request *model.LoginRequest) utils.Result {
	var result utils.Result

	if err := c.Validate.Struct(request); err != nil {
		errObj := httpError.NewBadRequest()
		errObj.Message = fmt.Sprintf("validation error: %v", err.Error())
		result.Error = errObj
		c.Log.Error("auth-usecase", errObj.Message, "Login", utils.ConvertString(request))
		return result
	}

	user, err := c.Store.Login(request.Username)
	if err != nil {
		errObj := httpError.NewUnauthorized()
		errObj.Message = fmt.Sprintf("no user with username %q", request.Username)
		result.Error = errObj
		c.Log.Warn("auth-usecase", errObj.Message, "Login", "")
		return result
	}

	c.Log.Info("auth-usecase", "session established", "Login", user.ID)
	result.Data = converter.UserToResponse(user)
	return result
}

// Logout clears the session unconditionally; it never fails.
func (c *AuthUseCase) Logout() utils.Result {
	c.Store.Logout()
	c.Log.Info("auth-usecase", "session cleared", "Logout", "")
	return utils.Result{Data: true}
}

// Profile returns the currently-authenticated user.
func (c *AuthUseCase) Profile() utils.Result {
	var result utils.Result

	user, ok := c.Store.SessionUser()
	if !ok {
		errObj := httpError.NewUnauthorized()
		errObj.Message = "no active session"
		result.Error = errObj
		return result
	}
	result.Data = converter.UserToResponse(user)
	return result
}
