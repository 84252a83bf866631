package middleware

import (
	"github.com/gofiber/fiber/v2"

	"vocalwork/src/internal/entity"
	"vocalwork/src/internal/repository"
	httpError "vocalwork/src/pkg/http-error"
	"vocalwork/src/pkg/utils"
)

const sessionUserKey = "session_user"

// RequireSession rejects requests while no session is established. There is
// exactly one session process-wide.
func RequireSession(store *repository.Store) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		user, ok := store.SessionUser()
		if !ok {
			errObj := httpError.NewUnauthorized()
			errObj.Message = "sign in first"
			return utils.ResponseError(errObj, ctx)
		}
		ctx.Locals(sessionUserKey, user)
		return ctx.Next()
	}
}

// RequireAdmin additionally checks the session user's role.
func RequireAdmin() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		user := GetUser(ctx)
		if user.Role != entity.RoleAdmin {
			errObj := httpError.NewForbidden()
			errObj.Message = "admin role required"
			return utils.ResponseError(errObj, ctx)
		}
		return ctx.Next()
	}
}

// GetUser returns the session user stored by RequireSession.
func GetUser(ctx *fiber.Ctx) entity.User {
	user, _ := ctx.Locals(sessionUserKey).(entity.User)
	return user
}
