package utils

import (
	"encoding/json"

	"github.com/gofiber/fiber/v2"

	httpError "vocalwork/src/pkg/http-error"
)

// Result is the uniform return value of every use case: either Data or Error
// is set, never both.
type Result struct {
	Data  interface{}
	Error error
}

type responseBody struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func Response(data interface{}, message string, code int, ctx *fiber.Ctx) error {
	return ctx.Status(code).JSON(responseBody{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func ResponseError(err error, ctx *fiber.Ctx) error {
	code := fiber.StatusInternalServerError
	if errObj, ok := err.(*httpError.ErrorObject); ok {
		code = errObj.Code
	}
	return ctx.Status(code).JSON(responseBody{
		Success: false,
		Message: err.Error(),
	})
}

// ConvertString renders any value as JSON for log metadata.
func ConvertString(v interface{}) string {
	data, err := json.Marshal(v)
	if err != nil {
		return ""
	}
	return string(data)
}
