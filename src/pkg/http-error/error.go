package httpError

import "net/http"

// ErrorObject is the error carrier attached to utils.Result by use cases.
// Controllers map Code to the HTTP status of the response.
type ErrorObject struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *ErrorObject) Error() string {
	return e.Message
}

func NewBadRequest() *ErrorObject {
	return &ErrorObject{Code: http.StatusBadRequest, Message: "bad request"}
}

func NewUnauthorized() *ErrorObject {
	return &ErrorObject{Code: http.StatusUnauthorized, Message: "unauthorized"}
}

func NewForbidden() *ErrorObject {
	return &ErrorObject{Code: http.StatusForbidden, Message: "forbidden"}
}

func NewNotFound() *ErrorObject {
	return &ErrorObject{Code: http.StatusNotFound, Message: "not found"}
}

func NewConflict() *ErrorObject {
	return &ErrorObject{Code: http.StatusConflict, Message: "conflict"}
}

func NewInternalServerError() *ErrorObject {
	return &ErrorObject{Code: http.StatusInternalServerError, Message: "internal server error"}
}
