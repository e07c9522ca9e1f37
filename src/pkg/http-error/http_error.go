package httperror

import "github.com/gofiber/fiber/v2"

// CommonError is the error shape every usecase returns to the delivery layer.
// Message is safe to show to the end user; internal detail stays in the logs.
type CommonError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e *CommonError) Error() string {
	return e.Message
}

func NewBadRequest() *CommonError {
	return &CommonError{Code: fiber.StatusBadRequest, Message: "bad request"}
}

func NewUnauthorized() *CommonError {
	return &CommonError{Code: fiber.StatusUnauthorized, Message: "unauthorized"}
}

func NewNotFound() *CommonError {
	return &CommonError{Code: fiber.StatusNotFound, Message: "not found"}
}

func NewConflict() *CommonError {
	return &CommonError{Code: fiber.StatusConflict, Message: "conflict"}
}

func NewUnprocessableEntity() *CommonError {
	return &CommonError{Code: fiber.StatusUnprocessableEntity, Message: "unprocessable entity"}
}

// NewBadGateway covers collaborator failures (geocoder, router, store).
func NewBadGateway() *CommonError {
	return &CommonError{Code: fiber.StatusBadGateway, Message: "upstream service unavailable, please retry"}
}

func NewInternalServerError() *CommonError {
	return &CommonError{Code: fiber.StatusInternalServerError, Message: "internal server error"}
}
