package serverutils

import "github.com/gofiber/fiber/v2"

// ApiError carries an HTTP status alongside a flat, client-safe message.
// Anything else that reaches the error handler becomes a generic 500.
type ApiError struct {
	Status  int
	Message string
}

func (e *ApiError) Error() string {
	return e.Message
}

func NewNotFound(message string) *ApiError {
	return &ApiError{Status: fiber.StatusNotFound, Message: message}
}

func NewBadRequest(message string) *ApiError {
	return &ApiError{Status: fiber.StatusBadRequest, Message: message}
}
