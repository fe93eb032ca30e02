package serverutils

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateRequest checks a request DTO against its validate tags and
// converts failures into a 400 ApiError. Field-level detail stays in the
// server log; the client only sees a generic message.
func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		return &ApiError{Status: 400, Message: "invalid request body"}
	}
	return nil
}
