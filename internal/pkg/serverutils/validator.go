package serverutils

import (
	"notemark-be/internal/apperror"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

func ValidateRequest(req interface{}) error {
	if err := validate.Struct(req); err != nil {
		if validationErrors, ok := err.(validator.ValidationErrors); ok && len(validationErrors) > 0 {
			first := validationErrors[0]
			return apperror.Validation("field %s failed on the '%s' rule", first.Field(), first.Tag())
		}
		return apperror.Validation("invalid request body")
	}
	return nil
}
