package config

import (
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/variants/internal/variant"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance configures and returns the shared validator instance used across the config package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("axis_name", func(fl validator.FieldLevel) bool {
			return variant.ValidateAxisName(fl.Field().String()) == nil
		})

		_ = v.RegisterValidation("token", func(fl validator.FieldLevel) bool {
			return variant.ValidateToken("", fl.Field().String()) == nil
		})

		validateInst = v
	})

	return validateInst
}

// GetValidator returns a configured validator instance for use outside the config package.
func GetValidator() *validator.Validate {
	return validatorInstance()
}
