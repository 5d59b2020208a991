package validator

import (
	"fmt"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/jkimaro/washpark-api/internal/model"
)

// RegisterCustomValidations wires the domain enum checks into gin's
// binding engine so request structs can use them as binding tags.
func RegisterCustomValidations() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected binding validator engine")
	}

	validations := map[string]validator.Func{
		"vehicle_type": func(fl validator.FieldLevel) bool {
			return model.VehicleType(fl.Field().String()).Valid()
		},
		"vehicle_color": func(fl validator.FieldLevel) bool {
			return model.VehicleColor(fl.Field().String()).Valid()
		},
		"payment_method": func(fl validator.FieldLevel) bool {
			return model.PaymentMethod(fl.Field().String()).Valid()
		},
	}

	for tag, fn := range validations {
		if err := v.RegisterValidation(tag, fn); err != nil {
			return fmt.Errorf("failed to register %s validation: %w", tag, err)
		}
	}

	return nil
}
