package dto

import (
	"time"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// validPaymentMonth checks the "YYYY-MM" payment month label.
func validPaymentMonth(fl validator.FieldLevel) bool {
	_, err := time.Parse("2006-01", fl.Field().String())
	return err == nil
}

// RegisterCustomValidators wires the custom binding validators into gin's
// validator engine. Called once during startup.
func RegisterCustomValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return v.RegisterValidation("paymentmonth", validPaymentMonth)
}
