package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"cardlytics/internal/dates"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// GetValidate returns the underlying validator.Validate instance for use with Echo
func (v *Validator) GetValidate() *validator.Validate {
	return v.validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("mcc_code", validateMCCCode)
	_ = v.RegisterValidation("ddmmyyyy", validateDDMMYYYY)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Custom validation functions

// validateMCCCode validates that a merchant category code falls in the
// four-digit ISO 18245 range
func validateMCCCode(fl validator.FieldLevel) bool {
	code := fl.Field().Int()
	return code >= 1 && code <= 9999
}

// validateDDMMYYYY validates that a date string parses in the DD/MM/YYYY
// form used throughout the transaction store
func validateDDMMYYYY(fl validator.FieldLevel) bool {
	value := fl.Field().String()
	if value == "" {
		return false
	}
	_, err := dates.Parse(value)
	return err == nil
}
