package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type mccSubject struct {
	Code int `json:"code" validate:"mcc_code"`
}

type dateSubject struct {
	Date string `json:"date" validate:"ddmmyyyy"`
}

func TestValidateMCCCode(t *testing.T) {
	v := NewValidator().GetValidate()

	assert.NoError(t, v.Struct(mccSubject{Code: 5411}))
	assert.NoError(t, v.Struct(mccSubject{Code: 1}))
	assert.NoError(t, v.Struct(mccSubject{Code: 9999}))

	assert.Error(t, v.Struct(mccSubject{Code: 0}))
	assert.Error(t, v.Struct(mccSubject{Code: -5}))
	assert.Error(t, v.Struct(mccSubject{Code: 10000}))
}

func TestValidateDDMMYYYY(t *testing.T) {
	v := NewValidator().GetValidate()

	assert.NoError(t, v.Struct(dateSubject{Date: "15/06/2025"}))
	assert.NoError(t, v.Struct(dateSubject{Date: "1/6/2025"}))

	assert.Error(t, v.Struct(dateSubject{Date: ""}))
	assert.Error(t, v.Struct(dateSubject{Date: "2025-06-15"}))
	assert.Error(t, v.Struct(dateSubject{Date: "32/01/2025"}))
}

func TestGetValidatorSingleton(t *testing.T) {
	first := GetValidator()
	second := GetValidator()

	assert.Same(t, first, second)
}
