package dto

import (
	"github.com/SscSPs/trt_portal/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators installs the custom binding tags used by the DTOs
// ("fiscalyear") on gin's validator engine.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return nil
	}
	return RegisterOn(v)
}

// RegisterOn installs the custom tags on v.
func RegisterOn(v *validator.Validate) error {
	return v.RegisterValidation("fiscalyear", validateFiscalYear)
}

func validateFiscalYear(fl validator.FieldLevel) bool {
	return domain.ValidFiscalYear(int(fl.Field().Int()))
}
