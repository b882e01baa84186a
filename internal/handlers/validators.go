package handlers

import (
	"fmt"

	"github.com/SscSPs/bank_backoffice_app/internal/core/domain"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// RegisterValidators adds the bank-specific tags to gin's validator:
// "govbureau" for domain.GovBureau and "sex" for domain.Sex.
func RegisterValidators() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return fmt.Errorf("unexpected validator engine %T", binding.Validator.Engine())
	}
	if err := v.RegisterValidation("govbureau", validateGovBureau); err != nil {
		return fmt.Errorf("register govbureau validator: %w", err)
	}
	if err := v.RegisterValidation("sex", validateSex); err != nil {
		return fmt.Errorf("register sex validator: %w", err)
	}
	return nil
}

func validateGovBureau(fl validator.FieldLevel) bool {
	return domain.GovBureau(fl.Field().String()).IsValid()
}

func validateSex(fl validator.FieldLevel) bool {
	switch domain.Sex(fl.Field().String()) {
	case domain.Male, domain.Female, domain.Other:
		return true
	}
	return false
}
