package validation

import (
	"reflect"
	"regexp"
	"strings"

	"domus-api/internal/models"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
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

	_ = v.RegisterValidation("money_amount", validateMoneyAmount)
	_ = v.RegisterValidation("cost_category", validateCostCategory)
	_ = v.RegisterValidation("income_source", validateIncomeSource)
	_ = v.RegisterValidation("investment_type", validateInvestmentType)
	_ = v.RegisterValidation("frequency", validateFrequency)
	_ = v.RegisterValidation("record_id", validateRecordID)

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

// validateMoneyAmount validates that a monetary string parses as a
// non-negative decimal with at most 2 decimal places
func validateMoneyAmount(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	if raw == "" {
		return false
	}

	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return false
	}
	if amount.IsNegative() {
		return false
	}

	return amount.Exponent() >= -2
}

// validateCostCategory validates against the fixed expense category set.
// Empty is allowed; pair with required when the field is mandatory.
func validateCostCategory(fl validator.FieldLevel) bool {
	category := fl.Field().String()
	if category == "" {
		return true
	}
	return models.IsValidCostCategory(category)
}

// validateIncomeSource validates against the fixed income source set
func validateIncomeSource(fl validator.FieldLevel) bool {
	source := fl.Field().String()
	if source == "" {
		return true
	}
	return models.IsValidIncomeSource(source)
}

// validateInvestmentType validates against the fixed investment type set
func validateInvestmentType(fl validator.FieldLevel) bool {
	investmentType := fl.Field().String()
	if investmentType == "" {
		return true
	}
	return models.IsValidInvestmentType(investmentType)
}

// validateFrequency validates the recurrence frequency
func validateFrequency(fl validator.FieldLevel) bool {
	return models.IsValidFrequency(fl.Field().String())
}

// validateRecordID validates that a record ID is a valid UUID v4
func validateRecordID(fl validator.FieldLevel) bool {
	recordID := fl.Field().String()
	if recordID == "" {
		return false
	}

	matched, _ := regexp.MatchString(`^[0-9a-f]{8}-[0-9a-f]{4}-4[0-9a-f]{3}-[89ab][0-9a-f]{3}-[0-9a-f]{12}$`, recordID)
	return matched
}
