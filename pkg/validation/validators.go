package validation

import (
	"regexp"

	"go-talent-intake/internal/domain"

	"github.com/go-playground/validator/v10"
)

// Indian mobile numbers: ten digits, first digit 6-9
var indianMobileRegex = regexp.MustCompile(`^[6-9][0-9]{9}$`)

// New returns a validator with the custom registration tags installed.
func New(catalog domain.JobCatalog) *validator.Validate {
	v := validator.New()
	RegisterValidators(v, catalog)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate, catalog domain.JobCatalog) {
	_ = v.RegisterValidation("indian_mobile", IndianMobile)
	_ = v.RegisterValidation("job_category", JobCategory(catalog))
	_ = v.RegisterValidation("job_role", JobRole(catalog))
}

// IsIndianMobile reports whether phone is a well-formed 10-digit mobile number.
func IsIndianMobile(phone string) bool {
	return indianMobileRegex.MatchString(phone)
}

// IndianMobile validates the phone number format
func IndianMobile(fl validator.FieldLevel) bool {
	val := fl.Field().String()
	if val == "" {
		return true // Optional, use required if needed
	}
	return IsIndianMobile(val)
}

// JobCategory validates that the category exists in the catalog
func JobCategory(catalog domain.JobCatalog) validator.Func {
	return func(fl validator.FieldLevel) bool {
		val := fl.Field().String()
		if val == "" {
			return true
		}
		return catalog.HasCategory(val)
	}
}

// JobRole validates that the role belongs to the sibling JobCategory field.
// An unknown category is reported by job_category alone, so it passes here.
func JobRole(catalog domain.JobCatalog) validator.Func {
	return func(fl validator.FieldLevel) bool {
		role := fl.Field().String()
		if role == "" {
			return true
		}
		categoryField := fl.Parent().FieldByName("JobCategory")
		if !categoryField.IsValid() {
			return false
		}
		category := categoryField.String()
		if category == "" || !catalog.HasCategory(category) {
			return true
		}
		return catalog.HasRole(category, role)
	}
}
