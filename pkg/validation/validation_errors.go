package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Message keys are "<StructField>.<tag>"; a bare "<StructField>" entry is the
// fallback for any tag on that field.
var FieldMessages = map[string]string{
	"FullName":                 "Full name is required (minimum 2 characters)",
	"Age":                      "Age must be between 16 and 80",
	"PhoneNumber":              "Please enter a valid 10-digit phone number",
	"Gender":                   "Please select a valid gender",
	"City":                     "City is required",
	"JobCategory.required":     "Please select a job category",
	"JobCategory.job_category": "Please select a valid job category",
	"JobCategory":              "Please select a job category",
	"JobRole.required":         "Please select a job role",
	"JobRole.job_role":         "Please select a job role from the selected category",
	"JobRole":                  "Please select a job role",
	"YearsExperience":          "Years of experience must be between 0 and 50",
	"CurrentSalary":            "Current salary cannot be negative",
	"CurrentSalary.lte":        "Current salary is too large",
}

// MsgDuplicatePhone is appended when the phone number is already on file.
const MsgDuplicatePhone = "This phone number is already registered"

// FormatValidationErrors converts validator.ValidationErrors to user-friendly
// messages, one per failing field, in struct field order.
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Not a validation error, return generic message
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	seen := make(map[string]bool, len(validationErrors))
	for _, e := range validationErrors {
		if seen[e.StructField()] {
			continue
		}
		seen[e.StructField()] = true
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

func formatSingleError(e validator.FieldError) string {
	field := e.StructField()
	if msg, ok := FieldMessages[field+"."+e.Tag()]; ok {
		return msg
	}
	if msg, ok := FieldMessages[field]; ok {
		return msg
	}
	return fmt.Sprintf("%s is invalid", e.Field())
}
