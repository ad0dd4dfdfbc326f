package validation

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly labels
var FieldLabels = map[string]string{
	// Auth fields
	"Username":        "Username",
	"Email":           "Email",
	"Password":        "Password",
	"PasswordConfirm": "Password confirmation",
	"AccountType":     "Account type",

	// Profile fields
	"PhoneNumber":        "Phone number",
	"Education":          "Education",
	"Skills":             "Skills",
	"Experience":         "Work experience",
	"CompanyName":        "Company name",
	"CompanyDescription": "Company description",
	"CompanyWebsite":     "Company website",
	"CompanyAddress":     "Company address",
	"CompanyPhone":       "Company phone",
	"CompanyEmail":       "Company email",

	// Vacancy fields
	"Title":              "Title",
	"Description":        "Description",
	"Requirements":       "Requirements",
	"Responsibilities":   "Responsibilities",
	"Benefits":           "Benefits",
	"SalaryMin":          "Minimum salary",
	"SalaryMax":          "Maximum salary",
	"EmploymentType":     "Employment type",
	"ExperienceRequired": "Required experience",
	"CategorySlug":       "Category",

	// Application fields
	"CoverLetter": "Cover letter",
	"ResumeURL":   "Resume",
	"Status":      "Status",

	// Contact / content fields
	"Name":    "Name",
	"Subject": "Subject",
	"Message": "Message",
	"Content": "Content",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var messages []string

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}

	return messages
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.Field())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: required", label)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: at least %s characters", label, param)
		}
		return fmt.Sprintf("%s: must be at least %s", label, param)
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: at most %s characters", label, param)
		}
		return fmt.Sprintf("%s: must be at most %s", label, param)
	case "oneof":
		return fmt.Sprintf("%s: must be one of: %s", label, param)
	case "email":
		return fmt.Sprintf("%s: invalid email format", label)
	case "url":
		return fmt.Sprintf("%s: invalid URL format", label)
	case "valid_name":
		return fmt.Sprintf("%s: only letters, spaces and common punctuation allowed", label)
	case "valid_phone":
		return fmt.Sprintf("%s: invalid phone format (7-15 digits, with/without +)", label)
	case "eqfield":
		return fmt.Sprintf("%s: must match %s", label, getFieldLabel(param))
	case "gtefield":
		return fmt.Sprintf("%s: must be greater than or equal to %s", label, getFieldLabel(param))
	default:
		return fmt.Sprintf("%s: validation failed (%s)", label, e.Tag())
	}
}

func getFieldLabel(field string) string {
	if label, ok := FieldLabels[field]; ok {
		return label
	}
	return field
}
