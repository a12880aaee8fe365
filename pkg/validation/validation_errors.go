package validation

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// FieldLabels maps struct field names to user-friendly labels
var FieldLabels = map[string]string{
	// Initial settings
	"Name":           "Name",
	"StudentID":      "Student ID",
	"EnrollmentYear": "Enrollment year",
	"Department":     "Department",

	// Alumni profile
	"Nickname":         "Nickname",
	"GraduationYear":   "Graduation year",
	"CompanyNames":     "Companies",
	"Remarks":          "Remarks",
	"ContactEmail":     "Contact email",
	"Skills":           "Skills",
	"PortfolioURL":     "Portfolio URL",
	"WorkedOn":         "What I worked on",
	"OfferStory":       "How I got the offer",
	"InterviewTip":     "Interview tip",
	"UsefulCoursework": "Useful coursework",

	// Account
	"LinkedEmail": "Linked email",
	"FileName":    "File name",
	"ContentType": "Content type",
	"URL":         "Avatar URL",
}

// FormatValidationErrors converts validator.ValidationErrors to user-friendly messages
func FormatValidationErrors(err error) []string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(validationErrors))
	for _, e := range validationErrors {
		messages = append(messages, formatSingleError(e))
	}
	return messages
}

// Message joins the formatted errors into a single line.
func Message(err error) string {
	return strings.Join(FormatValidationErrors(err), "; ")
}

func formatSingleError(e validator.FieldError) string {
	label := getFieldLabel(e.StructField())
	param := e.Param()

	switch e.Tag() {
	case "required":
		return fmt.Sprintf("%s: is required", label)
	case "min":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: must be at least %s characters", label, param)
		}
		return fmt.Sprintf("%s: must be at least %s", label, param)
	case "max":
		if e.Kind().String() == "string" {
			return fmt.Sprintf("%s: must be at most %s characters", label, param)
		}
		return fmt.Sprintf("%s: must have at most %s items", label, param)
	case "email":
		return fmt.Sprintf("%s: invalid email format", label)
	case "url":
		return fmt.Sprintf("%s: invalid URL format", label)
	case "department":
		return fmt.Sprintf("%s: unknown department", label)
	case "email_domain":
		return fmt.Sprintf("%s: must be an @%s address", label, param)
	default:
		return fmt.Sprintf("%s: failed validation (%s)", label, e.Tag())
	}
}

// getFieldLabel returns the user-friendly label for a field
func getFieldLabel(fieldName string) string {
	if label, ok := FieldLabels[fieldName]; ok {
		return label
	}
	return formatCamelCase(fieldName)
}

// formatCamelCase converts CamelCase to spaced words
func formatCamelCase(s string) string {
	var result strings.Builder
	for i, r := range s {
		if i > 0 && r >= 'A' && r <= 'Z' {
			result.WriteRune(' ')
		}
		result.WriteRune(r)
	}
	return result.String()
}
