package validation

import (
	"strings"

	"alumni-directory-backend/internal/domain"

	"github.com/go-playground/validator/v10"
)

// New returns a validator with the project's custom rules registered.
func New() *validator.Validate {
	v := validator.New()
	RegisterValidators(v)
	return v
}

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("department", ValidDepartment)
	_ = v.RegisterValidation("email_domain", EmailDomain)
}

// ValidDepartment accepts only the known department enum values.
func ValidDepartment(fl validator.FieldLevel) bool {
	return domain.Department(fl.Field().String()).IsValid()
}

// EmailDomain checks that an address belongs to the domain given as the tag param,
// e.g. `email_domain=gmail.com`. An empty param accepts any domain.
func EmailDomain(fl validator.FieldLevel) bool {
	val := strings.ToLower(fl.Field().String())
	want := strings.ToLower(strings.TrimSpace(fl.Param()))
	if val == "" || want == "" {
		return true
	}
	at := strings.LastIndex(val, "@")
	if at < 0 {
		return false
	}
	return val[at+1:] == want
}
