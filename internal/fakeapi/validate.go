package fakeapi

import (
	"errors"
	"net/http"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
)

const weakPassword = "Password must be at least 8 characters long and contain uppercase, lowercase, number, and special character"

var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
		return phonePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("strongpassword", func(fl validator.FieldLevel) bool {
		return strongPassword(fl.Field().String())
	})
	return v
}

// strongPassword accepts 8+ characters drawn from letters, digits and
// @$!%*?& with at least one of each class.
func strongPassword(p string) bool {
	if len(p) < 8 {
		return false
	}
	var lower, upper, digit, special bool
	for _, r := range p {
		switch {
		case r > unicode.MaxASCII:
			return false
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune("@$!%*?&", r):
			special = true
		default:
			return false
		}
	}
	return lower && upper && digit && special
}

// validationDetail turns the first failed rule into the backend's message.
func validationDetail(err error) string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) || len(errs) == 0 {
		return "invalid request body"
	}
	fe := errs[0]
	switch fe.StructField() {
	case "Phone":
		return "Invalid phone number format"
	case "Password", "NewPassword":
		return weakPassword
	case "ConfirmPassword":
		return "Passwords do not match"
	case "UserType":
		return "User type must be one of: individual, company, ngo, investor"
	case "Name":
		return "Name is required"
	}
	return strings.ToLower(fe.Field()) + " is invalid"
}

// valid checks v against its validate tags and answers 422 on failure.
func valid(w http.ResponseWriter, v any) bool {
	if err := validate.Struct(v); err != nil {
		writeDetail(w, http.StatusUnprocessableEntity, validationDetail(err))
		return false
	}
	return true
}
