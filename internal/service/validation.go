package service

import (
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

const minPasswordLength = 6

// Hint texts shown next to the input fields
const (
	HintEmailEmpty       = "Email is Empty"
	HintEmailInvalid     = "Invalid Email"
	HintPasswordEmpty    = "Password is Empty"
	HintPasswordTooShort = "Enter at least 6 characters"
)

// validator.Validate caches rule parsing and is safe for concurrent use
var validate = validator.New()

// IsValidEmail reports whether s is a well-formed email address with a dotted domain
func IsValidEmail(s string) bool {
	if s == "" {
		return false
	}
	if err := validate.Var(s, "email"); err != nil {
		return false
	}

	// validator accepts quoted local parts; the domain must still carry a dot
	at := strings.LastIndexByte(s, '@')
	return at > 0 && strings.Contains(s[at+1:], ".")
}

// IsValidPassword reports whether s is long enough to be submitted
func IsValidPassword(s string) bool {
	return utf8.RuneCountInString(s) >= minPasswordLength
}

// PasswordHint returns the live hint for the password field
func PasswordHint(s string) string {
	switch {
	case s == "":
		return HintPasswordEmpty
	case utf8.RuneCountInString(s) < minPasswordLength:
		return HintPasswordTooShort
	default:
		return ""
	}
}

// EmailHint returns the hint committed for the email field on submit
func EmailHint(s string, isValid bool) string {
	switch {
	case s == "":
		return HintEmailEmpty
	case !isValid:
		return HintEmailInvalid
	default:
		return ""
	}
}
