package services

import (
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	MinPasswordLength    = 8
	MaxDescriptionLength = 200

	passwordSymbols = "!@#$%^&*"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func validateCredentials(email, password string) error {
	if email == "" {
		return invalid("email", "Email is required")
	}
	if password == "" {
		return invalid("password", "Password is required")
	}
	if utf8.RuneCountInString(password) < MinPasswordLength {
		return invalid("password", "Password must be at least 8 characters")
	}
	return nil
}

func validateEmail(email string) error {
	if !emailPattern.MatchString(email) {
		return invalid("email", "Invalid email format")
	}
	return nil
}

// validatePasswordPolicy enforces the signup complexity rules. Passwords
// are limited to letters, digits and the symbols in passwordSymbols.
func validatePasswordPolicy(password string) error {
	var lower, upper, digit, symbol bool
	for _, r := range password {
		switch {
		case r > unicode.MaxASCII:
			return invalid("password", "Password may only contain letters, digits and !@#$%^&*")
		case unicode.IsLower(r):
			lower = true
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case strings.ContainsRune(passwordSymbols, r):
			symbol = true
		default:
			return invalid("password", "Password may only contain letters, digits and !@#$%^&*")
		}
	}

	switch {
	case !lower:
		return invalid("password", "Password must contain a lowercase letter")
	case !upper:
		return invalid("password", "Password must contain an uppercase letter")
	case !digit:
		return invalid("password", "Password must contain a number")
	case !symbol:
		return invalid("password", "Password must contain a special character (!@#$%^&*)")
	}
	return nil
}

func validateDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return ErrDescriptionRequired
	}
	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return ErrDescriptionTooLong
	}
	return nil
}
