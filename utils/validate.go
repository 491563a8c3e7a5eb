package utils

import (
	"regexp"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`^(([^<>()\[\]\\.,;:\s@"]+(\.[^<>()\[\]\\.,;:\s@"]+)*)|(".+"))@((\[[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\.[0-9]{1,3}\])|(([a-zA-Z\-0-9]+\.)+[a-zA-Z]{2,}))$`)
	nameRe  = regexp.MustCompile(`^[a-zA-Z\s'-]+$`)
	phoneRe = regexp.MustCompile(`^\d{10}$`)
)

func ValidateEmail(email string) bool {
	return emailRe.MatchString(email)
}

// ValidateName accepts letters, spaces, hyphens and apostrophes.
func ValidateName(name string) bool {
	return strings.TrimSpace(name) != "" && nameRe.MatchString(name)
}

// ValidatePhone accepts exactly 10 bare digits, no separators.
func ValidatePhone(phone string) bool {
	return phoneRe.MatchString(phone)
}
