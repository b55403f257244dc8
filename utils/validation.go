// utils/validation.go
package utils

import (
	"regexp"
	"strings"
)

var (
	dateRegex = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timeRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

// ValidatePhone checks if a phone number is in a valid format
func ValidatePhone(phone string) bool {
	// Clean the phone number
	cleaned := strings.ReplaceAll(phone, " ", "")
	cleaned = strings.ReplaceAll(cleaned, "-", "")
	cleaned = strings.ReplaceAll(cleaned, "(", "")
	cleaned = strings.ReplaceAll(cleaned, ")", "")

	// Allows an optional + prefix, or a leading 0 for local numbers,
	// followed by 7-15 digits
	regex := `^(\+|0)?[1-9]\d{1,14}$`
	match, _ := regexp.MatchString(regex, cleaned)
	return match
}

// ValidateDate checks a plain calendar day string (YYYY-MM-DD). Dates are
// stored and compared as strings, never as timestamps.
func ValidateDate(date string) bool {
	return dateRegex.MatchString(date)
}

// ValidateTimeOfDay checks an optional local time-of-day string (HH:MM).
func ValidateTimeOfDay(t string) bool {
	if t == "" {
		return true
	}
	return timeRegex.MatchString(t)
}
