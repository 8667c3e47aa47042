// Package validate implements the console's pre-submission form checks.
// These mirror the backend's validation loosely, not identically; the
// backend remains the authority and its rejections are mapped back onto
// form fields via MapAPIError.
package validate

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	"rental-console/internal/domain"
)

// Deliberately permissive: non-whitespace local part, @, domain with a dot
// and a non-whitespace TLD. Not RFC 5322 and not meant to be.
var emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)

// Errors maps form field names to a single human-readable problem each.
type Errors map[string]string

// Valid reports whether no field failed.
func (e Errors) Valid() bool { return len(e) == 0 }

// Add records a problem for a field, keeping the first one reported.
func (e Errors) Add(field, msg string) {
	if _, seen := e[field]; !seen {
		e[field] = msg
	}
}

// Required checks a string field is non-empty after trimming whitespace.
func (e Errors) Required(field, value, label string) {
	if strings.TrimSpace(value) == "" {
		e.Add(field, label+" is required")
	}
}

// Email checks the permissive email format; empty values are left to
// Required.
func (e Errors) Email(field, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	if !emailPattern.MatchString(strings.TrimSpace(value)) {
		e.Add(field, "Email is invalid")
	}
}

// DateOrder requires end to be strictly after start.
func (e Errors) DateOrder(field string, start, end domain.Timestamp) {
	if start.IsZero() || end.IsZero() {
		return
	}
	if !end.Time.After(start.Time) {
		e.Add(field, "End date must be after start date")
	}
}

// IntRange checks an integer field against inclusive bounds.
func (e Errors) IntRange(field string, value, min, max int32, label string) {
	if value < min || value > max {
		e.Add(field, fmt.Sprintf("%s must be between %d and %d", label, min, max))
	}
}

// PositiveAmount requires a money amount greater than zero.
func (e Errors) PositiveAmount(field string, value domain.Cents, label string) {
	if value <= 0 {
		e.Add(field, label+" must be greater than zero")
	}
}

// NonNegativeAmount rejects negative money amounts.
func (e Errors) NonNegativeAmount(field string, value domain.Cents, label string) {
	if value < 0 {
		e.Add(field, label+" cannot be negative")
	}
}

// ValidEmail reports whether a standalone address passes the email check.
func ValidEmail(address string) bool {
	return emailPattern.MatchString(strings.TrimSpace(address))
}

// MaxVehicleYear is the newest model year accepted, next year's models
// included.
func MaxVehicleYear(now time.Time) int32 {
	return int32(now.Year() + 1)
}
