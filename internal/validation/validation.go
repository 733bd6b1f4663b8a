package validation

import (
	"fmt"
	"regexp"
	"strings"
)

// Violation codes
const (
	CodeRequired         = "REQUIRED"
	CodeTooLong          = "TOO_LONG"
	CodeInvalidFormat    = "INVALID_FORMAT"
	CodeOutOfRange       = "OUT_OF_RANGE"
	CodeNotDivisible     = "NOT_DIVISIBLE"
	CodeAlreadyExists    = "ALREADY_EXISTS"
	CodeInvalidReference = "INVALID_REFERENCE"
)

var hexColorPattern = regexp.MustCompile(`^#[A-Fa-f0-9]{6}$`)

// Violation describes a single broken rule on a single field.
type Violation struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Violations is the aggregated result of a validator chain. It lists every
// rule that failed, not just the first one.
type Violations []Violation

// Error implements the error interface
func (v Violations) Error() string {
	parts := make([]string, len(v))
	for i, violation := range v {
		parts[i] = violation.Field + ": " + violation.Message
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Has reports whether any violation carries the given code.
func (v Violations) Has(code string) bool {
	for _, violation := range v {
		if violation.Code == code {
			return true
		}
	}
	return false
}

// Collect gathers the non-nil results of a validator chain. It returns nil
// when every rule passed, so the result can be compared against nil directly.
func Collect(checks ...*Violation) Violations {
	var violations Violations
	for _, check := range checks {
		if check != nil {
			violations = append(violations, *check)
		}
	}
	return violations
}

// Required fails when the value is empty.
func Required(field, value string) *Violation {
	if value != "" {
		return nil
	}
	return &Violation{Field: field, Code: CodeRequired, Message: "is required"}
}

// MaxLength fails when the value is longer than max characters.
func MaxLength(field, value string, max int) *Violation {
	if len([]rune(value)) <= max {
		return nil
	}
	return &Violation{
		Field:   field,
		Code:    CodeTooLong,
		Message: fmt.Sprintf("must be at most %d characters", max),
	}
}

// HexColor fails unless the value is a '#' followed by exactly six hex
// digits, e.g. #AABBCC. No shorthand, no alpha channel.
func HexColor(field, value string) *Violation {
	if hexColorPattern.MatchString(value) {
		return nil
	}
	return &Violation{
		Field:   field,
		Code:    CodeInvalidFormat,
		Message: "must be a valid hex color code (e.g. #AABBCC)",
	}
}

// IntRange fails unless min <= value <= max.
func IntRange(field string, value, min, max int) *Violation {
	if value >= min && value <= max {
		return nil
	}
	return &Violation{
		Field:   field,
		Code:    CodeOutOfRange,
		Message: fmt.Sprintf("must be between %d and %d", min, max),
	}
}

// NonNegative fails when the value is below zero.
func NonNegative(field string, value int) *Violation {
	if value >= 0 {
		return nil
	}
	return &Violation{Field: field, Code: CodeOutOfRange, Message: "must be zero or greater"}
}

// DivisibleBy fails unless value is a multiple of n.
func DivisibleBy(field string, value, n int) *Violation {
	if value%n == 0 {
		return nil
	}
	return &Violation{
		Field:   field,
		Code:    CodeNotDivisible,
		Message: fmt.Sprintf("%d is not divisible by %d", value, n),
	}
}

// OneOf fails unless the value is one of the allowed choices.
func OneOf(field, value string, allowed ...string) *Violation {
	for _, choice := range allowed {
		if value == choice {
			return nil
		}
	}
	return &Violation{
		Field:   field,
		Code:    CodeInvalidFormat,
		Message: "must be one of " + strings.Join(allowed, ", "),
	}
}

// Duplicate reports a uniqueness violation surfaced by the persistence layer.
func Duplicate(field, message string) *Violation {
	return &Violation{Field: field, Code: CodeAlreadyExists, Message: message}
}

// MissingReference reports a parent reference that does not resolve.
func MissingReference(field string) *Violation {
	return &Violation{
		Field:   field,
		Code:    CodeInvalidReference,
		Message: "referenced entity does not exist",
	}
}
