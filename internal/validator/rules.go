package validator

import (
	"net/url"
	"regexp"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	phoneRegex = `^\+?[0-9().\-\s]+$`

	phoneMinDigits = 7
	phoneMaxDigits = 15
)

var (
	// PhoneRgx accepts an optional leading plus followed by digits and the
	// separators "-", ".", space and parentheses.
	PhoneRgx = regexp.MustCompile(phoneRegex)
)

// NotBlank returns true if a string is not empty or contains only whitespace.
func NotBlank(value string) bool {
	return strings.TrimSpace(value) != ""
}

// MaxRunes returns true if a string is less than or equal to a maximum number of n
func MaxRunes(value string, n int) bool {
	return utf8.RuneCountInString(value) <= n
}

// In returns true if a value is in a list of values.
func In[T comparable](value T, list ...T) bool {
	for i := range list {
		if value == list[i] {
			return true
		}
	}
	return false
}

// NoDuplicates returns true if all the values in a slice are unique.
func NoDuplicates[T comparable](values []T) bool {
	uniqueValues := make(map[T]bool)

	for _, value := range values {
		uniqueValues[value] = true
	}

	return len(values) == len(uniqueValues)
}

// IsURL returns true if a string is a valid URL.
func IsURL(value string) bool {
	u, err := url.ParseRequestURI(value)
	if err != nil {
		return false
	}

	return u.Scheme != "" && u.Host != ""
}

// IsValidTimeFormat returns true if a string is a valid HH:mm time.
func IsValidTimeFormat(timeStr string) bool {
	if len(timeStr) != len("15:04") {
		return false
	}
	_, err := time.Parse("15:04", timeStr)
	return err == nil
}

// IsPhone returns true if value matches PhoneRgx and holds between 7 and 15 digits.
func IsPhone(value string) bool {
	if !PhoneRgx.MatchString(value) {
		return false
	}
	digits := 0
	for _, r := range value {
		if unicode.IsDigit(r) {
			digits++
		}
	}
	return digits >= phoneMinDigits && digits <= phoneMaxDigits
}

// IsObjectID returns true if value is a 24 character hex object id.
func IsObjectID(value string) bool {
	return primitive.IsValidObjectID(value)
}
