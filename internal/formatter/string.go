package formatter

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/nyaruka/phonenumbers"
	"golang.org/x/text/cases"
)

// FormatPhone formats a phone number to E164 format
func FormatPhone(phone, countryCode string) (string, error) {
	countryCode = strings.ToUpper(countryCode)
	num, err := phonenumbers.Parse(phone, countryCode)
	if err != nil {
		return "", err
	}
	formattedNum := phonenumbers.Format(num, phonenumbers.E164)
	return formattedNum, nil
}

// DisplayPhone renders phone in international notation, or returns it
// untouched when it cannot be parsed for region.
func DisplayPhone(phone, region string) string {
	num, err := phonenumbers.Parse(phone, strings.ToUpper(region))
	if err != nil {
		return phone
	}
	return phonenumbers.Format(num, phonenumbers.INTERNATIONAL)
}

// Initials returns up to two upper-cased leading letters of name's words.
func Initials(name string) string {
	var b strings.Builder
	n := 0
	for _, word := range strings.Fields(name) {
		r, _ := utf8.DecodeRuneInString(word)
		b.WriteRune(unicode.ToUpper(r))
		n++
		if n == 2 {
			break
		}
	}
	return b.String()
}

// Truncate cuts text to max runes and appends an ellipsis.
func Truncate(text string, max int) string {
	if max < 0 || utf8.RuneCountInString(text) <= max {
		return text
	}
	runes := []rune(text)
	return string(runes[:max]) + "..."
}

var folder = cases.Fold()

// Contains reports whether any field contains query, ignoring case.
// An empty query matches everything.
func Contains(query string, fields ...string) bool {
	q := strings.TrimSpace(folder.String(query))
	if q == "" {
		return true
	}
	for _, f := range fields {
		if strings.Contains(folder.String(f), q) {
			return true
		}
	}
	return false
}
