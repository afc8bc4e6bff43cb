package sanitizer

import (
	"regexp"
	"strings"
	"unicode"
)

var dotRegex = regexp.MustCompile(`\.{2,}`)

// Clean is applied to every string decoded from a request body.
var Clean = Compose(RemoveControlChars, Trim)

// Trim removes leading and trailing whitespace.
func Trim(s string) string {
	return strings.TrimSpace(s)
}

// ToLower converts s to lowercase.
func ToLower(s string) string {
	return strings.ToLower(s)
}

// RemoveControlChars drops control characters other than newline, carriage
// return and tab.
func RemoveControlChars(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsControl(r) && r != '\n' && r != '\r' && r != '\t' {
			return -1
		}
		return r
	}, s)
}

// NormalizeEmail trims and lowercases an address and collapses repeated dots
// in its local part. Values without exactly one "@" are only trimmed and
// lowercased so validation still sees them.
func NormalizeEmail(email string) string {
	email = Apply(email, Trim, ToLower)

	local, domain, ok := strings.Cut(email, "@")
	if !ok || strings.Contains(domain, "@") {
		return email
	}

	local = strings.Trim(dotRegex.ReplaceAllString(local, "."), ".")
	return local + "@" + domain
}
