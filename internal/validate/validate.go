// Package validate holds the client-side field checks shared by the login,
// register, profile and address forms.
package validate

import (
	"regexp"
	"strings"
)

var (
	emailRe = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
	phoneRe = regexp.MustCompile(`^[6-9][0-9]{9}$`)
)

func Email(s string) bool {
	return emailRe.MatchString(s)
}

// Phone strips non-digit characters, then requires exactly 10 digits with a
// leading 6-9 (Indian mobile numbering).
func Phone(s string) bool {
	clean := digitsOnly(s)
	return len(clean) == 10 && phoneRe.MatchString(clean)
}

// Pincode requires exactly 6 digits.
func Pincode(s string) bool {
	clean := digitsOnly(s)
	return len(clean) == 6 && clean == s
}

func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
