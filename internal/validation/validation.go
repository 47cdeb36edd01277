// Package validation holds pure shape predicates used by the services.
// Nothing here performs I/O or returns an error.
package validation

import (
	"regexp"
	"unicode"
)

var (
	idRe    = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
	emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
)

// IsID reports whether s has the 36-character hex-and-hyphen UUID shape.
func IsID(s string) bool {
	return len(s) == 36 && idRe.MatchString(s)
}

// IsEmail reports whether s matches a basic local@domain.tld pattern.
func IsEmail(s string) bool {
	return emailRe.MatchString(s)
}

// IsStrongPassword reports whether s is at least 6 runes long and
// contains an uppercase letter, a digit and a non-alphanumeric symbol.
func IsStrongPassword(s string) bool {
	var length int
	var upper, digit, symbol bool
	for _, r := range s {
		length++
		switch {
		case unicode.IsUpper(r):
			upper = true
		case unicode.IsDigit(r):
			digit = true
		case !unicode.IsLetter(r) && !unicode.IsDigit(r):
			symbol = true
		}
	}
	return length >= 6 && upper && digit && symbol
}
