// Package charclass provides the character sets and membership predicates shared by
// password generation and strength evaluation.
package charclass

import "unicode/utf8"

// Canonical character sets used to build generation alphabets.
const (
	Uppercase = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	Lowercase = "abcdefghijklmnopqrstuvwxyz"
	Digits    = "0123456789"
	Symbols   = "!@#$%^&*()_+-=[]{}|;:,.<>?"
)

// Class identifies one of the four character classes.
type Class int

const (
	ClassUpper Class = iota
	ClassLower
	ClassDigit
	ClassSymbol
)

// Classes lists every class in alphabet order.
var Classes = []Class{ClassUpper, ClassLower, ClassDigit, ClassSymbol}

// String returns the class name.
func (c Class) String() string {
	switch c {
	case ClassUpper:
		return "uppercase"
	case ClassLower:
		return "lowercase"
	case ClassDigit:
		return "digit"
	case ClassSymbol:
		return "symbol"
	default:
		return "unknown"
	}
}

// Set returns the canonical generation set for the class.
func (c Class) Set() string {
	switch c {
	case ClassUpper:
		return Uppercase
	case ClassLower:
		return Lowercase
	case ClassDigit:
		return Digits
	case ClassSymbol:
		return Symbols
	default:
		return ""
	}
}

// IsUpper reports whether r is an ASCII uppercase letter.
func IsUpper(r rune) bool { return r >= 'A' && r <= 'Z' }

// IsLower reports whether r is an ASCII lowercase letter.
func IsLower(r rune) bool { return r >= 'a' && r <= 'z' }

// IsDigit reports whether r is an ASCII digit.
func IsDigit(r rune) bool { return r >= '0' && r <= '9' }

// IsSymbol reports whether r falls outside A-Z, a-z and 0-9.
// Non-ASCII letters, control characters and invalid UTF-8 all count as symbols.
func IsSymbol(r rune) bool { return !IsUpper(r) && !IsLower(r) && !IsDigit(r) }

// Classify maps a rune to its class.
func Classify(r rune) Class {
	switch {
	case IsUpper(r):
		return ClassUpper
	case IsLower(r):
		return ClassLower
	case IsDigit(r):
		return ClassDigit
	default:
		return ClassSymbol
	}
}

// HasUpper reports whether s contains an uppercase letter.
func HasUpper(s string) bool { return Has(s, ClassUpper) }

// HasLower reports whether s contains a lowercase letter.
func HasLower(s string) bool { return Has(s, ClassLower) }

// HasDigit reports whether s contains a digit.
func HasDigit(s string) bool { return Has(s, ClassDigit) }

// HasSymbol reports whether s contains a symbol.
func HasSymbol(s string) bool { return Has(s, ClassSymbol) }

// Length returns the number of code points in s.
func Length(s string) int { return utf8.RuneCountInString(s) }

// MinLength reports whether s has at least n code points.
func MinLength(s string, n int) bool { return Length(s) >= n }

// Has reports whether s contains a character of class c.
func Has(s string, c Class) bool {
	for _, r := range s {
		if Classify(r) == c {
			return true
		}
	}
	return false
}
