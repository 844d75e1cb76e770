// Package strength evaluates password strength against a fixed rule set.
//
// Two classifiers live here and they are intentionally distinct. Evaluate is the
// checker: five rules, labels Weak through Excellent, with recommendations. Meter is
// the coarse reading shown next to a freshly generated password: six points (length
// counts twice, at 12 and 16 characters) bucketed into Weak, Medium and Strong.
package strength

import "github.com/jonathan/passkit/internal/charclass"

// MinRecommendedLength is the checker's length threshold.
const MinRecommendedLength = 12

// TotalChecks is the number of checker rules.
const TotalChecks = 5

// meterLongLength is the meter's second length tier.
const meterLongLength = 16

// Rule is a single checker predicate with its display text.
type Rule struct {
	Name           string
	Description    string
	Recommendation string
	Test           func(password string) bool
}

var rules = []Rule{
	{
		Name:           "length",
		Description:    "At least 12 characters",
		Recommendation: "Increase the length to 12 or more characters",
		Test:           func(pw string) bool { return charclass.MinLength(pw, MinRecommendedLength) },
	},
	{
		Name:           "uppercase",
		Description:    "Uppercase letters",
		Recommendation: "Add uppercase letters (A-Z)",
		Test:           charclass.HasUpper,
	},
	{
		Name:           "lowercase",
		Description:    "Lowercase letters",
		Recommendation: "Add lowercase letters (a-z)",
		Test:           charclass.HasLower,
	},
	{
		Name:           "digit",
		Description:    "Digits",
		Recommendation: "Add digits (0-9)",
		Test:           charclass.HasDigit,
	},
	{
		Name:           "symbol",
		Description:    "Special characters",
		Recommendation: "Add special characters (e.g. !@#$%)",
		Test:           charclass.HasSymbol,
	},
}

// Rules returns a copy of the checker rules in evaluation order.
func Rules() []Rule {
	out := make([]Rule, len(rules))
	copy(out, rules)
	return out
}
