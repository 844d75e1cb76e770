package types

import (
	"fmt"
	"strings"
)

// Label is the checker's qualitative strength bucket.
type Label string

const (
	LabelNone      Label = "None"
	LabelWeak      Label = "Weak"
	LabelMedium    Label = "Medium"
	LabelGood      Label = "Good"
	LabelExcellent Label = "Excellent"
)

var labelRank = map[Label]int{
	LabelNone:      0,
	LabelWeak:      1,
	LabelMedium:    2,
	LabelGood:      3,
	LabelExcellent: 4,
}

// Rank orders labels from None (0) to Excellent (4). Unknown labels rank -1.
func (l Label) Rank() int {
	if r, ok := labelRank[l]; ok {
		return r
	}
	return -1
}

// AtLeast reports whether l is the same as or stronger than min.
func (l Label) AtLeast(min Label) bool {
	return l.Rank() >= min.Rank()
}

// ParseLabel resolves a label name case-insensitively.
func ParseLabel(s string) (Label, error) {
	for l := range labelRank {
		if strings.EqualFold(string(l), strings.TrimSpace(s)) {
			return l, nil
		}
	}
	return "", fmt.Errorf("unknown strength label %q (want one of None, Weak, Medium, Good, Excellent)", s)
}

// Check is one evaluated rule in a StrengthReport checklist.
type Check struct {
	Rule        string `json:"rule"`
	Description string `json:"description"`
	Passed      bool   `json:"passed"`
}

// StrengthReport is the result of evaluating a password against the checker rule set.
type StrengthReport struct {
	PassedChecks    int       `json:"passed_checks"`
	TotalChecks     int       `json:"total_checks"`
	Checklist       []Check   `json:"checklist"`
	Label           Label     `json:"label"`
	Percent         float64   `json:"percent"`
	Recommendations []string  `json:"recommendations"`
	Estimate        *Estimate `json:"estimate,omitempty"`
}

// MeterLabel is the coarse three-bucket reading shown for freshly generated passwords.
type MeterLabel string

const (
	MeterWeak   MeterLabel = "Weak"
	MeterMedium MeterLabel = "Medium"
	MeterStrong MeterLabel = "Strong"
)

// MeterReading is the result of the generator-side strength meter.
type MeterReading struct {
	Score   int        `json:"score"`
	Label   MeterLabel `json:"label"`
	Percent int        `json:"percent"`
}

// Estimate is an informational zxcvbn guessability estimate.
type Estimate struct {
	Score            int     `json:"score"`
	Entropy          float64 `json:"entropy"`
	CrackTime        string  `json:"crack_time"`
	CrackTimeSeconds float64 `json:"crack_time_seconds"`
	Truncated        bool    `json:"truncated,omitempty"`
}
