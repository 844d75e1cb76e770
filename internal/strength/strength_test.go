package strength

import (
	"strings"
	"testing"

	"github.com/jonathan/passkit/internal/generator"
	"github.com/jonathan/passkit/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEvaluate_Scenarios(t *testing.T) {
	tests := []struct {
		name            string
		password        string
		wantPassed      int
		wantLabel       types.Label
		wantPercent     float64
		wantRecs        []string
		wantChecklistOK []bool
	}{
		{
			name:        "empty",
			password:    "",
			wantPassed:  0,
			wantLabel:   types.LabelNone,
			wantPercent: 0,
			wantRecs:    []string{},
		},
		{
			name:        "lowercase only",
			password:    "password",
			wantPassed:  1,
			wantLabel:   types.LabelWeak,
			wantPercent: 20,
			wantRecs: []string{
				"Increase the length to 12 or more characters",
				"Add uppercase letters (A-Z)",
				"Add digits (0-9)",
				"Add special characters (e.g. !@#$%)",
			},
			wantChecklistOK: []bool{false, false, true, false, false},
		},
		{
			name:            "all rules",
			password:        "Password123!",
			wantPassed:      5,
			wantLabel:       types.LabelExcellent,
			wantPercent:     100,
			wantRecs:        []string{},
			wantChecklistOK: []bool{true, true, true, true, true},
		},
		{
			name:        "two rules is weak",
			password:    "Password",
			wantPassed:  2,
			wantLabel:   types.LabelWeak,
			wantPercent: 40,
			wantRecs: []string{
				"Increase the length to 12 or more characters",
				"Add digits (0-9)",
				"Add special characters (e.g. !@#$%)",
			},
			wantChecklistOK: []bool{false, true, true, false, false},
		},
		{
			name:        "three rules is medium",
			password:    "Password1",
			wantPassed:  3,
			wantLabel:   types.LabelMedium,
			wantPercent: 60,
			wantRecs: []string{
				"Increase the length to 12 or more characters",
				"Add special characters (e.g. !@#$%)",
			},
			wantChecklistOK: []bool{false, true, true, true, false},
		},
		{
			name:        "four rules is good",
			password:    "Password1234",
			wantPassed:  4,
			wantLabel:   types.LabelGood,
			wantPercent: 80,
			wantRecs: []string{
				"Add special characters (e.g. !@#$%)",
			},
			wantChecklistOK: []bool{true, true, true, true, false},
		},
		{
			name:        "single symbol",
			password:    " ",
			wantPassed:  1,
			wantLabel:   types.LabelWeak,
			wantPercent: 20,
			wantRecs: []string{
				"Increase the length to 12 or more characters",
				"Add uppercase letters (A-Z)",
				"Add lowercase letters (a-z)",
				"Add digits (0-9)",
			},
			wantChecklistOK: []bool{false, false, false, false, true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := Evaluate(tt.password)
			assert.Equal(t, tt.wantPassed, report.PassedChecks)
			assert.Equal(t, TotalChecks, report.TotalChecks)
			assert.Equal(t, tt.wantLabel, report.Label)
			assert.InDelta(t, tt.wantPercent, report.Percent, 1e-9)
			assert.Equal(t, tt.wantRecs, report.Recommendations)

			require.Len(t, report.Checklist, len(tt.wantChecklistOK))
			for i, check := range report.Checklist {
				assert.Equal(t, rules[i].Name, check.Rule)
				assert.Equal(t, tt.wantChecklistOK[i], check.Passed, "rule %s", check.Rule)
			}
		})
	}
}

func TestClassifyChecks(t *testing.T) {
	want := map[int]types.Label{
		0: types.LabelWeak,
		1: types.LabelWeak,
		2: types.LabelWeak,
		3: types.LabelMedium,
		4: types.LabelGood,
		5: types.LabelExcellent,
	}
	for passed, label := range want {
		assert.Equal(t, label, ClassifyChecks(passed), "passed=%d", passed)
	}
}

func TestEvaluate_RecommendationCompleteness(t *testing.T) {
	inputs := []string{
		"a", "A", "1", "!", "aA", "aA1", "aA1!", "abcdefghijkl", "ABCDEFGHIJKL1",
		"Пароль-пароль-пароль", "\x00\x00\x00", "  spaces  only  ", "ÀÉÎÕÜ", "日本語のパスワード123",
	}
	for i := 0; i < 50; i++ {
		pw, err := generator.Generate(types.GenerationOptions{
			Length:    8 + i,
			Uppercase: i%2 == 0,
			Lowercase: i%3 == 0,
			Numbers:   i%5 == 0,
			Symbols:   true,
		})
		require.NoError(t, err)
		inputs = append(inputs, pw)
	}

	for _, pw := range inputs {
		report := Evaluate(pw)
		assert.Len(t, report.Recommendations, TotalChecks-report.PassedChecks, "password %q", pw)

		failed := 0
		for _, check := range report.Checklist {
			if !check.Passed {
				assert.Contains(t, report.Recommendations, rules[indexOfRule(check.Rule)].Recommendation)
				failed++
			}
		}
		assert.Equal(t, failed, len(report.Recommendations))
		assert.InDelta(t, 100*float64(report.PassedChecks)/float64(TotalChecks), report.Percent, 1e-9)
	}
}

func indexOfRule(name string) int {
	for i, r := range rules {
		if r.Name == name {
			return i
		}
	}
	return -1
}

func TestEvaluate_Monotonicity(t *testing.T) {
	bases := []string{"", "a", "password", "PASSWORD", "12345678", "!!!!", "Pass1", "Password123!"}
	additions := []string{"A", "z", "7", "#", "abcdefghijkl", "é"}

	for _, base := range bases {
		before := Evaluate(base).PassedChecks
		for _, add := range additions {
			after := Evaluate(base + add).PassedChecks
			assert.GreaterOrEqual(t, after, before, "%q + %q", base, add)
		}
	}
}

func TestEvaluate_AdversarialInput(t *testing.T) {
	inputs := []string{
		"\x00",
		strings.Repeat("\x00", 100),
		"\xff\xfe\xfd",
		strings.Repeat("a", 1<<20),
		"😀😀😀😀😀😀😀😀😀😀😀😀",
	}

	for _, pw := range inputs {
		assert.NotPanics(t, func() {
			report := Evaluate(pw)
			assert.NotEqual(t, types.LabelNone, report.Label)
		})
	}

	emoji := Evaluate("😀😀😀😀😀😀😀😀😀😀😀😀")
	assert.Equal(t, 2, emoji.PassedChecks, "12 emoji satisfy length and symbol")
}

func TestMeter(t *testing.T) {
	tests := []struct {
		name      string
		password  string
		wantScore int
		wantLabel types.MeterLabel
		wantPct   int
	}{
		{name: "empty", password: "", wantScore: 0, wantLabel: types.MeterWeak, wantPct: 33},
		{name: "short lowercase", password: "password", wantScore: 1, wantLabel: types.MeterWeak, wantPct: 33},
		{name: "short mixed case", password: "Password", wantScore: 2, wantLabel: types.MeterWeak, wantPct: 33},
		{name: "short three classes", password: "Password1", wantScore: 3, wantLabel: types.MeterMedium, wantPct: 66},
		{name: "12 chars three classes", password: "Password1234", wantScore: 4, wantLabel: types.MeterMedium, wantPct: 66},
		{name: "12 chars all classes", password: "Password123!", wantScore: 5, wantLabel: types.MeterStrong, wantPct: 100},
		{name: "16 chars all classes", password: "Password123!abcd", wantScore: 6, wantLabel: types.MeterStrong, wantPct: 100},
		{name: "16 chars lowercase", password: "abcdefghijklmnop", wantScore: 3, wantLabel: types.MeterMedium, wantPct: 66},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			reading := Meter(tt.password)
			assert.Equal(t, tt.wantScore, reading.Score)
			assert.Equal(t, tt.wantLabel, reading.Label)
			assert.Equal(t, tt.wantPct, reading.Percent)
		})
	}
}

func TestMeterDiffersFromChecker(t *testing.T) {
	// 16 lowercase characters: checker sees 2 of 5 (Weak), meter sees 3 of 6 (Medium).
	pw := "abcdefghijklmnop"
	assert.Equal(t, types.LabelWeak, Evaluate(pw).Label)
	assert.Equal(t, types.MeterMedium, Meter(pw).Label)
}

func TestRules(t *testing.T) {
	rs := Rules()
	require.Len(t, rs, TotalChecks)

	names := make([]string, 0, len(rs))
	for _, r := range rs {
		names = append(names, r.Name)
	}
	assert.Equal(t, []string{"length", "uppercase", "lowercase", "digit", "symbol"}, names)

	rs[0].Name = "mutated"
	assert.Equal(t, "length", Rules()[0].Name, "Rules returns a copy")
}

func TestEstimate(t *testing.T) {
	empty := Estimate("")
	assert.Zero(t, empty.Score)

	weak := Estimate("password")
	assert.Equal(t, 0, weak.Score)
	assert.False(t, weak.Truncated)

	strong := Estimate("x7#Qv!r9Lp@2mZ&w")
	assert.GreaterOrEqual(t, strong.Score, 3)
	assert.Greater(t, strong.Entropy, weak.Entropy)
	assert.NotEmpty(t, strong.CrackTime)

	long := Estimate(strings.Repeat("ab1!", 40))
	assert.True(t, long.Truncated)
}

func TestEstimateDoesNotChangeEvaluation(t *testing.T) {
	pw := "Password123!"
	before := Evaluate(pw)
	_ = Estimate(pw)
	assert.Equal(t, before, Evaluate(pw))
}
