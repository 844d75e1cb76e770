package strength

import (
	"github.com/jonathan/passkit/internal/types"
	"github.com/nbutton23/zxcvbn-go"
)

// maxEstimatedLength limits the input handed to zxcvbn, whose matching slows down
// sharply on long passwords.
const maxEstimatedLength = 50

// Estimate returns a zxcvbn guessability estimate for password.
// It is informational and does not affect the checker score or label.
func Estimate(password string) types.Estimate {
	if password == "" {
		return types.Estimate{CrackTime: "instant"}
	}

	checked := password
	truncated := false
	if runes := []rune(password); len(runes) > maxEstimatedLength {
		checked = string(runes[:maxEstimatedLength])
		truncated = true
	}

	result := zxcvbn.PasswordStrength(checked, nil)
	return types.Estimate{
		Score:            result.Score,
		Entropy:          result.Entropy,
		CrackTime:        result.CrackTimeDisplay,
		CrackTimeSeconds: result.CrackTime,
		Truncated:        truncated,
	}
}
