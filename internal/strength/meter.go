package strength

import (
	"github.com/jonathan/passkit/internal/charclass"
	"github.com/jonathan/passkit/internal/types"
)

// Meter scores password on six points and buckets the score into three levels.
// It is not a coarser view of Evaluate: length is worth up to two points here.
func Meter(password string) types.MeterReading {
	score := MeterScore(password)
	return types.MeterReading{
		Score:   score,
		Label:   classifyMeter(score),
		Percent: meterPercent(score),
	}
}

// MeterScore returns the six-point meter score.
func MeterScore(password string) int {
	points := []bool{
		charclass.MinLength(password, MinRecommendedLength),
		charclass.MinLength(password, meterLongLength),
		charclass.HasLower(password),
		charclass.HasUpper(password),
		charclass.HasDigit(password),
		charclass.HasSymbol(password),
	}

	score := 0
	for _, ok := range points {
		if ok {
			score++
		}
	}
	return score
}

func classifyMeter(score int) types.MeterLabel {
	switch {
	case score <= 2:
		return types.MeterWeak
	case score <= 4:
		return types.MeterMedium
	default:
		return types.MeterStrong
	}
}

func meterPercent(score int) int {
	switch {
	case score <= 2:
		return 33
	case score <= 4:
		return 66
	default:
		return 100
	}
}
