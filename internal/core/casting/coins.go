package casting

import "github.com/qrzn23/iching/internal/core/lcg"

// MethodCoins3 identifies the three-coin casting method and its coin mapping.
const MethodCoins3 = "coins3_v1"

const (
	// LineCount is the number of lines in a hexagram.
	LineCount = 6
	// CoinsPerLine is the number of coins tossed for each line.
	CoinsPerLine = 3
	// DrawsPerCast is the number of generator draws a cast consumes.
	DrawsPerCast = LineCount * CoinsPerLine
)

const (
	coinLow  = 2
	coinHigh = 3
)

// Lines holds six line values ordered bottom (index 0) to top (index 5).
type Lines [LineCount]int

// CastCoins3 tosses three coins for each of the six lines, bottom first.
//
// A draw of 0 counts as a 2-coin and a draw of 1 as a 3-coin; the mapping
// must not change or previously recorded seeds would resolve differently.
func CastCoins3(seed int64) Lines {
	lines, _ := castCoins3(lcg.New(seed))
	return lines
}

func castCoins3(rng lcg.Generator) (Lines, lcg.Generator) {
	var lines Lines
	for i := range lines {
		total := 0
		for c := 0; c < CoinsPerLine; c++ {
			var draw int
			rng, draw = rng.Intn(2)
			total += coinValue(draw)
		}
		lines[i] = total
	}
	return lines, rng
}

func coinValue(draw int) int {
	if draw == 0 {
		return coinLow
	}
	return coinHigh
}
