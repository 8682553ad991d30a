package util

import "math"

// ScorePercent converts a correct/total ratio into a percentage
// rounded to two decimal places. A zero total scores zero.
func ScorePercent(correct, total int) float64 {
	if total <= 0 {
		return 0
	}
	return math.Round(float64(correct)/float64(total)*100*100) / 100
}
