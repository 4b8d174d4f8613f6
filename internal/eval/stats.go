package eval

import "math"

// Summary holds statistics of one generation's scores
type Summary struct {
	Best  int
	Min   int
	Mean  float64
	Std   float64
	Count int
}

// Summarize computes statistics from a generation's scores
func Summarize(scores []int) Summary {
	n := len(scores)
	if n == 0 {
		return Summary{}
	}

	s := Summary{Best: scores[0], Min: scores[0], Count: n}
	var sum float64
	for _, v := range scores {
		sum += float64(v)
		if v > s.Best {
			s.Best = v
		}
		if v < s.Min {
			s.Min = v
		}
	}

	nf := float64(n)
	s.Mean = sum / nf

	var variance float64
	for _, v := range scores {
		diff := float64(v) - s.Mean
		variance += diff * diff
	}
	s.Std = math.Sqrt(variance / nf)

	return s
}
