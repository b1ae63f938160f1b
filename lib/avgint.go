package lib

import "math"

// AverageInt64 compute statistical mean, min, max and variance over a
// stream of int64 samples. Not thread safe.
type AverageInt64 struct {
	n      int64
	minval int64
	maxval int64
	sum    int64
	sumsq  float64
	init   bool
}

// Add a sample.
func (av *AverageInt64) Add(sample int64) {
	av.n++
	av.sum += sample
	f := float64(sample)
	av.sumsq += f * f
	if av.init == false || sample < av.minval {
		av.minval = sample
		av.init = true
	}
	if av.maxval < sample {
		av.maxval = sample
	}
}

// Min return the smallest sample seen so far.
func (av *AverageInt64) Min() int64 {
	return av.minval
}

// Max return the largest sample seen so far.
func (av *AverageInt64) Max() int64 {
	return av.maxval
}

// Samples return the number of samples accumulated.
func (av *AverageInt64) Samples() int64 {
	return av.n
}

// Sum return the sum of all samples.
func (av *AverageInt64) Sum() int64 {
	return av.sum
}

// Mean return the arithmetic mean over all samples.
func (av *AverageInt64) Mean() int64 {
	if av.n == 0 {
		return 0
	}
	return int64(float64(av.sum) / float64(av.n))
}

// Variance over all samples.
func (av *AverageInt64) Variance() float64 {
	if av.n == 0 {
		return 0
	}
	// the mean must stay fractional here, rounding it through Mean()
	// skews the variance.
	nf := float64(av.n)
	meanf := float64(av.sum) / nf
	return (av.sumsq / nf) - (meanf * meanf)
}

// SD return the standard deviation over all samples.
func (av *AverageInt64) SD() float64 {
	if av.n == 0 {
		return 0
	}
	return math.Sqrt(av.Variance())
}

// Clone returns a copy that can keep accumulating independently.
func (av *AverageInt64) Clone() *AverageInt64 {
	newav := (*av)
	return &newav
}

// Stats return {"samples", "min", "max", "mean", "variance",
// "stddeviance"} over all samples.
func (av *AverageInt64) Stats() map[string]interface{} {
	return map[string]interface{}{
		"samples":     av.Samples(),
		"min":         av.Min(),
		"max":         av.Max(),
		"mean":        av.Mean(),
		"variance":    av.Variance(),
		"stddeviance": av.SD(),
	}
}
