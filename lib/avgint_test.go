package lib

import "testing"

func TestAverageInt(t *testing.T) {
	avg := &AverageInt64{}

	if mean := avg.Mean(); mean != 0 {
		t.Errorf("expected 0, got %v", mean)
	} else if variance := avg.Variance(); variance != 0 {
		t.Errorf("expected 0, got %v", variance)
	} else if sd := avg.SD(); sd != 0 {
		t.Errorf("expected 0, got %v", sd)
	}

	// start populating.
	for i := 1; i <= 100; i++ {
		avg.Add(int64(i))
	}
	// validate
	if x, y := int64(1), avg.Min(); x != y {
		t.Errorf("Min() expected %v, got %v", x, y)
	} else if x, y := int64(100), avg.Max(); x != y {
		t.Errorf("Max() expected %v, got %v", x, y)
	} else if x, y := int64(100), avg.Samples(); x != y {
		t.Errorf("Samples() expected %v, got %v", x, y)
	} else if x, y := int64(100*101)/2, avg.Sum(); x != y {
		t.Errorf("Sum() expected %v, got %v", x, y)
	} else if x, y := avg.Sum()/avg.Samples(), avg.Mean(); x != y {
		t.Errorf("Mean() expected %v, got %v", x, y)
	} else if x, y := int64(833), int64(avg.Variance()); x != y {
		t.Errorf("Variance() expected %v, got %v", x, y)
	} else if x, y := int64(28), int64(avg.SD()); x != y {
		t.Errorf("SD() expected %v, got %v", x, y)
	}
	// stats
	stats := avg.Stats()
	if x, y := int64(1), stats["min"].(int64); x != y {
		t.Errorf("Min() expected %v, got %v", x, y)
	} else if x, y := int64(100), stats["max"].(int64); x != y {
		t.Errorf("Max() expected %v, got %v", x, y)
	} else if x, y := int64(100), stats["samples"].(int64); x != y {
		t.Errorf("Samples() expected %v, got %v", x, y)
	} else if x, y := avg.Mean(), stats["mean"].(int64); x != y {
		t.Errorf("Mean() expected %v, got %v", x, y)
	} else if x, y := int64(833), int64(stats["variance"].(float64)); x != y {
		t.Errorf("Variance() expected %v, got %v", x, y)
	} else if x, y := int64(28), int64(stats["stddeviance"].(float64)); x != y {
		t.Errorf("SD() expected %v, got %v", x, y)
	}

	// clone
	newavg := avg.Clone()
	newavg.Add(101)
	// validate clone accumulates independently.
	if x, y := int64(101), newavg.Samples(); x != y {
		t.Errorf("Samples() expected %v, got %v", x, y)
	} else if x, y := int64(100), avg.Samples(); x != y {
		t.Errorf("Samples() expected %v, got %v", x, y)
	} else if x, y := int64(101), newavg.Max(); x != y {
		t.Errorf("Max() expected %v, got %v", x, y)
	} else if x, y := int64(100), avg.Max(); x != y {
		t.Errorf("Max() expected %v, got %v", x, y)
	}
}

func TestVarianceFractionalMean(t *testing.T) {
	avg := &AverageInt64{}
	avg.Add(1)
	avg.Add(2)
	// mean is 1.5, variance (1+4)/2 - 1.5*1.5 = 0.25. A mean rounded
	// through Mean() would report 1.5 instead.
	if x := avg.Variance(); x != 0.25 {
		t.Errorf("Variance() expected 0.25, got %v", x)
	}
	if x := avg.SD(); x != 0.5 {
		t.Errorf("SD() expected 0.5, got %v", x)
	}
}

func BenchmarkAvgintAdd(b *testing.B) {
	avg := &AverageInt64{}
	for i := 0; i <= b.N; i++ {
		avg.Add(int64(i))
	}
}

func BenchmarkAvgintMean(b *testing.B) {
	avg := &AverageInt64{}
	for i := 0; i <= b.N; i++ {
		avg.Add(int64(i))
	}
	b.ResetTimer()
	for i := 0; i <= b.N; i++ {
		avg.Mean()
	}
}
