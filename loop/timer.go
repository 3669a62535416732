package loop

import "time"

const samples = 32

// Timer computes a moving average of frame times over the last 32 samples.
//
type Timer struct {
	times [samples]time.Duration
	index int
	n     int
}

// Add adds a sample.
//
func (t *Timer) Add(dt time.Duration) {
	t.times[t.index] = dt
	t.index = (t.index + 1) & (samples - 1)
	if t.n < samples {
		t.n++
	}
}

// Average returns the average of the samples added so far.
//
func (t *Timer) Average() time.Duration {
	if t.n == 0 {
		return 0
	}
	var avg time.Duration
	for _, dt := range t.times[:t.n] {
		avg += dt
	}
	return avg / time.Duration(t.n)
}

// AveragePerSecond returns the number of average frames per second.
//
func (t *Timer) AveragePerSecond() float64 {
	avg := t.Average()
	if avg == 0 {
		return 0
	}
	return float64(time.Second) / float64(avg)
}
