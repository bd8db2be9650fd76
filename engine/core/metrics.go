package core

import "time"

const AVG_COUNT uint8 = 30

// BakeMetrics keeps a rolling average of how long each sample takes to bake
// and counts samples that were taken or skipped during a session.
type BakeMetrics struct {
	SampleAVGCounter uint8
	MStimes          [AVG_COUNT]float64
	MSavg            float64
	Sampled          int
	Skipped          int
}

func NewBakeMetrics() *BakeMetrics {
	return &BakeMetrics{}
}

// Reset clears all counters, used when a new bake begins.
func (bm *BakeMetrics) Reset() {
	*bm = BakeMetrics{}
}

// Update records a baked sample that took elapsed.
func (bm *BakeMetrics) Update(elapsed time.Duration) {
	sample_ms := float64(elapsed) / float64(time.Millisecond)
	bm.MStimes[bm.SampleAVGCounter] = sample_ms
	bm.Sampled++

	count := AVG_COUNT
	if bm.Sampled < int(AVG_COUNT) {
		count = uint8(bm.Sampled)
	}
	sum := 0.0
	for i := uint8(0); i < count; i++ {
		sum += bm.MStimes[i]
	}
	bm.MSavg = sum / float64(count)

	bm.SampleAVGCounter++
	bm.SampleAVGCounter %= AVG_COUNT
}

// Skip records a sample that produced nothing.
func (bm *BakeMetrics) Skip() {
	bm.Skipped++
}

func (bm *BakeMetrics) SampleTime() float64 {
	return bm.MSavg
}
