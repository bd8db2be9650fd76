package hapi

import (
	"fmt"
	"sort"
)

// TransformSource provides the transform of one object at a given time.
type TransformSource interface {
	TransformAt(time float32) (Transform, error)
}

// SourceFunc adapts a plain function to TransformSource.
type SourceFunc func(time float32) (Transform, error)

func (f SourceFunc) TransformAt(time float32) (Transform, error) {
	return f(time)
}

// Sample is a transform recorded at a point in time.
type Sample struct {
	Time      float32 `yaml:"time"`
	Transform `yaml:",inline"`
}

// RecordedSource replays previously captured samples. Only exact sample
// times can be queried.
type RecordedSource struct {
	samples []Sample
}

func NewRecordedSource(samples []Sample) *RecordedSource {
	sorted := make([]Sample, len(samples))
	copy(sorted, samples)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Time < sorted[j].Time
	})
	return &RecordedSource{samples: sorted}
}

// Times lists the recorded sample times in ascending order.
func (rs *RecordedSource) Times() []float32 {
	out := make([]float32, len(rs.samples))
	for i, s := range rs.samples {
		out[i] = s.Time
	}
	return out
}

func (rs *RecordedSource) TransformAt(time float32) (Transform, error) {
	i := sort.Search(len(rs.samples), func(i int) bool {
		return rs.samples[i].Time >= time
	})
	if i < len(rs.samples) && rs.samples[i].Time == time {
		return rs.samples[i].Transform, nil
	}
	return Transform{}, newError("transform", fmt.Errorf("no sample recorded at time %v", time))
}
