package animation

// Keyframe is a single time/value pair on a Curve. The tangents are slopes
// (value per second) used by Hermite interpolation on either side of the key.
type Keyframe struct {
	Time       float32 `yaml:"time"`
	Value      float32 `yaml:"value"`
	InTangent  float32 `yaml:"in_tangent"`
	OutTangent float32 `yaml:"out_tangent"`
}

// NewKeyframe creates a flat key, i.e. one with zero tangents.
func NewKeyframe(time, value float32) Keyframe {
	return Keyframe{Time: time, Value: value}
}
