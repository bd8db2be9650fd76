package animation

import "sort"

// Curve is an ordered-by-time list of keyframes for one animated channel.
type Curve struct {
	keys []Keyframe
}

func NewCurve(keys ...Keyframe) *Curve {
	c := &Curve{}
	for _, k := range keys {
		c.AddKey(k)
	}
	return c
}

// AddKey inserts k keeping the keys sorted by time and returns its index.
// If a key already sits at the same time nothing is added and -1 is returned.
func (c *Curve) AddKey(k Keyframe) int {
	i := sort.Search(len(c.keys), func(i int) bool {
		return c.keys[i].Time >= k.Time
	})
	if i < len(c.keys) && c.keys[i].Time == k.Time {
		return -1
	}
	c.keys = append(c.keys, Keyframe{})
	copy(c.keys[i+1:], c.keys[i:])
	c.keys[i] = k
	return i
}

func (c *Curve) Len() int {
	return len(c.keys)
}

// Keys returns a copy of the keyframes.
func (c *Curve) Keys() []Keyframe {
	out := make([]Keyframe, len(c.keys))
	copy(out, c.keys)
	return out
}

func (c *Curve) StartTime() float32 {
	if len(c.keys) == 0 {
		return 0
	}
	return c.keys[0].Time
}

func (c *Curve) EndTime() float32 {
	if len(c.keys) == 0 {
		return 0
	}
	return c.keys[len(c.keys)-1].Time
}

// Evaluate returns the curve value at time t using cubic Hermite
// interpolation. Times outside the keyed range clamp to the first or last key.
func (c *Curve) Evaluate(t float32) float32 {
	switch len(c.keys) {
	case 0:
		return 0
	case 1:
		return c.keys[0].Value
	}
	if t <= c.keys[0].Time {
		return c.keys[0].Value
	}
	last := c.keys[len(c.keys)-1]
	if t >= last.Time {
		return last.Value
	}

	i := sort.Search(len(c.keys), func(i int) bool {
		return c.keys[i].Time > t
	})
	k0, k1 := c.keys[i-1], c.keys[i]

	dt := k1.Time - k0.Time
	s := (t - k0.Time) / dt
	s2 := s * s
	s3 := s2 * s

	h00 := 2*s3 - 3*s2 + 1
	h10 := s3 - 2*s2 + s
	h01 := -2*s3 + 3*s2
	h11 := s3 - s2

	return h00*k0.Value + h10*dt*k0.OutTangent + h01*k1.Value + h11*dt*k1.InTangent
}
