package animation

import (
	m "math"

	"github.com/spaghettifunk/anima-bake/engine/math"
)

// Animation is the playback capability attached to a scene node. It owns
// the clip that was assigned to it and drives the node transform from it.
type Animation struct {
	Clip     *Clip
	WrapMode WrapMode

	time    float32
	playing bool
}

func NewAnimation() *Animation {
	return &Animation{}
}

// SetClip assigns clip and rewinds playback.
func (a *Animation) SetClip(clip *Clip) {
	a.Clip = clip
	if clip != nil {
		a.WrapMode = clip.WrapMode
	}
	a.time = 0
	a.playing = false
}

// Play starts playback from the current time. It returns false without a clip.
func (a *Animation) Play() bool {
	if a.Clip == nil {
		return false
	}
	a.playing = true
	return true
}

func (a *Animation) Stop() {
	a.playing = false
	a.time = 0
}

func (a *Animation) IsPlaying() bool {
	return a.playing
}

func (a *Animation) Time() float32 {
	return a.time
}

// Update advances playback by delta seconds and writes the pose to target.
func (a *Animation) Update(delta float32, target *math.Transform) {
	if !a.playing || a.Clip == nil {
		return
	}
	a.time += delta
	if a.WrapMode == WrapOnce && a.time > a.Clip.Length() {
		a.playing = false
	}
	a.Apply(a.time, target)
}

// Sample evaluates the clip at t. Channels the clip does not animate keep
// the values of fallback.
func (a *Animation) Sample(t float32, fallback *math.Transform) (math.Vec3, math.Quaternion, math.Vec3) {
	if fallback == nil {
		fallback = math.TransformCreate()
	}
	if a.Clip == nil {
		return fallback.Position, fallback.Rotation, fallback.Scale
	}
	t = a.wrapTime(t)
	c := a.Clip

	position := math.Vec3{
		X: c.Evaluate(PropertyPositionX, t, fallback.Position.X),
		Y: c.Evaluate(PropertyPositionY, t, fallback.Position.Y),
		Z: c.Evaluate(PropertyPositionZ, t, fallback.Position.Z),
	}
	rotation := math.Quaternion{
		X: c.Evaluate(PropertyRotationX, t, fallback.Rotation.X),
		Y: c.Evaluate(PropertyRotationY, t, fallback.Rotation.Y),
		Z: c.Evaluate(PropertyRotationZ, t, fallback.Rotation.Z),
		W: c.Evaluate(PropertyRotationW, t, fallback.Rotation.W),
	}.Normalize()
	scale := math.Vec3{
		X: c.Evaluate(PropertyScaleX, t, fallback.Scale.X),
		Y: c.Evaluate(PropertyScaleY, t, fallback.Scale.Y),
		Z: c.Evaluate(PropertyScaleZ, t, fallback.Scale.Z),
	}
	return position, rotation, scale
}

// Apply writes the pose at t into target. It returns false without a clip.
func (a *Animation) Apply(t float32, target *math.Transform) bool {
	if a.Clip == nil || target == nil {
		return false
	}
	p, r, s := a.Sample(t, target)
	target.SetPositionRotationScale(p, r, s)
	return true
}

func (a *Animation) wrapTime(t float32) float32 {
	length := a.Clip.Length()
	start := float32(0)
	if cv, ok := a.Clip.Curve(PropertyPositionX); ok {
		start = cv.StartTime()
	}
	if length <= start {
		return start
	}
	switch a.WrapMode {
	case WrapLoop:
		span := float64(length - start)
		off := m.Mod(float64(t-start), span)
		if off < 0 {
			off += span
		}
		return start + float32(off)
	case WrapClampForever:
		return math.Clamp(t, start, length)
	default:
		if t > length {
			return start
		}
		return t
	}
}
