package testbed

import (
	"github.com/spaghettifunk/anima-bake/engine/assets"
	"github.com/spaghettifunk/anima-bake/engine/hapi"
	"github.com/spaghettifunk/anima-bake/engine/math"
)

// OrbitSource is a stand-in for a cooked procedural object: it circles the
// Y axis once per period while spinning to face along its path and pulsing
// in size. Transforms are produced in the procedural engine's convention.
type OrbitSource struct {
	Radius float32
	Height float32
	Period float32
	Pulse  float32
}

func NewOrbitSource(radius, period float32) *OrbitSource {
	return &OrbitSource{
		Radius: radius,
		Height: 1,
		Period: period,
		Pulse:  0.25,
	}
}

func (o *OrbitSource) TransformAt(time float32) (hapi.Transform, error) {
	angle := math.K_PI_2 * time / o.Period
	rotation := math.NewQuatFromAxisAngle(math.NewVec3(0, 1, 0), -angle, true)
	size := 1 + o.Pulse*math.Sin(2*angle)

	xform := hapi.NewTransform()
	// Right handed, so the orbit runs the other way round X.
	xform.Position = [3]float32{-o.Radius * math.Cos(angle), o.Height, o.Radius * math.Sin(angle)}
	xform.RotationQuaternion = rotation.Array()
	xform.Scale = [3]float32{size, size, size}
	return xform, nil
}

// FrameTimes returns the sample times covering duration at frameRate, both
// ends included.
func FrameTimes(frameRate, duration float32) []float32 {
	if frameRate <= 0 || duration < 0 {
		return nil
	}
	frames := int(duration*frameRate + 0.5)
	times := make([]float32, 0, frames+1)
	for i := 0; i <= frames; i++ {
		times = append(times, float32(i)/frameRate)
	}
	return times
}

// Record captures src at times into a sample file for the given object.
func Record(src hapi.TransformSource, object assets.ObjectInfo, frameRate float32, times []float32) (*assets.SampleFile, error) {
	sf := &assets.SampleFile{
		Object:    object,
		Asset:     assets.AssetRef{ID: 0, Name: "testbed"},
		FrameRate: frameRate,
		Samples:   make([]hapi.Sample, 0, len(times)),
	}
	for _, t := range times {
		xform, err := src.TransformAt(t)
		if err != nil {
			return nil, err
		}
		sf.Samples = append(sf.Samples, hapi.Sample{Time: t, Transform: xform})
	}
	return sf, nil
}
