package testbed

import (
	"testing"

	"github.com/spaghettifunk/anima-bake/engine"
	"github.com/spaghettifunk/anima-bake/engine/animation"
	"github.com/spaghettifunk/anima-bake/engine/assets"
	"github.com/spaghettifunk/anima-bake/engine/config"
	"github.com/spaghettifunk/anima-bake/engine/hapi"
)

func TestFrameTimes(t *testing.T) {
	times := FrameTimes(4, 1)
	want := []float32{0, 0.25, 0.5, 0.75, 1}
	if len(times) != len(want) {
		t.Fatalf("FrameTimes = %v, want %v", times, want)
	}
	for i := range want {
		if times[i] != want[i] {
			t.Errorf("times[%d] = %v, want %v", i, times[i], want[i])
		}
	}
	if FrameTimes(0, 1) != nil {
		t.Error("zero frame rate should give no times")
	}
}

func TestOrbitSourceStaysOnCircle(t *testing.T) {
	src := NewOrbitSource(5, 2)
	for _, time := range FrameTimes(10, 2) {
		xform, err := src.TransformAt(time)
		if err != nil {
			t.Fatalf("TransformAt(%v): %v", time, err)
		}
		if err := xform.Validate(); err != nil {
			t.Errorf("TransformAt(%v) invalid: %v", time, err)
		}
		x, z := xform.Position[0], xform.Position[2]
		if r := x*x + z*z; r < 24.99 || r > 25.01 {
			t.Errorf("radius^2 at %v = %v, want 25", time, r)
		}
	}
}

func TestRecord(t *testing.T) {
	calls := 0
	src := hapi.SourceFunc(func(time float32) (hapi.Transform, error) {
		calls++
		return hapi.NewTransform(), nil
	})
	sf, err := Record(src, assets.ObjectInfo{Name: "probe"}, 24, []float32{0, 1})
	if err != nil {
		t.Fatalf("Record: %v", err)
	}
	if calls != 2 || len(sf.Samples) != 2 || sf.FrameRate != 24 || sf.Object.Name != "probe" {
		t.Errorf("recorded %+v after %d calls", sf, calls)
	}
}

func TestBakeDemo(t *testing.T) {
	cfg := config.Default()
	cfg.Log.Level = "error"
	appConfig, err := engine.NewApplicationConfig(cfg)
	if err != nil {
		t.Fatal(err)
	}
	e, err := engine.New(NewDemoApplication(appConfig))
	if err != nil {
		t.Fatal(err)
	}
	if err := e.Initialize(); err != nil {
		t.Fatal(err)
	}
	defer e.Shutdown()

	clip, err := BakeDemo(e, 30, 2)
	if err != nil {
		t.Fatalf("BakeDemo: %v", err)
	}
	if clip.Name != "orbiter" || clip.Length() != 2 || clip.FrameRate != 30 {
		t.Errorf("clip %q length=%v rate=%v", clip.Name, clip.Length(), clip.FrameRate)
	}
	// The orbit starts on the host's +X axis once mirrored.
	if got := clip.Evaluate(animation.PropertyPositionX, 0, 0); got < 4.999 || got > 5.001 {
		t.Errorf("tx(0) = %v, want 5", got)
	}
}
