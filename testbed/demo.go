package testbed

import (
	"sync/atomic"

	"github.com/spaghettifunk/anima-bake/engine"
	"github.com/spaghettifunk/anima-bake/engine/animation"
	"github.com/spaghettifunk/anima-bake/engine/assets"
	"github.com/spaghettifunk/anima-bake/engine/core"
)

type demoState struct {
	// Clip files can be written from several workers.
	baked atomic.Int32
}

// NewDemoApplication returns an application that logs every clip it bakes.
func NewDemoApplication(config *engine.ApplicationConfig) *engine.Application {
	state := &demoState{}
	app := &engine.Application{
		ApplicationConfig: config,
		State:             state,
	}
	app.FnInitialize = func() error {
		core.LogDebug("testbed initialized")
		return nil
	}
	app.FnOnClipBaked = func(source string, clip *animation.Clip) error {
		state.baked.Add(1)
		core.LogInfo("clip %q from %s: %d curves, %.2fs", clip.Name, source, len(clip.Properties()), clip.Length())
		return nil
	}
	app.FnShutdown = func() error {
		core.LogDebug("testbed baked %d clips", state.baked.Load())
		return nil
	}
	return app
}

// BakeDemo records an orbiting object for duration seconds and bakes it on e.
func BakeDemo(e *engine.Engine, frameRate, duration float32) (*animation.Clip, error) {
	src := NewOrbitSource(5, duration)
	sf, err := Record(src, assets.ObjectInfo{ID: 0, Name: "orbiter", Visible: true}, frameRate, FrameTimes(frameRate, duration))
	if err != nil {
		return nil, err
	}
	return e.BakeSamples(sf)
}
