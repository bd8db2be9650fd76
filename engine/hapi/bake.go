package hapi

import (
	"github.com/spaghettifunk/anima-bake/engine/animation"
	"github.com/spaghettifunk/anima-bake/engine/core"
	"github.com/spaghettifunk/anima-bake/engine/scene"
)

// BeginBakeAnimation starts a bake session with an empty curve collection.
// An unfinished previous session is dropped.
func (oc *ObjectControl) BeginBakeAnimation() {
	if oc.curves != nil {
		core.LogDebug("object %q: discarding unfinished bake", oc.objectName)
	}
	oc.curves = animation.NewCurveCollection()
	oc.metrics.Reset()
}

// IsBaking reports whether a session is open.
func (oc *ObjectControl) IsBaking() bool {
	return oc.curves != nil
}

// BakeAnimation converts xform into host space, relative to parent when one
// is given, and appends it to the curves at time. Any failure is logged and
// the sample is dropped.
func (oc *ObjectControl) BakeAnimation(time float32, parent *scene.Node, xform Transform) {
	if err := oc.bakeSample(time, parent, xform); err != nil {
		core.LogWarn("object %q: skipping sample at %.4f: %s", oc.objectName, time, err)
		oc.metrics.Skip()
	}
}

func (oc *ObjectControl) bakeSample(time float32, parent *scene.Node, xform Transform) error {
	if oc.curves == nil {
		return newError("bake", core.ErrNoBakeSession)
	}
	if err := xform.Validate(); err != nil {
		return err
	}

	oc.clock.Start()
	position, rotation, scale := ConvertTransform(xform, parent)
	oc.curves.AddSample(time, [10]float32{
		position.X, position.Y, position.Z,
		rotation.X, rotation.Y, rotation.Z, rotation.W,
		scale.X, scale.Y, scale.Z,
	})
	oc.clock.Stop()
	oc.metrics.Update(oc.clock.Elapsed())
	return nil
}

// BakeFromSource pulls a sample from src for every entry of times and bakes
// it. Times the source fails on are logged and skipped. It returns how many
// samples made it into the curves.
func (oc *ObjectControl) BakeFromSource(src TransformSource, times []float32, parent *scene.Node) int {
	baked := 0
	for _, t := range times {
		xform, err := src.TransformAt(t)
		if err != nil {
			core.LogWarn("object %q: source failed at %.4f: %s", oc.objectName, t, err)
			oc.metrics.Skip()
			continue
		}
		if err := oc.bakeSample(t, parent, xform); err != nil {
			core.LogWarn("object %q: skipping sample at %.4f: %s", oc.objectName, t, err)
			oc.metrics.Skip()
			continue
		}
		baked++
	}
	return baked
}

// EndBakeAnimation turns the curves into a clip and assigns it to the
// Animation component of the object's node, adding the component if needed.
// The session is closed either way. It returns whether a clip was assigned.
func (oc *ObjectControl) EndBakeAnimation() bool {
	curves := oc.curves
	oc.curves = nil

	clip, err := oc.assignClip(curves)
	if err != nil {
		core.LogWarn("object %q: no clip produced: %s", oc.objectName, err)
		return false
	}
	oc.lastClip = clip

	core.LogInfo("object %q: baked clip %q (%.3fs, %d samples, %d skipped, %.3fms avg)",
		oc.objectName, clip.Name, clip.Length(), oc.metrics.Sampled, oc.metrics.Skipped, oc.metrics.SampleTime())

	ctx := core.EventContext{Payload: clip}
	ctx.Data.C[0] = oc.node.Name
	ctx.Data.C[1] = clip.Name
	ctx.Data.F32[0] = clip.Length()
	core.EventFire(core.EVENT_CODE_CLIP_ASSIGNED, oc, ctx)
	return true
}

func (oc *ObjectControl) assignClip(curves *animation.CurveCollection) (*animation.Clip, error) {
	if oc.node == nil {
		return nil, newError("assign", core.ErrNoTargetNode)
	}
	name := oc.settings.ClipName
	if name == "" {
		name = oc.objectName
	}
	clip, err := curves.AssignCurvesToClip(name)
	if err != nil {
		return nil, newError("assign", err)
	}
	if oc.settings.FrameRate > 0 {
		clip.FrameRate = oc.settings.FrameRate
	}
	clip.WrapMode = oc.settings.WrapMode

	anim := scene.EnsureComponent(oc.node, animation.NewAnimation)
	anim.SetClip(clip)
	return clip, nil
}

// LastClip returns the clip assigned by the last successful EndBakeAnimation.
func (oc *ObjectControl) LastClip() *animation.Clip {
	return oc.lastClip
}
