package animation

import (
	"fmt"

	"github.com/spaghettifunk/anima-bake/engine/core"
)

// Property paths the baked curves are bound to on the target node.
const (
	PropertyPositionX = "localPosition.x"
	PropertyPositionY = "localPosition.y"
	PropertyPositionZ = "localPosition.z"
	PropertyRotationX = "localRotation.x"
	PropertyRotationY = "localRotation.y"
	PropertyRotationZ = "localRotation.z"
	PropertyRotationW = "localRotation.w"
	PropertyScaleX    = "localScale.x"
	PropertyScaleY    = "localScale.y"
	PropertyScaleZ    = "localScale.z"
)

// Properties lists the transform channels in curve collection order.
var Properties = [10]string{
	PropertyPositionX, PropertyPositionY, PropertyPositionZ,
	PropertyRotationX, PropertyRotationY, PropertyRotationZ, PropertyRotationW,
	PropertyScaleX, PropertyScaleY, PropertyScaleZ,
}

// CurveCollection buffers the ten transform channels of a bake.
type CurveCollection struct {
	TX, TY, TZ     *Curve
	QX, QY, QZ, QW *Curve
	SX, SY, SZ     *Curve
}

func NewCurveCollection() *CurveCollection {
	return &CurveCollection{
		TX: NewCurve(), TY: NewCurve(), TZ: NewCurve(),
		QX: NewCurve(), QY: NewCurve(), QZ: NewCurve(), QW: NewCurve(),
		SX: NewCurve(), SY: NewCurve(), SZ: NewCurve(),
	}
}

// Curves returns the channels in the same order as Properties.
func (cc *CurveCollection) Curves() [10]*Curve {
	return [10]*Curve{
		cc.TX, cc.TY, cc.TZ,
		cc.QX, cc.QY, cc.QZ, cc.QW,
		cc.SX, cc.SY, cc.SZ,
	}
}

// AddSample appends one flat key per channel at time. values must follow
// the Properties order.
func (cc *CurveCollection) AddSample(time float32, values [10]float32) {
	for i, c := range cc.Curves() {
		c.AddKey(NewKeyframe(time, values[i]))
	}
}

// IsEmpty reports whether no channel holds a key.
func (cc *CurveCollection) IsEmpty() bool {
	for _, c := range cc.Curves() {
		if c.Len() > 0 {
			return false
		}
	}
	return true
}

// AssignCurvesToClip builds a clip named name from the collection. An empty
// collection yields ErrEmptyCurves.
func (cc *CurveCollection) AssignCurvesToClip(name string) (*Clip, error) {
	if cc == nil {
		return nil, core.ErrNoBakeSession
	}
	if cc.IsEmpty() {
		return nil, fmt.Errorf("building clip %q: %w", name, core.ErrEmptyCurves)
	}

	clip := NewClip(name)
	for i, c := range cc.Curves() {
		if c.Len() == 0 {
			continue
		}
		clip.SetCurve(Properties[i], c)
	}
	return clip, nil
}
