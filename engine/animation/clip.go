package animation

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
)

// WrapMode decides what a clip does past its last key.
type WrapMode uint8

const (
	// Play once and hold the first pose afterwards.
	WrapOnce WrapMode = iota
	// Start again from the beginning.
	WrapLoop
	// Hold the last pose forever.
	WrapClampForever
)

func (w WrapMode) String() string {
	switch w {
	case WrapLoop:
		return "loop"
	case WrapClampForever:
		return "clamp"
	default:
		return "once"
	}
}

// ParseWrapMode accepts "once", "loop" or "clamp".
func ParseWrapMode(s string) (WrapMode, error) {
	switch strings.ToLower(s) {
	case "", "once":
		return WrapOnce, nil
	case "loop":
		return WrapLoop, nil
	case "clamp", "clampforever":
		return WrapClampForever, nil
	}
	return WrapOnce, fmt.Errorf("unknown wrap mode %q", s)
}

// Clip is a named set of curves, each bound to a node property.
type Clip struct {
	ID        uuid.UUID
	Name      string
	FrameRate float32
	WrapMode  WrapMode
	curves    map[string]*Curve
	length    float32
}

func NewClip(name string) *Clip {
	return &Clip{
		ID:        uuid.New(),
		Name:      name,
		FrameRate: 60,
		curves:    make(map[string]*Curve),
	}
}

// SetCurve binds curve to property, replacing any previous binding.
func (c *Clip) SetCurve(property string, curve *Curve) {
	c.curves[property] = curve
	c.length = 0
	for _, cv := range c.curves {
		if cv.EndTime() > c.length {
			c.length = cv.EndTime()
		}
	}
}

func (c *Clip) Curve(property string) (*Curve, bool) {
	cv, ok := c.curves[property]
	return cv, ok
}

// Properties returns the bound properties in transform channel order,
// followed by any others sorted by name.
func (c *Clip) Properties() []string {
	out := make([]string, 0, len(c.curves))
	seen := make(map[string]bool, len(c.curves))
	for _, p := range Properties {
		if _, ok := c.curves[p]; ok {
			out = append(out, p)
			seen[p] = true
		}
	}
	extra := make([]string, 0)
	for p := range c.curves {
		if !seen[p] {
			extra = append(extra, p)
		}
	}
	sort.Strings(extra)
	return append(out, extra...)
}

// Length is the time of the latest key over all curves.
func (c *Clip) Length() float32 {
	return c.length
}

// Evaluate returns the value of property at t, or fallback if unbound.
func (c *Clip) Evaluate(property string, t float32, fallback float32) float32 {
	if cv, ok := c.curves[property]; ok && cv.Len() > 0 {
		return cv.Evaluate(t)
	}
	return fallback
}
