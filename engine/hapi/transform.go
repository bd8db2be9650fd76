package hapi

import (
	"github.com/spaghettifunk/anima-bake/engine/core"
	"github.com/spaghettifunk/anima-bake/engine/math"
	"github.com/spaghettifunk/anima-bake/engine/scene"
)

// Transform is an object transform as reported by the procedural engine:
// right handed, with its X axis pointing the other way from the host's.
type Transform struct {
	Position           [3]float32 `yaml:"position"`
	RotationQuaternion [4]float32 `yaml:"rotation"`
	Scale              [3]float32 `yaml:"scale"`
}

// NewTransform returns the identity transform.
func NewTransform() Transform {
	return Transform{
		RotationQuaternion: [4]float32{0, 0, 0, 1},
		Scale:              [3]float32{1, 1, 1},
	}
}

// Validate rejects samples with NaN or infinite components, or a zero rotation.
func (t Transform) Validate() error {
	values := make([]float32, 0, 10)
	values = append(values, t.Position[:]...)
	values = append(values, t.RotationQuaternion[:]...)
	values = append(values, t.Scale[:]...)
	for _, v := range values {
		if !math.IsFinite(v) {
			return newError("validate", core.ErrInvalidSample)
		}
	}
	if math.NewQuatFromArray(t.RotationQuaternion).Normal() == 0 {
		return newError("validate", core.ErrInvalidSample)
	}
	return nil
}

// MirrorX negates the X component of a position. Applying it twice gives
// the original position back.
func MirrorX(p math.Vec3) math.Vec3 {
	return math.Vec3{X: -p.X, Y: p.Y, Z: p.Z}
}

// ConvertRotation flips handedness of a rotation. The X rotation is left
// alone because mirroring the X axis and switching handedness cancel out for
// it; Y and Z rotations change sign.
func ConvertRotation(q math.Quaternion) math.Quaternion {
	euler := q.ToEuler()
	euler.Y = -euler.Y
	euler.Z = -euler.Z
	return euler.ToQuaternion()
}

// ConvertTransform brings t into host space. With a parent the result is
// expressed relative to the parent's world transform.
func ConvertTransform(t Transform, parent *scene.Node) (math.Vec3, math.Quaternion, math.Vec3) {
	position := MirrorX(math.NewVec3FromArray(t.Position))
	rotation := ConvertRotation(math.NewQuatFromArray(t.RotationQuaternion))
	scale := math.NewVec3FromArray(t.Scale)

	if parent == nil {
		return position, rotation, scale
	}

	world := math.NewMat4TRS(position, rotation, scale)
	local := world.Mul(parent.WorldToLocal())
	return local.Decompose()
}
