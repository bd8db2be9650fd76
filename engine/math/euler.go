package math

import m "math"

// gimbalThreshold is how close |sin(pitch)| may get to 1 before the
// decomposition locks yaw and roll together.
const gimbalThreshold float32 = 0.99999

/**
 * @brief Converts a quaternion to Euler angles in degrees, each in [0, 360).
 * The angles recompose as Y * X * Z, i.e. roll around Z is applied first.
 */
func (q Quaternion) ToEuler() Euler {
	n := q.Normalize()

	// Column-vector rotation matrix entries that are needed below.
	m00 := 1 - 2*(n.Y*n.Y+n.Z*n.Z)
	m02 := 2 * (n.X*n.Z + n.Y*n.W)
	m10 := 2 * (n.X*n.Y + n.Z*n.W)
	m11 := 1 - 2*(n.X*n.X+n.Z*n.Z)
	m12 := 2 * (n.Y*n.Z - n.X*n.W)
	m20 := 2 * (n.X*n.Z - n.Y*n.W)
	m22 := 1 - 2*(n.X*n.X+n.Y*n.Y)

	sx := Clamp(-m12, -1, 1)
	out := Euler{X: kasin(sx)}
	if kabs(sx) < gimbalThreshold {
		out.Y = katan2(m02, m22)
		out.Z = katan2(m10, m11)
	} else {
		out.Y = katan2(-m20, m00)
		out.Z = 0
	}

	return Euler{
		X: wrapDegrees(RadToDeg(out.X)),
		Y: wrapDegrees(RadToDeg(out.Y)),
		Z: wrapDegrees(RadToDeg(out.Z)),
	}
}

/**
 * @brief Builds a quaternion from Euler angles in degrees. The inverse of
 * Quaternion.ToEuler.
 */
func (e Euler) ToQuaternion() Quaternion {
	qx := NewQuatFromAxisAngle(Vec3{1, 0, 0}, DegToRad(e.X), false)
	qy := NewQuatFromAxisAngle(Vec3{0, 1, 0}, DegToRad(e.Y), false)
	qz := NewQuatFromAxisAngle(Vec3{0, 0, 1}, DegToRad(e.Z), false)
	return qy.Mul(qx).Mul(qz)
}

// wrapDegrees maps an angle into [0, 360).
func wrapDegrees(deg float32) float32 {
	out := float32(m.Mod(float64(deg), 360))
	if out < 0 {
		out += 360
	}
	if out >= 360 {
		out -= 360
	}
	return out
}
