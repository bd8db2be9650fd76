package math

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

const tolerance float32 = 1e-4

func toMGLQuat(q Quaternion) mgl32.Quat {
	return mgl32.Quat{W: q.W, V: mgl32.Vec3{q.X, q.Y, q.Z}}
}

func fromMGLQuat(q mgl32.Quat) Quaternion {
	return Quaternion{q.V[0], q.V[1], q.V[2], q.W}
}

func TestMat4TRSMatchesMathGL(t *testing.T) {
	position := NewVec3(1.5, -2, 3.25)
	rotation := NewQuatFromAxisAngle(NewVec3(1, 2, 3).Normalized(), 1.1, true)
	scale := NewVec3(2, 0.5, 1.25)

	got := NewMat4TRS(position, rotation, scale)

	// mathgl is column-major with column vectors, which lays out the same
	// sixteen floats as a row-major matrix built for row vectors.
	want := mgl32.Translate3D(position.X, position.Y, position.Z).
		Mul4(toMGLQuat(rotation).Mat4()).
		Mul4(mgl32.Scale3D(scale.X, scale.Y, scale.Z))

	if !mgl32.Mat4(got.Data).ApproxEqualThreshold(want, tolerance) {
		t.Errorf("NewMat4TRS = %v, want %v", got.Data, want)
	}
}

func TestMat4Inverse(t *testing.T) {
	tests := []struct {
		name string
		mat  Mat4
	}{
		{"identity", NewMat4Identity()},
		{"translation", NewMat4Translation(NewVec3(4, -5, 6))},
		{"trs", NewMat4TRS(NewVec3(1, 2, 3), NewQuatFromAxisAngle(NewVec3(0, 1, 0), 0.7, true), NewVec3(2, 3, 4))},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.mat.Inverse()
			want := mgl32.Mat4(tt.mat.Data).Inv()
			if !mgl32.Mat4(got.Data).ApproxEqualThreshold(want, tolerance) {
				t.Errorf("Inverse() = %v, want %v", got.Data, want)
			}
			if !tt.mat.Mul(got).Compare(NewMat4Identity(), tolerance) {
				t.Errorf("m * m^-1 is not identity: %v", tt.mat.Mul(got).Data)
			}
		})
	}
}

func TestQuaternionMulMatchesMathGL(t *testing.T) {
	a := NewQuatFromAxisAngle(NewVec3(1, 0, 0), 0.4, true)
	b := NewQuatFromAxisAngle(NewVec3(0, 0, 1), 1.3, true)

	got := a.Mul(b)
	want := fromMGLQuat(toMGLQuat(a).Mul(toMGLQuat(b)))
	if !got.OrientationEqual(want, tolerance) {
		t.Errorf("Mul = %v, want %v", got, want)
	}
}

func TestEulerToQuaternion(t *testing.T) {
	tests := []Euler{
		{0, 0, 0},
		{10, 20, 30},
		{45, 200, 300},
		{80, 10, 350},
		{300, 90, 45},
	}

	for _, e := range tests {
		got := e.ToQuaternion()

		qx := mgl32.QuatRotate(mgl32.DegToRad(e.X), mgl32.Vec3{1, 0, 0})
		qy := mgl32.QuatRotate(mgl32.DegToRad(e.Y), mgl32.Vec3{0, 1, 0})
		qz := mgl32.QuatRotate(mgl32.DegToRad(e.Z), mgl32.Vec3{0, 0, 1})
		want := fromMGLQuat(qy.Mul(qx).Mul(qz))

		if !got.OrientationEqual(want, tolerance) {
			t.Errorf("%v.ToQuaternion() = %v, want %v", e, got, want)
		}
	}
}

func TestQuaternionToEulerRoundTrip(t *testing.T) {
	tests := []Euler{
		{0, 0, 0},
		{10, 20, 30},
		{45, 200, 300},
		{80, 10, 350},
		{300, 90, 45},
	}

	for _, e := range tests {
		got := e.ToQuaternion().ToEuler()
		if !Vec3(got).Compare(Vec3(e), 1e-2) {
			t.Errorf("round trip of %v gave %v", e, got)
		}
		for _, angle := range []float32{got.X, got.Y, got.Z} {
			if angle < 0 || angle >= 360 {
				t.Errorf("angle %v outside [0, 360)", angle)
			}
		}
	}
}

func TestQuaternionToEulerGimbalLock(t *testing.T) {
	q := Euler{90, 30, 0}.ToQuaternion()
	back := q.ToEuler().ToQuaternion()
	if !back.OrientationEqual(q, 1e-3) {
		t.Errorf("gimbal locked round trip = %v, want orientation %v", back, q)
	}
}

func TestMat4Decompose(t *testing.T) {
	position := NewVec3(-3, 7, 0.5)
	rotation := Euler{25, 140, 310}.ToQuaternion()
	scale := NewVec3(1, 2.5, 0.75)

	p, r, s := NewMat4TRS(position, rotation, scale).Decompose()

	if !p.Compare(position, tolerance) {
		t.Errorf("position = %v, want %v", p, position)
	}
	if !r.OrientationEqual(rotation, tolerance) {
		t.Errorf("rotation = %v, want %v", r, rotation)
	}
	if !s.Compare(scale, tolerance) {
		t.Errorf("scale = %v, want %v", s, scale)
	}
}

func TestTransformWorldWithParent(t *testing.T) {
	parent := TransformFromPositionRotationScale(
		NewVec3(10, 0, 0),
		NewQuatFromAxisAngle(NewVec3(0, 1, 0), K_HALF_PI, true),
		NewVec3(2, 2, 2),
	)
	child := TransformFromPosition(NewVec3(1, 0, 0))
	child.SetParent(parent)

	got := NewVec3Zero().Transform(child.GetWorld())

	// The child origin is (1,0,0), scaled to (2,0,0), turned a quarter around
	// Y to (0,0,-2) and moved by the parent offset.
	want := NewVec3(10, 0, -2)
	if !got.Compare(want, tolerance) {
		t.Errorf("world origin = %v, want %v", got, want)
	}
}

func TestTransformGetLocalCachesUntilDirty(t *testing.T) {
	tr := TransformCreate()
	first := tr.GetLocal()
	if !first.Compare(NewMat4Identity(), tolerance) {
		t.Fatalf("fresh transform local = %v, want identity", first.Data)
	}

	tr.Translate(NewVec3(1, 2, 3))
	if !tr.IsDirty {
		t.Fatal("Translate should mark the transform dirty")
	}
	second := tr.GetLocal()
	if second.Data[12] != 1 || second.Data[13] != 2 || second.Data[14] != 3 {
		t.Errorf("translation row = %v", second.Data[12:15])
	}
	if tr.IsDirty {
		t.Error("GetLocal should clear the dirty flag")
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(float32(1.5), -1, 1); got != 1 {
		t.Errorf("Clamp(1.5) = %v, want 1", got)
	}
	if got := Clamp(-7, -3, 3); got != -3 {
		t.Errorf("Clamp(-7) = %v, want -3", got)
	}
	if got := Clamp(2, 0, 5); got != 2 {
		t.Errorf("Clamp(2) = %v, want 2", got)
	}
}
