package math

func TransformCreate() *Transform {
	t := &Transform{}
	t.SetPositionRotationScale(NewVec3Zero(), NewQuatIdentity(), NewVec3One())
	t.Local = NewMat4Identity()
	t.Parent = nil
	return t
}

func TransformFromPosition(position Vec3) *Transform {
	t := &Transform{}
	t.SetPositionRotationScale(position, NewQuatIdentity(), NewVec3One())
	t.Local = NewMat4Identity()
	t.Parent = nil
	return t
}

func TransformFromPositionRotationScale(position Vec3, rotation Quaternion, scale Vec3) *Transform {
	t := &Transform{}
	t.SetPositionRotationScale(position, rotation, scale)
	t.Local = NewMat4Identity()
	t.Parent = nil
	return t
}

func (t *Transform) SetPosition(position Vec3) {
	t.Position = position
	t.IsDirty = true
}

func (t *Transform) Translate(translation Vec3) {
	t.Position = t.Position.Add(translation)
	t.IsDirty = true
}

func (t *Transform) SetPositionRotationScale(position Vec3, rotation Quaternion, scale Vec3) {
	t.Position = position
	t.Rotation = rotation
	t.Scale = scale
	t.IsDirty = true
}

func (t *Transform) SetParent(parent *Transform) {
	t.Parent = parent
}

func (t *Transform) GetLocal() Mat4 {
	if t != nil {
		if t.IsDirty {
			t.Local = NewMat4TRS(t.Position, t.Rotation, t.Scale)
			t.IsDirty = false
		}
		return t.Local
	}
	return NewMat4Identity()
}

// GetWorld returns the local matrix followed by every ancestor's.
func (t *Transform) GetWorld() Mat4 {
	if t != nil {
		l := t.GetLocal()
		if t.Parent != nil {
			p := t.Parent.GetWorld()
			return l.Mul(p)
		}
		return l
	}
	return NewMat4Identity()
}

/**
 * @brief Splits an affine matrix built as scale, rotation, translation back
 * into its parts. Scale is recovered as positive per-axis lengths, so a
 * mirrored matrix comes back as a rotation plus positive scale.
 */
func (mt Mat4) Decompose() (Vec3, Quaternion, Vec3) {
	position := Vec3{mt.Data[12], mt.Data[13], mt.Data[14]}

	rows := [3]Vec3{
		{mt.Data[0], mt.Data[1], mt.Data[2]},
		{mt.Data[4], mt.Data[5], mt.Data[6]},
		{mt.Data[8], mt.Data[9], mt.Data[10]},
	}
	scale := Vec3{rows[0].Length(), rows[1].Length(), rows[2].Length()}
	for i := range rows {
		rows[i] = rows[i].Normalized()
	}

	// at(i, j) is the column-vector rotation entry R[i][j].
	at := func(i, j int) float32 {
		switch i {
		case 0:
			return rows[j].X
		case 1:
			return rows[j].Y
		default:
			return rows[j].Z
		}
	}

	return position, quatFromRotation(at), scale
}

func quatFromRotation(at func(i, j int) float32) Quaternion {
	var q Quaternion
	trace := at(0, 0) + at(1, 1) + at(2, 2)
	switch {
	case trace > 0:
		s := 0.5 / ksqrt(trace+1)
		q.W = 0.25 / s
		q.X = (at(2, 1) - at(1, 2)) * s
		q.Y = (at(0, 2) - at(2, 0)) * s
		q.Z = (at(1, 0) - at(0, 1)) * s
	case at(0, 0) > at(1, 1) && at(0, 0) > at(2, 2):
		s := 2 * ksqrt(1+at(0, 0)-at(1, 1)-at(2, 2))
		q.W = (at(2, 1) - at(1, 2)) / s
		q.X = 0.25 * s
		q.Y = (at(0, 1) + at(1, 0)) / s
		q.Z = (at(0, 2) + at(2, 0)) / s
	case at(1, 1) > at(2, 2):
		s := 2 * ksqrt(1+at(1, 1)-at(0, 0)-at(2, 2))
		q.W = (at(0, 2) - at(2, 0)) / s
		q.X = (at(0, 1) + at(1, 0)) / s
		q.Y = 0.25 * s
		q.Z = (at(1, 2) + at(2, 1)) / s
	default:
		s := 2 * ksqrt(1+at(2, 2)-at(0, 0)-at(1, 1))
		q.W = (at(1, 0) - at(0, 1)) / s
		q.X = (at(0, 2) + at(2, 0)) / s
		q.Y = (at(1, 2) + at(2, 1)) / s
		q.Z = 0.25 * s
	}
	return q.Normalize()
}
