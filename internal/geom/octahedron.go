package geom

// Triangle is one face with counter-clockwise winding seen from outside.
type Triangle struct {
	A, B, C Vec3
}

// Normal returns the unit face normal (right-hand rule on A→B→C).
func (t Triangle) Normal() Vec3 {
	return t.B.Sub(t.A).Cross(t.C.Sub(t.A)).Normalize()
}

// Centroid returns the mean of the three vertices.
func (t Triangle) Centroid() Vec3 {
	return t.A.Add(t.B).Add(t.C).Scale(1.0 / 3)
}

// Transformed returns the triangle with every vertex mapped through tr.
func (t Triangle) Transformed(tr Transform) Triangle {
	return Triangle{tr.Apply(t.A), tr.Apply(t.B), tr.Apply(t.C)}
}

// Octahedron returns the 8 faces of a regular octahedron with vertices on the axes at
// distance radius from the origin (detail level 0: no subdivision).
func Octahedron(radius float32) []Triangle {
	px, nx := V(radius, 0, 0), V(-radius, 0, 0)
	py, ny := V(0, radius, 0), V(0, -radius, 0)
	pz, nz := V(0, 0, radius), V(0, 0, -radius)
	return []Triangle{
		{px, py, pz},
		{pz, py, nx},
		{nx, py, nz},
		{nz, py, px},
		{px, pz, ny},
		{pz, nx, ny},
		{nx, nz, ny},
		{nz, px, ny},
	}
}
