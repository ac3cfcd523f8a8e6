package geom

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
)

const eps = 1e-5

func assertVec(t *testing.T, want, got Vec3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, eps, "x")
	assert.InDelta(t, want.Y, got.Y, eps, "y")
	assert.InDelta(t, want.Z, got.Z, eps, "z")
}

func TestAxisRotations(t *testing.T) {
	half := math32.Pi / 2
	assertVec(t, V(0, 0, 1), RotateX(V(0, 1, 0), half))
	assertVec(t, V(0, 0, -1), RotateY(V(1, 0, 0), half))
	assertVec(t, V(0, 1, 0), RotateZ(V(1, 0, 0), half))
}

func TestRotateEulerOrder(t *testing.T) {
	half := math32.Pi / 2
	// Z first: x → y, then X: y → z.
	assertVec(t, V(0, 0, 1), RotateEuler(V(1, 0, 0), V(half, 0, half)))
}

func TestTransformApply(t *testing.T) {
	tr := At(V(1, 2, 3))
	tr.SetUniformScale(2)
	tr.Rotation = V(0, math32.Pi, 0)
	assertVec(t, V(-1, 2, 3), tr.Apply(V(1, 0, 0)))
	assertVec(t, V(-1, 0, 0), tr.ApplyNormal(V(1, 0, 0)))

	assert.Equal(t, V(1, 1, 1), Identity().Scale)
	assertVec(t, V(4, 5, 6), Identity().Apply(V(4, 5, 6)))
}

func TestVectorOps(t *testing.T) {
	assert.Equal(t, V(0, 0, 1), V(1, 0, 0).Cross(V(0, 1, 0)))
	assert.Equal(t, float32(32), V(1, 2, 3).Dot(V(4, 5, 6)))
	assert.InDelta(t, 5, V(3, 4, 0).Len(), eps)
	assert.Equal(t, Vec3{}, Vec3{}.Normalize())
	assertVec(t, V(0.6, 0.8, 0), V(3, 4, 0).Normalize())
	assert.Equal(t, [3]float32{1, 2, 3}, V(1, 2, 3).Array())
}

func TestOctahedronFaces(t *testing.T) {
	faces := Octahedron(1.2)
	assert.Len(t, faces, 8)
	for i, f := range faces {
		n := f.Normal()
		c := f.Centroid()
		assert.Greater(t, n.Dot(c), float32(0), "face %d normal points inward", i)
		assert.InDelta(t, 1, n.Len(), eps)
		for _, v := range []Vec3{f.A, f.B, f.C} {
			assert.InDelta(t, 1.2, v.Len(), eps)
		}
	}
}

func TestTriangleTransformed(t *testing.T) {
	tri := Triangle{V(1, 0, 0), V(0, 1, 0), V(0, 0, 1)}
	moved := tri.Transformed(At(V(0, 10, 0)))
	assert.Equal(t, V(1, 10, 0), moved.A)
	assert.Equal(t, V(0, 11, 0), moved.B)
	assert.Equal(t, V(0, 10, 1), moved.C)
}
