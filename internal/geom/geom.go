package geom

import "github.com/chewxy/math32"

// Vec3 is a 3D vector in world or model space (Y up).
type Vec3 struct {
	X, Y, Z float32
}

// V returns Vec3{x, y, z}.
func V(x, y, z float32) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (a Vec3) Add(b Vec3) Vec3      { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func (a Vec3) Sub(b Vec3) Vec3      { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }
func (a Vec3) Mul(b Vec3) Vec3      { return Vec3{a.X * b.X, a.Y * b.Y, a.Z * b.Z} }
func (a Vec3) Scale(s float32) Vec3 { return Vec3{a.X * s, a.Y * s, a.Z * s} }
func (a Vec3) Dot(b Vec3) float32   { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }
func (a Vec3) Len() float32         { return math32.Sqrt(a.Dot(a)) }

// Cross returns a × b.
func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		a.Y*b.Z - a.Z*b.Y,
		a.Z*b.X - a.X*b.Z,
		a.X*b.Y - a.Y*b.X,
	}
}

// Normalize returns a unit vector in the direction of a, or the zero vector if a is zero.
func (a Vec3) Normalize() Vec3 {
	l := a.Len()
	if l == 0 {
		return Vec3{}
	}
	return a.Scale(1 / l)
}

// Array returns the components as [3]float32 (shader uniforms, raylib vectors).
func (a Vec3) Array() [3]float32 { return [3]float32{a.X, a.Y, a.Z} }

// RotateX rotates v about the X axis by angle radians.
func RotateX(v Vec3, angle float32) Vec3 {
	s, c := math32.Sincos(angle)
	return Vec3{v.X, v.Y*c - v.Z*s, v.Y*s + v.Z*c}
}

// RotateY rotates v about the Y axis by angle radians.
func RotateY(v Vec3, angle float32) Vec3 {
	s, c := math32.Sincos(angle)
	return Vec3{v.X*c + v.Z*s, v.Y, -v.X*s + v.Z*c}
}

// RotateZ rotates v about the Z axis by angle radians.
func RotateZ(v Vec3, angle float32) Vec3 {
	s, c := math32.Sincos(angle)
	return Vec3{v.X*c - v.Y*s, v.X*s + v.Y*c, v.Z}
}

// RotateEuler applies an XYZ-order Euler rotation: the combined matrix is Rx·Ry·Rz,
// so Z is applied to the vector first.
func RotateEuler(v, euler Vec3) Vec3 {
	return RotateX(RotateY(RotateZ(v, euler.Z), euler.Y), euler.X)
}

// Transform is an object's placement: scale, then XYZ Euler rotation, then translation.
type Transform struct {
	Position Vec3
	Rotation Vec3 // radians
	Scale    Vec3
}

// Identity returns a transform with unit scale at the origin.
func Identity() Transform {
	return Transform{Scale: Vec3{1, 1, 1}}
}

// At returns an identity transform translated to p.
func At(p Vec3) Transform {
	t := Identity()
	t.Position = p
	return t
}

// SetUniformScale sets all three scale components to s.
func (t *Transform) SetUniformScale(s float32) {
	t.Scale = Vec3{s, s, s}
}

// Apply maps a model-space point to world space.
func (t Transform) Apply(p Vec3) Vec3 {
	return RotateEuler(p.Mul(t.Scale), t.Rotation).Add(t.Position)
}

// ApplyNormal maps a model-space normal to world space. Only valid for uniform scale,
// which is all the scene uses.
func (t Transform) ApplyNormal(n Vec3) Vec3 {
	return RotateEuler(n, t.Rotation).Normalize()
}
