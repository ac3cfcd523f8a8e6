package scene

import (
	"fmt"
	"image/color"

	"github.com/GBraga29/ProjetoPG/internal/geom"
	"github.com/GBraga29/ProjetoPG/internal/shader"
	"github.com/GBraga29/ProjetoPG/internal/texture"
)

// Kind is the primitive shape of an object.
type Kind int

const (
	Cube Kind = iota
	Sphere
	Plane
	Prism
)

func (k Kind) String() string {
	switch k {
	case Cube:
		return "cube"
	case Sphere:
		return "sphere"
	case Plane:
		return "plane"
	case Prism:
		return "prism"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Geometry holds the fixed shape parameters. Which fields apply depends on Kind:
// Size for cube (x,y,z) and plane (width, height), Radius/Rings/Slices for sphere,
// Radius for the octahedron prism.
type Geometry struct {
	Size   geom.Vec3
	Radius float32
	Rings  int
	Slices int
}

// MaterialKind selects how an object is shaded.
type MaterialKind int

const (
	MaterialLambert MaterialKind = iota
	MaterialTextured
	MaterialPhong
	MaterialShader
)

// Wrap is the texture addressing mode.
type Wrap int

const (
	WrapClamp Wrap = iota
	WrapRepeat
)

// Uniform names used by the custom shader.
const (
	UniformTime      = "time"
	UniformBaseColor = "baseColor"
)

// Material describes shading. Texture is shared, never copied or modified.
type Material struct {
	Kind      MaterialKind
	Color     Color
	Texture   *texture.Texture
	RepeatU   float32
	RepeatV   float32
	Wrap      Wrap
	Shininess float32
	Opacity   float32 // 0 means opaque

	Shader   *shader.Pair
	Uniforms map[string][]float32
}

// Transparent reports whether the material needs alpha blending.
func (m Material) Transparent() bool {
	return m.Opacity > 0 && m.Opacity < 1
}

// SetUniform stores v under name, reusing the existing slice when the length matches.
func (m *Material) SetUniform(name string, v ...float32) {
	if m.Uniforms == nil {
		m.Uniforms = make(map[string][]float32)
	}
	if cur, ok := m.Uniforms[name]; ok && len(cur) == len(v) {
		copy(cur, v)
		return
	}
	m.Uniforms[name] = append([]float32(nil), v...)
}

// Object is one scene mesh.
type Object struct {
	Kind      Kind
	Geometry  Geometry
	Material  Material
	Transform geom.Transform
}

// Color is a 0xRRGGBB value.
type Color uint32

// ToRGBA returns the color as an opaque color.RGBA.
func (c Color) ToRGBA() color.RGBA {
	return color.RGBA{R: uint8(c >> 16), G: uint8(c >> 8), B: uint8(c), A: 0xff}
}

// Vec3 returns the channels scaled to [0, 1].
func (c Color) Vec3() []float32 {
	rgba := c.ToRGBA()
	return []float32{float32(rgba.R) / 255, float32(rgba.G) / 255, float32(rgba.B) / 255}
}

// Hex returns the color as six lowercase hex digits.
func (c Color) Hex() string {
	return fmt.Sprintf("%06x", uint32(c)&0xffffff)
}
