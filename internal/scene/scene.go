package scene

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"github.com/GBraga29/ProjetoPG/internal/geom"
	"github.com/GBraga29/ProjetoPG/internal/shader"
	"github.com/GBraga29/ProjetoPG/internal/texture"
)

// Variant selects which set of objects and materials Build creates.
type Variant string

const (
	// VariantClassic: flat-colored static cube plus the floating prism.
	VariantClassic Variant = "classic"
	// VariantShader: custom-shader cube that spins, no prism.
	VariantShader Variant = "shader"
)

// Default texture sizes.
const (
	DefaultCheckerSize  = 512
	DefaultGradientSize = 256
)

// Scene is everything the frame loop reads and the animation driver mutates.
// Prism is nil in the shader variant.
type Scene struct {
	Variant     Variant
	Background  Color
	Ambient     Light
	Directional DirectionalLight

	Cube   *Object
	Sphere *Object
	Plane  *Object
	Prism  *Object

	colors *ColorCycle
}

// Light is a color with an intensity multiplier.
type Light struct {
	Color     Color
	Intensity float32
}

// DirectionalLight shines from Position toward the origin.
type DirectionalLight struct {
	Light
	Position geom.Vec3
}

// Direction returns the unit direction from the origin toward the light.
func (d DirectionalLight) Direction() geom.Vec3 {
	return d.Position.Normalize()
}

// Options configures Build. Zero sizes use the defaults; Shader is required for VariantShader.
type Options struct {
	Variant      Variant
	CheckerSize  int
	GradientSize int
	Shader       *shader.Pair
}

// Build creates the fixed scene for opts.Variant. Textures are generated here, once.
func Build(opts Options) (*Scene, error) {
	if opts.Variant == "" {
		opts.Variant = VariantClassic
	}
	if opts.CheckerSize == 0 {
		opts.CheckerSize = DefaultCheckerSize
	}
	if opts.GradientSize == 0 {
		opts.GradientSize = DefaultGradientSize
	}
	switch opts.Variant {
	case VariantClassic:
	case VariantShader:
		if opts.Shader == nil {
			return nil, errors.New("scene: shader variant needs a resolved shader pair")
		}
	default:
		return nil, fmt.Errorf("scene: unknown variant %q", opts.Variant)
	}

	checker, err := texture.Checkerboard(opts.CheckerSize, opts.CheckerSize)
	if err != nil {
		return nil, fmt.Errorf("scene: plane texture: %w", err)
	}
	gradient, err := texture.Gradient(opts.GradientSize, opts.GradientSize)
	if err != nil {
		return nil, fmt.Errorf("scene: sphere texture: %w", err)
	}

	s := &Scene{
		Variant:    opts.Variant,
		Background: 0x1a1a1a,
		Ambient:    Light{Color: 0x404040, Intensity: 0.4},
		Directional: DirectionalLight{
			Light:    Light{Color: 0xffffff, Intensity: 0.8},
			Position: geom.V(10, 10, 5),
		},
		colors: NewColorCycle(),
	}

	s.Cube = &Object{
		Kind:      Cube,
		Geometry:  Geometry{Size: geom.V(2, 2, 2)},
		Transform: geom.At(geom.V(-3, 0.5, 0)),
	}
	if opts.Variant == VariantShader {
		s.Cube.Material = Material{
			Kind:   MaterialShader,
			Color:  s.colors.Current(),
			Shader: opts.Shader,
			Uniforms: map[string][]float32{
				UniformTime:      {0},
				UniformBaseColor: s.colors.Current().Vec3(),
			},
		}
	} else {
		s.Cube.Material = Material{Kind: MaterialLambert, Color: s.colors.Current()}
	}

	s.Sphere = &Object{
		Kind:      Sphere,
		Geometry:  Geometry{Radius: 1.5, Rings: 32, Slices: 32},
		Material:  Material{Kind: MaterialTextured, Color: 0xffffff, Texture: gradient, RepeatU: 1, RepeatV: 1},
		Transform: geom.At(geom.V(3, 0, 0)),
	}

	s.Plane = &Object{
		Kind:      Plane,
		Geometry:  Geometry{Size: geom.V(32, 32, 0)},
		Material:  Material{Kind: MaterialTextured, Color: 0xffffff, Texture: checker, RepeatU: 2, RepeatV: 2, Wrap: WrapRepeat},
		Transform: geom.At(geom.V(0, -2, 0)),
	}
	s.Plane.Transform.Rotation.X = -math32.Pi / 2

	if opts.Variant == VariantClassic {
		s.Prism = &Object{
			Kind:      Prism,
			Geometry:  Geometry{Radius: 1.2},
			Material:  Material{Kind: MaterialPhong, Color: 0x9c27b0, Shininess: 100, Opacity: 0.8},
			Transform: geom.At(geom.V(0, 1.5, 0)),
		}
	}
	return s, nil
}

// Objects returns the live objects in draw order: opaque first, the translucent prism last.
func (s *Scene) Objects() []*Object {
	out := make([]*Object, 0, 4)
	for _, o := range []*Object{s.Plane, s.Cube, s.Sphere, s.Prism} {
		if o != nil {
			out = append(out, o)
		}
	}
	return out
}

// CubeColor returns the palette color currently applied to the cube.
func (s *Scene) CubeColor() Color {
	return s.colors.Current()
}

// CycleCubeColor advances the cube palette and applies the new color: as the material
// color for a flat cube, as the baseColor uniform for a shader cube.
func (s *Scene) CycleCubeColor() Color {
	c := s.colors.Next()
	if s.Cube == nil {
		return c
	}
	s.Cube.Material.Color = c
	if s.Cube.Material.Kind == MaterialShader {
		s.Cube.Material.SetUniform(UniformBaseColor, c.Vec3()...)
	}
	return c
}

// SetCubeShader swaps the shader pair of a shader cube, keeping its uniforms. It reports
// false when the cube has no shader material.
func (s *Scene) SetCubeShader(p *shader.Pair) bool {
	if s.Cube == nil || s.Cube.Material.Kind != MaterialShader || p == nil {
		return false
	}
	s.Cube.Material.Shader = p
	return true
}
