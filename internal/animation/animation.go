package animation

import (
	"github.com/chewxy/math32"

	"github.com/GBraga29/ProjetoPG/internal/scene"
)

// Sphere bounce: the plane sits at y=-2 and the sphere radius is 1.5, so the center
// stays in [SphereMinHeight, SphereMinHeight+SphereBounceHeight] = [-0.5, 1.0].
const (
	SphereMinHeight    = -0.5
	SphereBounceHeight = 1.5
	sphereBounceRate   = 3
)

// Prism float and pulse.
const (
	PrismBaseHeight  = 1.5
	prismFloatAmp    = 0.3
	prismFloatRate   = 2
	prismPulseAmp    = 0.1
	prismPulseRate   = 3
	prismSpinX       = 0.5
	prismSpinY       = 0.8
	prismSpinZ       = 0.3
	planeWobbleRate  = 0.3
	planeWobbleAngle = 0.1
	cubeSpinX        = 0.5
	cubeSpinY        = 0.7
)

// Update sets every live object's animated transform for elapsed time t (seconds).
// Each animated field is overwritten from t alone, so calling Update twice with the
// same t gives the same scene. Nil objects are skipped.
func Update(s *scene.Scene, t float32) {
	if sp := s.Sphere; sp != nil {
		sp.Transform.Position.Y = SphereMinHeight + math32.Abs(math32.Sin(t*sphereBounceRate))*SphereBounceHeight
		sp.Transform.Rotation.Y = t
	}

	if pl := s.Plane; pl != nil {
		pl.Transform.Rotation.Z = math32.Sin(t*planeWobbleRate) * planeWobbleAngle
	}

	if pr := s.Prism; pr != nil {
		pr.Transform.Rotation.X = t * prismSpinX
		pr.Transform.Rotation.Y = t * prismSpinY
		pr.Transform.Rotation.Z = t * prismSpinZ
		pr.Transform.Position.Y = PrismBaseHeight + math32.Sin(t*prismFloatRate)*prismFloatAmp
		pr.Transform.SetUniformScale(1 + math32.Sin(t*prismPulseRate)*prismPulseAmp)
	}

	// The cube only moves on the shader path; the flat cube is static.
	if c := s.Cube; c != nil && c.Material.Kind == scene.MaterialShader {
		c.Transform.Rotation.X = t * cubeSpinX
		c.Transform.Rotation.Y = t * cubeSpinY
		c.Material.SetUniform(scene.UniformTime, t)
	}
}
