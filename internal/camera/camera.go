package camera

import (
	"fmt"

	"github.com/GBraga29/ProjetoPG/internal/geom"
)

// Kind is the projection type of a camera.
type Kind int

const (
	Perspective Kind = iota
	Orthographic
)

func (k Kind) String() string {
	switch k {
	case Perspective:
		return "perspective"
	case Orthographic:
		return "orthographic"
	}
	return fmt.Sprintf("camera(%d)", int(k))
}

// Projection defaults.
const (
	FieldOfView  = 75 // vertical, degrees
	PerspNear    = 0.1
	PerspFar     = 1000
	FrustumSize  = 10 // orthographic view height in world units
	OrthoNear    = 1
	OrthoFar     = 1000
	defaultSpawn = 5
)

// Camera is one projection plus its pose. Perspective uses Fov/Aspect; orthographic uses
// Left/Right/Top/Bottom and Zoom. Both use Near/Far.
type Camera struct {
	Kind     Kind
	Position geom.Vec3
	Target   geom.Vec3
	Up       geom.Vec3

	Fov    float32
	Aspect float32

	Left, Right, Top, Bottom float32
	Zoom                     float32

	Near, Far float32
}

// UpdateProjection recomputes the projection parameters for a new aspect ratio.
func (c *Camera) UpdateProjection(aspect float32) {
	c.Aspect = aspect
	if c.Kind == Orthographic {
		c.Left = -FrustumSize * aspect / 2
		c.Right = FrustumSize * aspect / 2
		c.Top = FrustumSize / 2
		c.Bottom = -FrustumSize / 2
	}
}

// ViewHeight is the vertical extent of an orthographic view after zoom.
func (c *Camera) ViewHeight() float32 {
	zoom := c.Zoom
	if zoom <= 0 {
		zoom = 1
	}
	return (c.Top - c.Bottom) / zoom
}

func newCamera(kind Kind, aspect float32) Camera {
	c := Camera{
		Kind:     kind,
		Position: geom.V(defaultSpawn, defaultSpawn, defaultSpawn),
		Up:       geom.V(0, 1, 0),
		Zoom:     1,
	}
	switch kind {
	case Perspective:
		c.Fov, c.Near, c.Far = FieldOfView, PerspNear, PerspFar
	case Orthographic:
		c.Near, c.Far = OrthoNear, OrthoFar
	}
	c.UpdateProjection(aspect)
	return c
}

// aspectOf returns width/height, or ok=false for a degenerate viewport.
func aspectOf(width, height int) (float32, bool) {
	if width <= 0 || height <= 0 {
		return 0, false
	}
	return float32(width) / float32(height), true
}
