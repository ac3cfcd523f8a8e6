package controls

import (
	"github.com/chewxy/math32"

	"github.com/GBraga29/ProjetoPG/internal/camera"
	"github.com/GBraga29/ProjetoPG/internal/geom"
)

// Defaults match the demo's controller setup.
const (
	DefaultDampingFactor = 0.05
	DefaultMinDistance   = 3
	DefaultMaxDistance   = 50
	DefaultMaxPolarAngle = math32.Pi / 2
	dollyStep            = 0.95
	polarEpsilon         = 1e-6
)

// Input is one frame of pointer input in screen pixels.
type Input struct {
	RotateDX, RotateDY float32 // drag delta while the rotate button is held
	Wheel              float32 // positive = zoom in
	ViewportHeight     int
}

// Orbit rotates a camera around Target on a sphere, with optional damping and limits on
// distance and polar angle. Polar angle 0 is straight up (+Y).
type Orbit struct {
	Target        geom.Vec3
	EnableDamping bool
	DampingFactor float32
	MinDistance   float32
	MaxDistance   float32
	MinPolarAngle float32
	MaxPolarAngle float32
	MinZoom       float32
	MaxZoom       float32
	RotateSpeed   float32
	ZoomSpeed     float32

	cam *camera.Camera

	radius, theta, phi float32
	dTheta, dPhi       float32
	scale              float32
}

// NewOrbit returns a controller configured like the demo (damping on, distance 3..50,
// never below the horizon) and attached to cam.
func NewOrbit(cam *camera.Camera) *Orbit {
	o := &Orbit{
		EnableDamping: true,
		DampingFactor: DefaultDampingFactor,
		MinDistance:   DefaultMinDistance,
		MaxDistance:   DefaultMaxDistance,
		MinPolarAngle: 0,
		MaxPolarAngle: DefaultMaxPolarAngle,
		MinZoom:       0,
		MaxZoom:       math32.Inf(1),
		RotateSpeed:   1,
		ZoomSpeed:     1,
		scale:         1,
	}
	o.Attach(cam)
	return o
}

// Camera returns the controlled camera.
func (o *Orbit) Camera() *camera.Camera { return o.cam }

// Attach switches control to cam and takes its current position as the orbit state.
// Pending rotation is dropped.
func (o *Orbit) Attach(cam *camera.Camera) {
	o.cam = cam
	o.dTheta, o.dPhi = 0, 0
	o.scale = 1
	if cam == nil {
		return
	}
	o.Target = cam.Target
	offset := cam.Position.Sub(o.Target)
	o.radius = offset.Len()
	if o.radius == 0 {
		o.theta, o.phi = 0, 0
		return
	}
	o.theta = math32.Atan2(offset.X, offset.Z)
	o.phi = math32.Acos(clamp(offset.Y/o.radius, -1, 1))
}

// Distance returns the current distance from target to camera.
func (o *Orbit) Distance() float32 { return o.radius }

// Polar returns the current polar angle in radians.
func (o *Orbit) Polar() float32 { return o.phi }

// Azimuth returns the current azimuth angle in radians.
func (o *Orbit) Azimuth() float32 { return o.theta }

// Update applies one frame of input and writes the camera position. With damping,
// rotation keeps easing out over the following frames.
func (o *Orbit) Update(in Input) {
	if o.cam == nil {
		return
	}
	if in.ViewportHeight > 0 {
		h := float32(in.ViewportHeight)
		o.dTheta -= 2 * math32.Pi * in.RotateDX / h * o.RotateSpeed
		o.dPhi -= 2 * math32.Pi * in.RotateDY / h * o.RotateSpeed
	}
	if in.Wheel != 0 {
		step := math32.Pow(dollyStep, o.ZoomSpeed*math32.Abs(in.Wheel))
		if in.Wheel > 0 {
			o.scale *= step
		} else {
			o.scale /= step
		}
	}

	if o.EnableDamping {
		o.theta += o.dTheta * o.DampingFactor
		o.phi += o.dPhi * o.DampingFactor
	} else {
		o.theta += o.dTheta
		o.phi += o.dPhi
	}
	o.phi = clamp(o.phi, o.MinPolarAngle, o.MaxPolarAngle)
	o.phi = clamp(o.phi, polarEpsilon, math32.Pi-polarEpsilon)

	if o.cam.Kind == camera.Orthographic {
		zoom := o.cam.Zoom
		if zoom <= 0 {
			zoom = 1
		}
		o.cam.Zoom = clamp(zoom/o.scale, o.MinZoom, o.MaxZoom)
	} else {
		o.radius = clamp(o.radius*o.scale, o.MinDistance, o.MaxDistance)
	}

	sinPhi := math32.Sin(o.phi)
	offset := geom.V(
		o.radius*sinPhi*math32.Sin(o.theta),
		o.radius*math32.Cos(o.phi),
		o.radius*sinPhi*math32.Cos(o.theta),
	)
	o.cam.Position = o.Target.Add(offset)
	o.cam.Target = o.Target

	if o.EnableDamping {
		o.dTheta *= 1 - o.DampingFactor
		o.dPhi *= 1 - o.DampingFactor
	} else {
		o.dTheta, o.dPhi = 0, 0
	}
	o.scale = 1
}

func clamp(v, lo, hi float32) float32 {
	return math32.Max(lo, math32.Min(hi, v))
}
