package render

import (
	"github.com/chewxy/math32"

	"github.com/GBraga29/ProjetoPG/internal/geom"
	"github.com/GBraga29/ProjetoPG/internal/scene"
)

// phongSpecular is the specular reflectance of a default Phong material (0x111111).
const phongSpecular = float32(0x11) / 255

// lighting is one frame's light setup in linear [0,1] units, intensity applied.
type lighting struct {
	dir     geom.Vec3 // toward the light
	color   [3]float32
	ambient [3]float32
}

func sceneLighting(s *scene.Scene) lighting {
	return lighting{
		dir:     s.Directional.Direction(),
		color:   scaled(s.Directional.Color, s.Directional.Intensity),
		ambient: scaled(s.Ambient.Color, s.Ambient.Intensity),
	}
}

func scaled(c scene.Color, k float32) [3]float32 {
	v := c.Vec3()
	return [3]float32{v[0] * k, v[1] * k, v[2] * k}
}

// phong returns the Blinn-Phong color of a surface with normal n seen along toEye.
func (l lighting) phong(base scene.Color, n, toEye geom.Vec3, shininess float32) geom.Vec3 {
	b := base.Vec3()
	ndotl := math32.Max(n.Dot(l.dir), 0)
	diffuse := geom.V(
		l.ambient[0]+l.color[0]*ndotl,
		l.ambient[1]+l.color[1]*ndotl,
		l.ambient[2]+l.color[2]*ndotl,
	)
	out := geom.V(b[0], b[1], b[2]).Mul(diffuse)
	if ndotl > 0 && shininess > 0 {
		h := l.dir.Add(toEye.Normalize()).Normalize()
		spec := math32.Pow(math32.Max(n.Dot(h), 0), shininess) * phongSpecular
		out = out.Add(geom.V(l.color[0], l.color[1], l.color[2]).Scale(spec))
	}
	return out
}

// channel converts [0,1] to a byte, clamping.
func channel(v float32) uint8 {
	return uint8(math32.Round(math32.Max(0, math32.Min(1, v)) * 255))
}
