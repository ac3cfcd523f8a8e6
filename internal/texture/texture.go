package texture

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/gogpu/gg"
)

// ErrInvalidDimension is returned when a texture is requested with a non-positive width or height.
var ErrInvalidDimension = errors.New("texture: invalid dimension")

// TileSize is the side length in pixels of one checkerboard tile.
const TileSize = 32

// Checkerboard colors: even tiles use CheckerA, odd tiles CheckerB.
const (
	CheckerA = "#ff6b6b"
	CheckerB = "#4ecdc4"
)

// Gradient color stops at radius fractions 0, 0.5 and 1.
const (
	GradientInner = "#ffeb3b"
	GradientMid   = "#ff9800"
	GradientOuter = "#e91e63"
)

// Texture is a width×height RGBA raster. It has no mutating methods: once generated,
// pixel data stays as it is for the lifetime of the material that references it.
type Texture struct {
	name string
	pix  *gg.Pixmap
}

// Name returns the generator name ("checkerboard" or "gradient").
func (t *Texture) Name() string { return t.name }

// Width returns the texture width in pixels.
func (t *Texture) Width() int { return t.pix.Width() }

// Height returns the texture height in pixels.
func (t *Texture) Height() int { return t.pix.Height() }

// RGBAAt returns the pixel at (x, y). Out-of-bounds reads return transparent black.
func (t *Texture) RGBAAt(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= t.pix.Width() || y >= t.pix.Height() {
		return color.RGBA{}
	}
	data := t.pix.Data()
	i := (y*t.pix.Width() + x) * 4
	return color.RGBA{R: data[i], G: data[i+1], B: data[i+2], A: data[i+3]}
}

// Image returns a copy of the pixel data as an *image.RGBA (for GPU upload or PNG output).
func (t *Texture) Image() *image.RGBA {
	return t.pix.ToImage()
}

func checkDimensions(width, height int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimension, width, height)
	}
	return nil
}

// Checkerboard returns a width×height texture split into TileSize×TileSize tiles.
// Tile (i, j) is CheckerA when (i+j) is even and CheckerB otherwise. Tiles on the
// right and bottom edges are clipped to the canvas.
func Checkerboard(width, height int) (*Texture, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	a, b := quantize(gg.Hex(CheckerA)), quantize(gg.Hex(CheckerB))
	pm := gg.NewPixmap(width, height)
	for y0 := 0; y0 < height; y0 += TileSize {
		for x0 := 0; x0 < width; x0 += TileSize {
			c := b
			if (x0/TileSize+y0/TileSize)%2 == 0 {
				c = a
			}
			fillRect(pm, x0, y0, min(x0+TileSize, width), min(y0+TileSize, height), c)
		}
	}
	return &Texture{name: "checkerboard", pix: pm}, nil
}

// fillRect paints [x0,x1)×[y0,y1) with c.
func fillRect(pm *gg.Pixmap, x0, y0, x1, y1 int, c color.RGBA) {
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			setPixel(pm, x, y, c)
		}
	}
}

// setPixel writes c straight into the pixmap bytes. gg's own SetPixel truncates,
// which can turn 0xeb into 0xea after the float round trip.
func setPixel(pm *gg.Pixmap, x, y int, c color.RGBA) {
	data := pm.Data()
	i := (y*pm.Width() + x) * 4
	data[i], data[i+1], data[i+2], data[i+3] = c.R, c.G, c.B, c.A
}

// quantize converts a [0,1] gg color to 8-bit channels, rounding to nearest.
func quantize(c gg.RGBA) color.RGBA {
	ch := func(v float64) uint8 {
		return uint8(math.Round(math.Max(0, math.Min(1, v)) * 255))
	}
	return color.RGBA{R: ch(c.R), G: ch(c.G), B: ch(c.B), A: ch(c.A)}
}

// Gradient returns a width×height texture filled with a radial gradient centered at
// (width/2, height/2) with radius width/2. Colors between stops are mixed linearly in
// RGB, as a 2D canvas does. Pixels past the radius take the outer stop.
func Gradient(width, height int) (*Texture, error) {
	if err := checkDimensions(width, height); err != nil {
		return nil, err
	}
	cx, cy := float64(width)/2, float64(height)/2
	brush := gg.NewRadialGradientBrush(cx, cy, 0, float64(width)/2).
		AddColorStop(0, gg.Hex(GradientInner)).
		AddColorStop(0.5, gg.Hex(GradientMid)).
		AddColorStop(1, gg.Hex(GradientOuter)).
		SetExtend(gg.ExtendPad)

	pm := gg.NewPixmap(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// Sample at the pixel center, like a canvas fillRect.
			t := radialOffset(brush, float64(x)+0.5, float64(y)+0.5)
			setPixel(pm, x, y, quantize(stopColor(brush.Stops, t)))
		}
	}
	return &Texture{name: "gradient", pix: pm}, nil
}

// radialOffset is the pad-extended gradient position of (x, y): 0 at the start radius,
// 1 at the end radius.
func radialOffset(b *gg.RadialGradientBrush, x, y float64) float64 {
	span := b.EndRadius - b.StartRadius
	if span == 0 {
		return 0
	}
	d := math.Hypot(x-b.Center.X, y-b.Center.Y)
	return math.Max(0, math.Min(1, (d-b.StartRadius)/span))
}

// stopColor mixes the two stops around t in sRGB. stops must be sorted by offset.
func stopColor(stops []gg.ColorStop, t float64) gg.RGBA {
	if len(stops) == 0 {
		return gg.Transparent
	}
	if t <= stops[0].Offset {
		return stops[0].Color
	}
	for i := 1; i < len(stops); i++ {
		lo, hi := stops[i-1], stops[i]
		if t > hi.Offset {
			continue
		}
		if hi.Offset == lo.Offset {
			return hi.Color
		}
		return lo.Color.Lerp(hi.Color, (t-lo.Offset)/(hi.Offset-lo.Offset))
	}
	return stops[len(stops)-1].Color
}
