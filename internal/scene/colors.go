package scene

// CubePalette is the fixed cube color sequence.
var CubePalette = [...]Color{0xff8000, 0x00ff00, 0x0077ff, 0xff00ff, 0xffffff}

// ColorCycle is an index into CubePalette.
type ColorCycle struct {
	index int
}

// NewColorCycle starts at the first palette entry.
func NewColorCycle() *ColorCycle {
	return &ColorCycle{}
}

// Current returns the selected color.
func (c *ColorCycle) Current() Color {
	return CubePalette[c.index]
}

// Index returns the selected palette position.
func (c *ColorCycle) Index() int {
	return c.index
}

// Next advances modulo the palette length and returns the new color.
func (c *ColorCycle) Next() Color {
	c.index = (c.index + 1) % len(CubePalette)
	return c.Current()
}
