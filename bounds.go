package boxcurve

import (
	"fmt"
	"math"
)

// Bounds is the rectangle of a laid-out element, expressed as its top-left
// corner plus extents, the convention used by layout engines. Width and
// height are expected to be non-negative; this package does not validate
// them.
type Bounds struct {
	Left   float64
	Top    float64
	Width  float64
	Height float64
}

// NewBounds returns the bounds with the given top-left corner and extents.
func NewBounds(left, top, width, height float64) Bounds {
	return Bounds{Left: left, Top: top, Width: width, Height: height}
}

func (b Bounds) String() string {
	return fmt.Sprintf("(%g, %g)+(%g×%g)", b.Left, b.Top, b.Width, b.Height)
}

// Right returns the x coordinate of the right edge.
func (b Bounds) Right() float64 {
	return b.Left + b.Width
}

// Bottom returns the y coordinate of the bottom edge.
func (b Bounds) Bottom() float64 {
	return b.Top + b.Height
}

// Origin returns the top-left corner.
func (b Bounds) Origin() Point {
	return Point{
		X: b.Left,
		Y: b.Top,
	}
}

func (b Bounds) IsInf() bool {
	return math.IsInf(b.Left, 0) ||
		math.IsInf(b.Top, 0) ||
		math.IsInf(b.Width, 0) ||
		math.IsInf(b.Height, 0)
}

func (b Bounds) IsNaN() bool {
	return math.IsNaN(b.Left) ||
		math.IsNaN(b.Top) ||
		math.IsNaN(b.Width) ||
		math.IsNaN(b.Height)
}
