package boxcurve

// SideWidths holds one non-negative length per box edge, in CSS order. It is
// used for both border widths and paddings.
type SideWidths struct {
	Top    float64
	Right  float64
	Bottom float64
	Left   float64
}

// NewSideWidths sets the four sides from 0 to 4 values, following the CSS
// multi-value shorthand: one value applies to all sides, two values to
// top/bottom and right/left, three values to top, right/left, and bottom, and
// four values to top, right, bottom, left.
func NewSideWidths(vals ...float64) SideWidths {
	switch len(vals) {
	case 0:
		return SideWidths{}
	case 1:
		return SideWidths{vals[0], vals[0], vals[0], vals[0]}
	case 2:
		return SideWidths{vals[0], vals[1], vals[0], vals[1]}
	case 3:
		return SideWidths{vals[0], vals[1], vals[2], vals[1]}
	default:
		return SideWidths{vals[0], vals[1], vals[2], vals[3]}
	}
}

// Radius is the pair of semi-axis lengths of the elliptical arc rounding one
// corner: X along the horizontal edge, Y along the vertical edge.
type Radius struct {
	X float64
	Y float64
}

// CircularRadius returns a radius with equal semi-axes.
func CircularRadius(r float64) Radius {
	return Radius{X: r, Y: r}
}

// CornerRadii holds one radius per corner, indexed by [CornerPos].
type CornerRadii [4]Radius

// NewCornerRadii sets the four corners from 0 to 4 values, following the CSS
// border-radius shorthand: one value applies to all corners, two values to
// top-left/bottom-right and top-right/bottom-left, three values to top-left,
// top-right/bottom-left, and bottom-right, and four values to top-left,
// top-right, bottom-right, bottom-left.
func NewCornerRadii(vals ...Radius) CornerRadii {
	switch len(vals) {
	case 0:
		return CornerRadii{}
	case 1:
		return CornerRadii{vals[0], vals[0], vals[0], vals[0]}
	case 2:
		return CornerRadii{vals[0], vals[1], vals[0], vals[1]}
	case 3:
		return CornerRadii{vals[0], vals[1], vals[2], vals[1]}
	default:
		return CornerRadii{vals[0], vals[1], vals[2], vals[3]}
	}
}

// Normalize scales the radii down so that no two adjacent corners together
// exceed the box's extent along either axis, the CSS overlapping-curves rule.
// When any of the four overlap factors exceeds 1, all eight radius components
// are divided by the largest factor; otherwise the radii are returned
// unchanged. The scale is global so that the proportions between corners are
// preserved.
func (r CornerRadii) Normalize(width, height float64) CornerRadii {
	maxFactor := max(
		(r[TopLeft].X+r[TopRight].X)/width,
		(r[BottomLeft].X+r[BottomRight].X)/width,
		(r[TopLeft].Y+r[BottomLeft].Y)/height,
		(r[TopRight].Y+r[BottomRight].Y)/height,
	)
	if maxFactor > 1 {
		for i := range r {
			r[i].X /= maxFactor
			r[i].Y /= maxFactor
		}
	}
	return r
}
