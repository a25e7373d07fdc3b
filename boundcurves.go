package boxcurve

import (
	"fmt"
	"iter"
	"slices"
)

// BoxKind identifies one of the six nested outlines derived from the same
// element at different insets, from outermost to innermost.
type BoxKind int

const (
	// The outer outline of the outer stripe of a "double" border, inset by
	// one third of the border widths.
	DoubleOuterBox BoxKind = iota
	// The outer outline of the inner stripe of a "double" border, inset by
	// two thirds of the border widths.
	DoubleInnerBox
	// The centerline of the border, inset by half the border widths. Stroking
	// this outline with the border width paints the border area.
	StrokeBox
	// The border box, the element's outermost edge.
	BorderBox
	// The padding box, inset by the full border widths.
	PaddingBox
	// The content box, inset by the full border widths and the paddings.
	ContentBox

	numBoxKinds = iota
)

func (box BoxKind) String() string {
	switch box {
	case DoubleOuterBox:
		return "double-outer box"
	case DoubleInnerBox:
		return "double-inner box"
	case StrokeBox:
		return "stroke box"
	case BorderBox:
		return "border box"
	case PaddingBox:
		return "padding box"
	case ContentBox:
		return "content box"
	default:
		return fmt.Sprintf("BoxKind(%d)", int(box))
	}
}

// insetRule describes how a box variant is inset from the border box. Corner
// origins and effective radii are offset by borderFrac of the adjacent border
// widths, plus the adjacent paddings if padding is set. floor marks the inner
// variants whose effective radii cannot go negative: there the radii are
// floored at zero and a corner can collapse onto the variant's inner edge,
// but never extend past it.
type insetRule struct {
	borderFrac float64
	padding    bool
	floor      bool
}

var insetRules = [numBoxKinds]insetRule{
	DoubleOuterBox: {borderFrac: 1.0 / 3},
	DoubleInnerBox: {borderFrac: 2.0 / 3},
	StrokeBox:      {borderFrac: 0.5},
	BorderBox:      {},
	PaddingBox:     {borderFrac: 1, floor: true},
	ContentBox:     {borderFrac: 1, padding: true, floor: true},
}

// BoundaryCurves holds the corner geometry of all six box variants of one
// element. It is immutable after construction and holds no reference to its
// inputs; concurrent use needs no synchronization.
type BoundaryCurves struct {
	corners [numBoxKinds][4]Corner
}

// NewBoundaryCurves computes the boundary corner geometry for an element with
// the given bounds, corner radii, border widths, and paddings.
//
// The radii are normalized once (see [CornerRadii.Normalize]) and then inset
// per box variant. A corner whose effective radii are both zero or negative
// becomes a vertex; any other corner becomes a quarter arc.
//
// All inputs must be finite, and everything but bounds.Left and bounds.Top
// must be non-negative; the result is unspecified otherwise. No validation is
// performed.
func NewBoundaryCurves(bounds Bounds, radii CornerRadii, borders, padding SideWidths) BoundaryCurves {
	radii = radii.Normalize(bounds.Width, bounds.Height)

	var bc BoundaryCurves
	for box, rule := range insetRules {
		insets := SideWidths{
			Top:    borders.Top * rule.borderFrac,
			Right:  borders.Right * rule.borderFrac,
			Bottom: borders.Bottom * rule.borderFrac,
			Left:   borders.Left * rule.borderFrac,
		}
		if rule.padding {
			insets.Top += padding.Top
			insets.Right += padding.Right
			insets.Bottom += padding.Bottom
			insets.Left += padding.Left
		}

		// The variant's own rectangle. Corner origins are anchored to it so
		// that arcs start and end exactly on its edges.
		left := bounds.Left + insets.Left
		top := bounds.Top + insets.Top
		right := bounds.Right() - insets.Right
		bottom := bounds.Bottom() - insets.Bottom

		for pos := TopLeft; pos <= BottomLeft; pos++ {
			var ax, ay float64 // insets adjacent to this corner
			switch pos {
			case TopLeft:
				ax, ay = insets.Left, insets.Top
			case TopRight:
				ax, ay = insets.Right, insets.Top
			case BottomRight:
				ax, ay = insets.Right, insets.Bottom
			case BottomLeft:
				ax, ay = insets.Left, insets.Bottom
			}

			r1 := radii[pos].X - ax
			r2 := radii[pos].Y - ay
			if rule.floor {
				r1 = max(r1, 0)
				r2 = max(r2, 0)
			}
			if r1 <= 0 && r2 <= 0 {
				switch pos {
				case TopLeft:
					bc.corners[box][pos] = Vertex(Pt(left, top))
				case TopRight:
					bc.corners[box][pos] = Vertex(Pt(right, top))
				case BottomRight:
					bc.corners[box][pos] = Vertex(Pt(right, bottom))
				case BottomLeft:
					bc.corners[box][pos] = Vertex(Pt(left, bottom))
				}
				continue
			}

			// Origin of the arc's bounding box. Far-edge corners are anchored
			// by their end points, so the origin backs off by the radius.
			var x, y float64
			switch pos {
			case TopLeft:
				x, y = left, top
			case TopRight:
				x, y = right-r1, top
			case BottomRight:
				x, y = right-r1, bottom-r2
			case BottomLeft:
				x, y = left, bottom-r2
			}
			bc.corners[box][pos] = arcCorner(x, y, r1, r2, pos)
		}
	}
	return bc
}

// At returns the corner geometry of one corner of one box variant.
func (bc BoundaryCurves) At(box BoxKind, pos CornerPos) Corner {
	return bc.corners[box][pos]
}

// BoxPath returns the four corners of a box variant in TL, TR, BR, BL order,
// the clockwise winding a drawing backend must walk to trace the closed
// outline without self-intersection.
func (bc BoundaryCurves) BoxPath(box BoxKind) [4]Corner {
	return bc.corners[box]
}

// BorderBoxPath returns the ordered corners of the border box.
func (bc BoundaryCurves) BorderBoxPath() [4]Corner {
	return bc.BoxPath(BorderBox)
}

// PaddingBoxPath returns the ordered corners of the padding box.
func (bc BoundaryCurves) PaddingBoxPath() [4]Corner {
	return bc.BoxPath(PaddingBox)
}

// ContentBoxPath returns the ordered corners of the content box.
func (bc BoundaryCurves) ContentBoxPath() [4]Corner {
	return bc.BoxPath(ContentBox)
}

// Path returns a box variant's outline as a Bézier path.
func (bc BoundaryCurves) Path(box BoxKind) BezPath {
	return slices.Collect(bc.PathElements(box))
}

// PathElements walks a box variant's four corners into drawing commands: a
// move to the first corner's start, a line to each subsequent corner's start,
// a cubic for every rounded corner, and a final close that draws the edge
// back to the start.
func (bc BoundaryCurves) PathElements(box BoxKind) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		for pos, c := range bc.corners[box] {
			var e PathElement
			if pos == 0 {
				e = MoveTo(c.Start())
			} else {
				e = LineTo(c.Start())
			}
			if !yield(e) {
				return
			}
			if c.Kind == ArcKind {
				if !yield(CubicTo(c.P1, c.P2, c.P3)) {
					return
				}
			}
		}
		yield(ClosePath())
	}
}
