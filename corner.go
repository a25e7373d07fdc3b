package boxcurve

import (
	"fmt"
	"math"
)

// kappa positions the control points of a cubic Bézier approximating a
// quarter arc: each control point sits at this fraction of the radius from
// the nearest endpoint, tangent to the adjoining straight edge.
const kappa = 4 * (math.Sqrt2 - 1) / 3

// CornerPos identifies one corner of a box. The order is the clockwise
// winding order of a boundary path in a y-down coordinate system.
type CornerPos int

const (
	TopLeft CornerPos = iota
	TopRight
	BottomRight
	BottomLeft
)

func (pos CornerPos) String() string {
	switch pos {
	case TopLeft:
		return "top-left"
	case TopRight:
		return "top-right"
	case BottomRight:
		return "bottom-right"
	case BottomLeft:
		return "bottom-left"
	default:
		return fmt.Sprintf("CornerPos(%d)", int(pos))
	}
}

type CornerKind int

const (
	// A square corner, described by a single point.
	VertexKind CornerKind = iota + 1
	// A rounded corner, described by a cubic Bézier arc.
	ArcKind
)

// Corner is one step of a boundary path: either a vertex (square corner) or a
// quarter-ellipse arc (rounded corner). This type acts as a tagged union; we
// don't use an interface so that corners stay plain values and boundary sets
// allocate nothing beyond themselves.
//
// Path-walking code treats both kinds uniformly: a straight line to
// [Corner.Start], then, for an arc, the Bézier segment to [Corner.End].
type Corner struct {
	Kind CornerKind
	P0   Point
	P1   Point
	P2   Point
	P3   Point
}

// Vertex returns a square corner at pt.
func Vertex(pt Point) Corner {
	return Corner{Kind: VertexKind, P0: pt}
}

// arcCorner returns the rounded corner whose arc spans the axis-aligned box
// with top-left origin (x, y) and radii r1 (horizontal) and r2 (vertical).
// The sweep direction depends on the corner: each arc runs from one adjoining
// edge to the other so that the four corners of a box, taken in TL, TR, BR,
// BL order, form a continuous clockwise outline.
func arcCorner(x, y, r1, r2 float64, pos CornerPos) Corner {
	ox := r1 * kappa
	oy := r2 * kappa
	xm := x + r1
	ym := y + r2
	var c CubicBez
	switch pos {
	case TopLeft:
		c = CubicBez{
			P0: Pt(x, ym),
			P1: Pt(x, ym-oy),
			P2: Pt(xm-ox, y),
			P3: Pt(xm, y),
		}
	case TopRight:
		c = CubicBez{
			P0: Pt(x, y),
			P1: Pt(x+ox, y),
			P2: Pt(xm, ym-oy),
			P3: Pt(xm, ym),
		}
	case BottomRight:
		c = CubicBez{
			P0: Pt(xm, y),
			P1: Pt(xm, y+oy),
			P2: Pt(x+ox, ym),
			P3: Pt(x, ym),
		}
	case BottomLeft:
		c = CubicBez{
			P0: Pt(xm, ym),
			P1: Pt(xm-ox, ym),
			P2: Pt(x, y+oy),
			P3: Pt(x, y),
		}
	}
	return Corner{Kind: ArcKind, P0: c.P0, P1: c.P1, P2: c.P2, P3: c.P3}
}

// Start returns the point a boundary path enters this corner at. For a vertex
// this is the vertex itself.
func (c Corner) Start() Point {
	return c.P0
}

// End returns the point a boundary path leaves this corner at. For a vertex
// this is the vertex itself.
func (c Corner) End() Point {
	if c.Kind == VertexKind {
		return c.P0
	}
	return c.P3
}

// Point returns the vertex location. This is only valid when Kind ==
// VertexKind.
func (c Corner) Point() Point {
	return c.P0
}

// Arc returns the corner's arc as a cubic Bézier. This is only valid when
// Kind == ArcKind.
func (c Corner) Arc() CubicBez {
	return CubicBez{c.P0, c.P1, c.P2, c.P3}
}

func (c Corner) String() string {
	switch c.Kind {
	case VertexKind:
		return fmt.Sprintf("Vertex(%s)", c.P0)
	case ArcKind:
		return fmt.Sprintf("Arc(%s, %s, %s, %s)", c.P0, c.P1, c.P2, c.P3)
	default:
		return "InvalidCorner"
	}
}

func (c Corner) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c Corner) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}
