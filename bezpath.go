package boxcurve

import (
	"fmt"
	"slices"
)

type PathElementKind int

const (
	// Move directly to the point without drawing anything, starting a new
	// subpath.
	MoveToKind PathElementKind = iota + 1
	// Draw a line from the current location to the point.
	LineToKind
	// Draw a cubic bezier using the current location and the three points.
	CubicToKind
	// Close off the path.
	ClosePathKind
)

// PathElement is a single drawing command of a Bézier path. Boundary paths
// consist of straight edges and cubic corner arcs, so only MoveTo, LineTo,
// CubicTo, and ClosePath occur.
//
// A valid path has MoveTo at the beginning of each subpath.
type PathElement struct {
	Kind PathElementKind
	P0   Point
	P1   Point
	P2   Point
}

func (el PathElement) String() string {
	var kind string
	switch el.Kind {
	case MoveToKind:
		kind = "MoveTo"
	case LineToKind:
		kind = "LineTo"
	case CubicToKind:
		kind = "CubicTo"
	case ClosePathKind:
		kind = "ClosePath"
	default:
		kind = "InvalidPathElement"
	}
	return fmt.Sprintf("%s(%s, %s, %s)", kind, el.P0, el.P1, el.P2)
}

func (el PathElement) IsInf() bool {
	return el.P0.IsInf() ||
		el.P1.IsInf() ||
		el.P2.IsInf()
}

func (el PathElement) IsNaN() bool {
	return el.P0.IsNaN() ||
		el.P1.IsNaN() ||
		el.P2.IsNaN()
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func CubicTo(p0, p1, p2 Point) PathElement {
	return PathElement{Kind: CubicToKind, P0: p0, P1: p1, P2: p2}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// BezPath is a Bézier path represented as a slice of path elements.
type BezPath []PathElement

func (p BezPath) IsInf() bool {
	return slices.ContainsFunc(p, PathElement.IsInf)
}

func (p BezPath) IsNaN() bool {
	return slices.ContainsFunc(p, PathElement.IsNaN)
}
