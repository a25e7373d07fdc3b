package boxcurve

import "iter"

// CubicBez is a single cubic Bézier segment. When produced by this package it
// approximates the quarter-ellipse arc rounding one corner of a box: P0 and
// P3 lie on the two straight edges meeting at the corner, and P1 and P2 are
// offset from them by the kappa fraction of the corner's radii.
type CubicBez struct {
	P0 Point
	P1 Point
	P2 Point
	P3 Point
}

// Start returns the start point of the segment.
func (c CubicBez) Start() Point { return c.P0 }

// End returns the end point of the segment.
func (c CubicBez) End() Point { return c.P3 }

// Eval evaluates the segment at t ∈ [0, 1].
func (c CubicBez) Eval(t float64) Point {
	mt := 1.0 - t
	a := Vec2(c.P0).Mul(mt * mt * mt)
	b := Vec2(c.P1).Mul(mt * mt * 3.0)
	cc := Vec2(c.P2).Mul(mt * 3.0)
	d := Vec2(c.P3)
	v := a.Add(b.Add(cc.Add(d.Mul(t)).Mul(t)).Mul(t))
	return Point(v)
}

// PathElements returns the segment as path elements.
func (c CubicBez) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		_ = yield(MoveTo(c.P0)) &&
			yield(CubicTo(c.P1, c.P2, c.P3))
	}
}

func (c CubicBez) IsInf() bool {
	return c.P0.IsInf() || c.P1.IsInf() || c.P2.IsInf() || c.P3.IsInf()
}

func (c CubicBez) IsNaN() bool {
	return c.P0.IsNaN() || c.P1.IsNaN() || c.P2.IsNaN() || c.P3.IsNaN()
}
