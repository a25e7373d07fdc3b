package boxcurve

import (
	"math"
	"testing"
)

func TestArcCornerControlPoints(t *testing.T) {
	// Origin (10, 20), horizontal radius 4, vertical radius 6.
	x, y := 10.0, 20.0
	r1, r2 := 4.0, 6.0
	ox := r1 * kappa
	oy := r2 * kappa
	xm := x + r1
	ym := y + r2

	f := func(pos CornerPos, want CubicBez) {
		t.Helper()
		got := arcCorner(x, y, r1, r2, pos)
		if got.Kind != ArcKind {
			t.Fatalf("%v: got kind %v, want ArcKind", pos, got.Kind)
		}
		diff(t, want, got.Arc())
	}

	f(TopLeft, CubicBez{Pt(x, ym), Pt(x, ym-oy), Pt(xm-ox, y), Pt(xm, y)})
	f(TopRight, CubicBez{Pt(x, y), Pt(x+ox, y), Pt(xm, ym-oy), Pt(xm, ym)})
	f(BottomRight, CubicBez{Pt(xm, y), Pt(xm, y+oy), Pt(x+ox, ym), Pt(x, ym)})
	f(BottomLeft, CubicBez{Pt(xm, ym), Pt(xm-ox, ym), Pt(x, y+oy), Pt(x, y)})
}

func TestArcCornerEvalEndpoints(t *testing.T) {
	for pos := TopLeft; pos <= BottomLeft; pos++ {
		c := arcCorner(-3, 7, 5, 2, pos).Arc()
		if got := c.Eval(0); got != c.Start() {
			t.Errorf("%v: Eval(0) = %v, want %v", pos, got, c.Start())
		}
		if got := c.Eval(1); got != c.End() {
			t.Errorf("%v: Eval(1) = %v, want %v", pos, got, c.End())
		}
	}
}

func TestArcCornerApproximatesCircle(t *testing.T) {
	// For a circular radius, every sample of the arc stays within the known
	// error bound of the kappa approximation (about 0.027% of the radius).
	const r = 10.0
	centers := [4]Point{
		TopLeft:     Pt(r, r),
		TopRight:    Pt(0, r),
		BottomRight: Pt(0, 0),
		BottomLeft:  Pt(r, 0),
	}
	for pos := TopLeft; pos <= BottomLeft; pos++ {
		c := arcCorner(0, 0, r, r, pos).Arc()
		center := centers[pos]
		for i := 0; i <= 16; i++ {
			tt := float64(i) / 16
			d := c.Eval(tt).Distance(center)
			if math.Abs(d-r) > 0.0003*r {
				t.Errorf("%v: at t=%v distance from center is %v, want %v", pos, tt, d, r)
			}
		}
	}
}

func TestCornerStartEnd(t *testing.T) {
	v := Vertex(Pt(3, 4))
	if v.Start() != Pt(3, 4) || v.End() != Pt(3, 4) || v.Point() != Pt(3, 4) {
		t.Errorf("vertex start/end/point = %v/%v/%v, want (3, 4)", v.Start(), v.End(), v.Point())
	}

	a := arcCorner(0, 0, 5, 5, TopRight)
	if a.Start() != Pt(0, 0) {
		t.Errorf("got arc start %v, want (0, 0)", a.Start())
	}
	if a.End() != Pt(5, 5) {
		t.Errorf("got arc end %v, want (5, 5)", a.End())
	}
}
