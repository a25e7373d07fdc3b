// Package boxcurve computes the boundary paths of rectangular boxes with
// rounded corners, as used to render CSS-style borders, backgrounds, and
// clips. Given a box's bounds, its four corner radii (each possibly
// elliptical), its four border widths, and its four paddings, it produces the
// corner geometry of six nested outlines:
//
//   - the outer and inner thirds of a "double" border
//   - the border stroke centerline
//   - the border box
//   - the padding box
//   - the content box
//
// Each corner of each outline is either a quarter-ellipse arc, represented as
// a cubic Bézier ([CubicBez]), or a plain vertex for square corners. The two
// cases share the [Corner] tagged union; path-walking code switches on its
// Kind.
//
// # Coordinate system and winding
//
// All geometry uses a y-down coordinate system with the origin at the top
// left, the convention of 2D graphics APIs. The four corners of an outline,
// taken in top-left, top-right, bottom-right, bottom-left order, form a
// closed clockwise path. [BoundaryCurves.PathElements] walks them into
// drawing commands directly.
//
// # Radius clamping
//
// Corner radii are normalized once, globally, before any per-corner work: if
// two adjacent radii together exceed the box's extent along either axis, all
// eight radius components are scaled down by the largest overlap factor. This
// is the standard CSS overlapping-curves rule.
//
// # Arc approximation
//
// Quarter arcs place their control points at the fixed fraction
// 4·(√2−1)/3 ≈ 0.5523 of the radius from the endpoints, the standard cubic
// Bézier approximation of a circular arc. See [Approximate a circle with
// cubic Bézier curves] by Spencer Mortensen.
//
// The package is a pure computation with no I/O and no shared state; values
// are immutable after construction and safe to use from multiple goroutines.
//
// [Approximate a circle with cubic Bézier curves]: https://spencermortensen.com/articles/bezier-circle/
package boxcurve
