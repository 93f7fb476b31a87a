// Package geom provides the axis-aligned rectangle used by the collision code.
//
// Containment is half-open: a point on the left or top edge is inside, a point on
// the right or bottom edge is not. Overlap is strict, so two rectangles that only
// share an edge do not overlap.
package geom

// Point is a position in world pixels.
type Point struct {
	X, Y float64
}

// Rect is an axis-aligned box anchored at its top-left corner.
type Rect struct {
	X, Y, W, H float64
}

func NewRect(x, y, w, h float64) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

func (r Rect) Left() float64   { return r.X }
func (r Rect) Right() float64  { return r.X + r.W }
func (r Rect) Top() float64    { return r.Y }
func (r Rect) Bottom() float64 { return r.Y + r.H }
func (r Rect) CenterX() float64 {
	return r.X + r.W/2
}
func (r Rect) CenterY() float64 {
	return r.Y + r.H/2
}

// Reference points. Right and bottom coordinates lie on the far edge, which is
// outside the rectangle itself.
func (r Rect) TopLeft() Point     { return Point{r.Left(), r.Top()} }
func (r Rect) MidTop() Point      { return Point{r.CenterX(), r.Top()} }
func (r Rect) TopRight() Point    { return Point{r.Right(), r.Top()} }
func (r Rect) MidLeft() Point     { return Point{r.Left(), r.CenterY()} }
func (r Rect) MidRight() Point    { return Point{r.Right(), r.CenterY()} }
func (r Rect) BottomLeft() Point  { return Point{r.Left(), r.Bottom()} }
func (r Rect) MidBottom() Point   { return Point{r.CenterX(), r.Bottom()} }
func (r Rect) BottomRight() Point { return Point{r.Right(), r.Bottom()} }

// Empty reports whether r has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Contains reports whether p lies inside r.
func (r Rect) Contains(p Point) bool {
	return r.X <= p.X && p.X < r.Right() && r.Y <= p.Y && p.Y < r.Bottom()
}

// Overlaps reports whether r and o share any area.
func (r Rect) Overlaps(o Rect) bool {
	if r.Empty() || o.Empty() {
		return false
	}
	return r.X < o.Right() && r.Right() > o.X && r.Y < o.Bottom() && r.Bottom() > o.Y
}

// Moved returns r translated by dx, dy.
func (r Rect) Moved(dx, dy float64) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

// Union returns the smallest rectangle containing both r and o.
func (r Rect) Union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	x := min(r.X, o.X)
	y := min(r.Y, o.Y)
	return Rect{X: x, Y: y, W: max(r.Right(), o.Right()) - x, H: max(r.Bottom(), o.Bottom()) - y}
}
