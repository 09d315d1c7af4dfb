// Package geometry provides the cell-grid primitives the window manager
// operates on: points, rectangles and chrome hit-testing. Everything here is
// pure value math with no rendering or state.
package geometry

// Point is a position on the cell grid.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned rectangle. W and H are in cells; the rectangle
// spans [X, X+W) horizontally and [Y, Y+H) vertically.
type Rect struct {
	X, Y, W, H int
}

// Right returns the exclusive right edge.
func (r Rect) Right() int { return r.X + r.W }

// Bottom returns the exclusive bottom edge.
func (r Rect) Bottom() int { return r.Y + r.H }

// Contains reports whether p falls inside r.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X < r.Right() && p.Y >= r.Y && p.Y < r.Bottom()
}

// Scale maps r from an old viewport to a new one, scaling both position and
// size by the ratio of the two. Integer cell math truncates toward zero.
func (r Rect) Scale(oldW, oldH, newW, newH int) Rect {
	if oldW <= 0 || oldH <= 0 {
		return r
	}
	return Rect{
		X: r.X * newW / oldW,
		Y: r.Y * newH / oldH,
		W: r.W * newW / oldW,
		H: r.H * newH / oldH,
	}
}

// Clamp returns v limited to [lo, hi]. hi wins when the bounds cross.
func Clamp(v, lo, hi int) int {
	if v < lo {
		v = lo
	}
	if v > hi {
		v = hi
	}
	return v
}

// Region identifies which part of a window's chrome a point falls on.
type Region int

const (
	RegionNone Region = iota
	RegionTitleBar
	RegionMinimizeButton
	RegionMaximizeButton
	RegionCloseButton
	RegionResizeHandle
	RegionBody
)

// Chrome layout constants, in cells. Buttons sit right-aligned on the title
// row; the resize handle is the bottom-right corner block.
const (
	ButtonWidth       = 3
	ButtonGap         = 0
	ResizeHandleWidth = 2
)

// CloseButtonRect returns the close button's rectangle on the title row.
func CloseButtonRect(r Rect) Rect {
	return Rect{X: r.Right() - ButtonWidth, Y: r.Y, W: ButtonWidth, H: 1}
}

// MaximizeButtonRect returns the maximize button's rectangle.
func MaximizeButtonRect(r Rect) Rect {
	return Rect{X: r.Right() - 2*ButtonWidth, Y: r.Y, W: ButtonWidth, H: 1}
}

// MinimizeButtonRect returns the minimize button's rectangle.
func MinimizeButtonRect(r Rect) Rect {
	return Rect{X: r.Right() - 3*ButtonWidth, Y: r.Y, W: ButtonWidth, H: 1}
}

// ResizeHandleRect returns the resize grab area at the bottom-right corner.
func ResizeHandleRect(r Rect) Rect {
	return Rect{X: r.Right() - ResizeHandleWidth, Y: r.Bottom() - 1, W: ResizeHandleWidth, H: 1}
}

// HitTest maps a point to the chrome region of a window rectangle it falls
// on. The title bar is the top row, with the minimize/maximize/close buttons
// taking precedence over the bare title area.
func HitTest(r Rect, p Point) Region {
	if !r.Contains(p) {
		return RegionNone
	}
	if p.Y == r.Y {
		switch {
		case CloseButtonRect(r).Contains(p):
			return RegionCloseButton
		case MaximizeButtonRect(r).Contains(p):
			return RegionMaximizeButton
		case MinimizeButtonRect(r).Contains(p):
			return RegionMinimizeButton
		default:
			return RegionTitleBar
		}
	}
	if ResizeHandleRect(r).Contains(p) {
		return RegionResizeHandle
	}
	return RegionBody
}
