package zrender

// Vec2 is a 2D point or vector.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{v.X + o.X, v.Y + o.Y}
}

// Rect is an axis-aligned rectangle.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.X+r.Width && y >= r.Y && y < r.Y+r.Height
}

// Center returns the rectangle's center point.
func (r Rect) Center() Vec2 {
	return Vec2{r.X + r.Width/2, r.Y + r.Height/2}
}

// union returns the smallest rectangle covering both r and o.
func (r Rect) union(o Rect) Rect {
	x0 := min(r.X, o.X)
	y0 := min(r.Y, o.Y)
	x1 := max(r.X+r.Width, o.X+o.Width)
	y1 := max(r.Y+r.Height, o.Y+o.Height)
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// intersect returns the overlap of r and o. Width/Height are zero when the
// rectangles do not overlap.
func (r Rect) intersect(o Rect) Rect {
	x0 := max(r.X, o.X)
	y0 := max(r.Y, o.Y)
	x1 := min(r.X+r.Width, o.X+o.Width)
	y1 := min(r.Y+r.Height, o.Y+o.Height)
	if x1 < x0 {
		x1 = x0
	}
	if y1 < y0 {
		y1 = y0
	}
	return Rect{x0, y0, x1 - x0, y1 - y0}
}

// Color is an RGBA color with components in [0, 1]. Not premultiplied.
type Color struct {
	R, G, B, A float64
}

var (
	ColorWhite = Color{1, 1, 1, 1}
	ColorBlack = Color{0, 0, 0, 1}
)

// NodeType identifies the drawable kind of a node.
type NodeType uint8

const (
	NodeTypeNode NodeType = iota
	NodeTypeGroup
	NodeTypeRect
	NodeTypeCircle
	NodeTypeText
	NodeTypeImage
)

func (t NodeType) String() string {
	switch t {
	case NodeTypeNode:
		return "node"
	case NodeTypeGroup:
		return "group"
	case NodeTypeRect:
		return "rect"
	case NodeTypeCircle:
		return "circle"
	case NodeTypeText:
		return "text"
	case NodeTypeImage:
		return "image"
	}
	return "unknown"
}

// DragMode controls how Drift applies a drag delta.
type DragMode uint8

const (
	// DragNone disables dragging entirely.
	DragNone DragMode = iota
	// DragFree allows movement along both axes.
	DragFree
	// DragHorizontal locks movement to the X axis.
	DragHorizontal
	// DragVertical locks movement to the Y axis.
	DragVertical
)

// TextAlign is the horizontal anchor of rendered text.
type TextAlign uint8

const (
	AlignLeft TextAlign = iota
	AlignCenter
	AlignRight
)

// VerticalAlign is the vertical anchor of rendered text.
type VerticalAlign uint8

const (
	AlignTop VerticalAlign = iota
	AlignMiddle
	AlignBottom
)

// TextPosition is a keyword anchor for attached-label placement relative to
// the host node's bounding rect. The zero value leaves the position
// unspecified, which resolves to TextPositionInside.
type TextPosition uint8

const (
	TextPositionUnset TextPosition = iota
	TextPositionInside
	TextPositionInsideLeft
	TextPositionInsideRight
	TextPositionInsideTop
	TextPositionInsideBottom
	TextPositionInsideTopLeft
	TextPositionInsideTopRight
	TextPositionInsideBottomLeft
	TextPositionInsideBottomRight
	TextPositionLeft
	TextPositionRight
	TextPositionTop
	TextPositionBottom
)

// IsInside reports whether the keyword places the label inside the host's
// bounding rect. An unset position defaults to inside.
func (p TextPosition) IsInside() bool {
	return p <= TextPositionInsideBottomRight
}

func (p TextPosition) String() string {
	switch p {
	case TextPositionInside:
		return "inside"
	case TextPositionInsideLeft:
		return "insideLeft"
	case TextPositionInsideRight:
		return "insideRight"
	case TextPositionInsideTop:
		return "insideTop"
	case TextPositionInsideBottom:
		return "insideBottom"
	case TextPositionInsideTopLeft:
		return "insideTopLeft"
	case TextPositionInsideTopRight:
		return "insideTopRight"
	case TextPositionInsideBottomLeft:
		return "insideBottomLeft"
	case TextPositionInsideBottomRight:
		return "insideBottomRight"
	case TextPositionLeft:
		return "left"
	case TextPositionRight:
		return "right"
	case TextPositionTop:
		return "top"
	case TextPositionBottom:
		return "bottom"
	}
	return "unset"
}

// Host is the rendering context a node tree attaches to. It schedules
// redraws and ticks animators once per frame. Scheduler is the in-package
// implementation; rendering front ends may provide their own.
type Host interface {
	// Refresh requests a redraw on the next frame.
	Refresh()
	// AddAnimator registers an animator with the per-frame tick loop.
	AddAnimator(a *Animator)
	// RemoveAnimator deregisters an animator from the tick loop.
	RemoveAnimator(a *Animator)
}
