package pyvnc

// Point is a position in either absolute server-pixel coordinates or
// the resolution-independent "relative" coordinate space produced by
// RelativeResolution.
type Point struct {
	X, Y int
}

// Rect is an axis-aligned region, also usable in either coordinate
// space.
type Rect struct {
	X, Y, Width, Height int
}

// Pointer is implemented by anything that can be asked for the Point
// it represents — accepted anywhere this package takes a Point, so
// callers can pass a UI-element-shaped value (e.g. a button's centre)
// without converting it by hand first.
type Pointer interface {
	GetPoint() Point
}

// Rectangler is the Rect equivalent of Pointer.
type Rectangler interface {
	GetRect() Rect
}

func (p Point) GetPoint() Point { return p }
func (r Rect) GetRect() Rect    { return r }

func resolvePoint(p Pointer) Point {
	return p.GetPoint()
}

func resolveRect(r Rectangler) Rect {
	return r.GetRect()
}

// relativeResolution computes the resolution-independent coordinate
// space for a framebuffer of size (w, h): both dimensions are positive
// multiples of 100, at most 99900, and the aspect ratio of
// (relW, relH) closely matches (w, h).
func relativeResolution(w, h int) Point {
	aspect := float64(w) / float64(h)
	const max = 99900
	if aspect >= 1 {
		relH := int(max/aspect/100) * 100
		if relH < 100 {
			relH = 100
		}
		return Point{max, relH}
	}
	relW := int(max*aspect/100) * 100
	if relW < 100 {
		relW = 100
	}
	return Point{relW, max}
}

// convertRelativePoint maps a point in the relative coordinate space
// for a (w, h)-sized framebuffer to absolute pixel coordinates.
func convertRelativePoint(p Point, w, h int) Point {
	rel := relativeResolution(w, h)
	return Point{
		X: p.X * w / rel.X,
		Y: p.Y * h / rel.Y,
	}
}

// convertRelativeRect maps a rect in the relative coordinate space to
// absolute pixel coordinates, converting origin and extent
// independently.
func convertRelativeRect(r Rect, w, h int) Rect {
	rel := relativeResolution(w, h)
	return Rect{
		X:      r.X * w / rel.X,
		Y:      r.Y * h / rel.Y,
		Width:  r.Width * w / rel.X,
		Height: r.Height * h / rel.Y,
	}
}
