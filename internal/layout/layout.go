// Package layout computes pixel placement for watermark text inside an
// image, based on one of nine named anchor positions.
package layout

// Anchor names accepted by Position.
const (
	TopLeft      = "top-left"
	TopCenter    = "top-center"
	TopRight     = "top-right"
	CenterLeft   = "center-left"
	Center       = "center"
	CenterRight  = "center-right"
	BottomLeft   = "bottom-left"
	BottomCenter = "bottom-center"
	BottomRight  = "bottom-right"
)

// Margin is the fixed distance in pixels from any edge the anchor touches.
const Margin = 10

// Point is the top-left pixel coordinate of the text box.
type Point struct {
	X int
	Y int
}

// Anchors lists all valid anchor names in reading order.
func Anchors() []string {
	return []string{
		TopLeft, TopCenter, TopRight,
		CenterLeft, Center, CenterRight,
		BottomLeft, BottomCenter, BottomRight,
	}
}

// Valid reports whether name is one of the nine anchors.
func Valid(name string) bool {
	switch name {
	case TopLeft, TopCenter, TopRight,
		CenterLeft, Center, CenterRight,
		BottomLeft, BottomCenter, BottomRight:
		return true
	}
	return false
}

// Position returns the top-left coordinate for a text box of
// textW x textH inside an image of imgW x imgH at the given anchor.
// Centered axes use floor division; no clamping is applied, so on
// images smaller than the text plus margins a coordinate may fall
// outside the image. An unknown anchor resolves to bottom-right.
func Position(imgW, imgH, textW, textH int, anchor string) Point {
	left := Margin
	right := imgW - textW - Margin
	top := Margin
	bottom := imgH - textH - Margin
	centerX := (imgW - textW) / 2
	centerY := (imgH - textH) / 2

	switch anchor {
	case TopLeft:
		return Point{left, top}
	case TopCenter:
		return Point{centerX, top}
	case TopRight:
		return Point{right, top}
	case CenterLeft:
		return Point{left, centerY}
	case Center:
		return Point{centerX, centerY}
	case CenterRight:
		return Point{right, centerY}
	case BottomLeft:
		return Point{left, bottom}
	case BottomCenter:
		return Point{centerX, bottom}
	default:
		return Point{right, bottom}
	}
}
