package layout

import "testing"

func TestPosition(t *testing.T) {
	const (
		imgW  = 200
		imgH  = 100
		textW = 40
		textH = 20
	)

	cases := []struct {
		anchor string
		want   Point
	}{
		{TopLeft, Point{10, 10}},
		{TopCenter, Point{80, 10}},
		{TopRight, Point{150, 10}},
		{CenterLeft, Point{10, 40}},
		{Center, Point{80, 40}},
		{CenterRight, Point{150, 40}},
		{BottomLeft, Point{10, 70}},
		{BottomCenter, Point{80, 70}},
		{BottomRight, Point{150, 70}},
	}

	for _, tc := range cases {
		t.Run(tc.anchor, func(t *testing.T) {
			got := Position(imgW, imgH, textW, textH, tc.anchor)
			if got != tc.want {
				t.Fatalf("expected %+v, got %+v", tc.want, got)
			}
		})
	}
}

func TestPositionUnknownAnchorIsBottomRight(t *testing.T) {
	want := Position(640, 480, 100, 30, BottomRight)
	got := Position(640, 480, 100, 30, "upper-middle")
	if got != want {
		t.Fatalf("expected unknown anchor to match bottom-right %+v, got %+v", want, got)
	}
}

func TestPositionStaysInsideImage(t *testing.T) {
	dims := []struct{ imgW, imgH, textW, textH int }{
		{640, 480, 120, 30},
		{1920, 1080, 300, 48},
		{100, 100, 60, 20},
	}

	for _, d := range dims {
		for _, anchor := range Anchors() {
			p := Position(d.imgW, d.imgH, d.textW, d.textH, anchor)
			if p.X < 0 || p.X > d.imgW-d.textW {
				t.Errorf("%s on %dx%d: x=%d out of range", anchor, d.imgW, d.imgH, p.X)
			}
			if p.Y < 0 || p.Y > d.imgH-d.textH {
				t.Errorf("%s on %dx%d: y=%d out of range", anchor, d.imgW, d.imgH, p.Y)
			}
		}
	}
}

// Images smaller than the text plus margins push margin-anchored
// coordinates outside the image; that is accepted, not clamped.
func TestPositionTinyImageOverflows(t *testing.T) {
	p := Position(30, 30, 25, 15, BottomRight)
	if p.X >= 0 {
		t.Fatalf("expected negative x on tiny image, got %d", p.X)
	}
}

func TestValid(t *testing.T) {
	for _, anchor := range Anchors() {
		if !Valid(anchor) {
			t.Errorf("expected %q to be valid", anchor)
		}
	}
	if Valid("bottom") {
		t.Error("expected bare \"bottom\" to be invalid")
	}
}
