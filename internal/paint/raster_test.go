package paint

import (
	"image/color"
	"testing"
)

var (
	testBackground = color.NRGBA{R: 7, G: 194, B: 170, A: 255}
	testProgress   = color.NRGBA{R: 0, G: 67, B: 73, A: 255}
	testArc        = color.NRGBA{R: 249, G: 168, B: 37, A: 255}
)

func rgbaEqual(got color.Color, want color.NRGBA) bool {
	r1, g1, b1, a1 := got.RGBA()
	r2, g2, b2, a2 := want.RGBA()
	return r1 == r2 && g1 == g2 && b1 == b2 && a1 == a2
}

func TestRasterize_RectsAndArc(t *testing.T) {
	rec := NewRecorder(200, 100, nil)
	rec.DrawRect(RectXYWH(0, 0, 200, 100), testBackground)
	rec.DrawRect(RectXYWH(0, 0, 100, 100), testProgress)
	rec.DrawArc(RectXYWH(140, 30, 40, 40), 0, 90, testArc)

	img := Rasterize(rec.DisplayList(), nil)

	if b := img.Bounds(); b.Dx() != 200 || b.Dy() != 100 {
		t.Fatalf("unexpected image size %v", b)
	}
	if got := img.At(50, 50); !rgbaEqual(got, testProgress) {
		t.Errorf("expected progress color inside fill, got %v", got)
	}
	if got := img.At(120, 10); !rgbaEqual(got, testBackground) {
		t.Errorf("expected background outside fill, got %v", got)
	}

	// Center is (160,50); the first quadrant clockwise from 0° lies below and right
	if got := img.At(168, 58); !rgbaEqual(got, testArc) {
		t.Errorf("expected arc color inside the swept quadrant, got %v", got)
	}
	if got := img.At(152, 42); !rgbaEqual(got, testBackground) {
		t.Errorf("expected background outside the swept quadrant, got %v", got)
	}
}

func TestRasterize_ZeroSize(t *testing.T) {
	rec := NewRecorder(0, 0, nil)
	rec.DrawRect(RectXYWH(0, 0, 10, 10), testBackground)

	img := Rasterize(rec.DisplayList(), nil)
	if !img.Bounds().Empty() {
		t.Errorf("expected empty image, got %v", img.Bounds())
	}
}

func TestRasterize_ZeroSweepDrawsNothing(t *testing.T) {
	rec := NewRecorder(40, 40, nil)
	rec.DrawArc(RectXYWH(0, 0, 40, 40), 0, 0, testArc)

	img := Rasterize(rec.DisplayList(), nil)
	if _, _, _, a := img.At(30, 25).RGBA(); a != 0 {
		t.Error("expected transparent pixel for zero sweep")
	}
}

func TestFaceMetrics_MeasureText(t *testing.T) {
	m := FaceMetrics{Face: DefaultFace()}
	got := m.MeasureText("abc", 99)

	// basicfont.Face7x13 advances 7px per glyph regardless of requested size
	if got.Width != 21 {
		t.Errorf("expected width 21, got %v", got.Width)
	}
	if got.Ascent <= 0 {
		t.Errorf("expected positive ascent, got %v", got.Ascent)
	}
}
