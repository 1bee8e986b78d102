package obj

import (
	"image/color"
	"testing"
)

func TestGradientAt(t *testing.T) {
	top := color.NRGBA{R: 114, G: 177, B: 211, A: 255}
	bottom := color.NRGBA{R: 221, G: 236, B: 244, A: 255}

	cases := []struct {
		name string
		t    float64
		want color.RGBA
	}{
		{"top", 0, color.RGBA{R: 114, G: 177, B: 211, A: 255}},
		{"bottom", 1, color.RGBA{R: 221, G: 236, B: 244, A: 255}},
		{"clamped_above", 1.5, color.RGBA{R: 221, G: 236, B: 244, A: 255}},
		{"clamped_below", -0.5, color.RGBA{R: 114, G: 177, B: 211, A: 255}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if got := gradientAt(top, bottom, c.t); got != c.want {
				t.Fatalf("gradientAt(%v) = %+v, want %+v", c.t, got, c.want)
			}
		})
	}
}

func TestGradientAtMidpoint(t *testing.T) {
	top := color.NRGBA{R: 0, G: 100, B: 200, A: 255}
	bottom := color.NRGBA{R: 100, G: 0, B: 100, A: 255}
	got := gradientAt(top, bottom, 0.5)
	want := color.RGBA{R: 50, G: 50, B: 150, A: 255}
	if got != want {
		t.Fatalf("midpoint = %+v, want %+v", got, want)
	}
}
