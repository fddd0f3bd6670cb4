package render

import (
	"image/color"
	"testing"
)

func TestDarkenAndLighten(t *testing.T) {
	tests := []struct {
		name string
		fn   func(color.RGBA) color.RGBA
		in   color.RGBA
		want color.RGBA
	}{
		{"darken", DarkenColor, color.RGBA{200, 100, 50, 255}, color.RGBA{100, 50, 25, 255}},
		{"darken keeps alpha", DarkenColor, color.RGBA{10, 10, 10, 128}, color.RGBA{5, 5, 5, 128}},
		{"lighten", LightenColor, color.RGBA{0, 100, 255, 255}, color.RGBA{127, 177, 255, 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.fn(tt.in); got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFuseFlickerStartsAtDrop(t *testing.T) {
	// Только что сброшенная бомба начинает с минимальной искры,
	// независимо от игрового времени сброса.
	if got := fuseFlicker(0); got != 0.6 {
		t.Errorf("fuseFlicker(0) = %v, want 0.6", got)
	}
	for age := 0.0; age < 2; age += 0.01 {
		if f := fuseFlicker(age); f < 0.6 || f > 1.0001 {
			t.Fatalf("fuseFlicker(%v) = %v, out of [0.6, 1]", age, f)
		}
	}
}
