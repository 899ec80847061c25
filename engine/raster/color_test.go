package raster

import "testing"

func TestColorBytesClamps(t *testing.T) {
	cases := []struct {
		name string
		c    Color
		want [4]byte
	}{
		{"black", Color{0, 0, 0}, [4]byte{0, 0, 0, 255}},
		{"white", Color{1, 1, 1}, [4]byte{255, 255, 255, 255}},
		{"over-range clamps high", Color{2, 2, 2}, [4]byte{255, 255, 255, 255}},
		{"negative clamps low", Color{-1, -1, -1}, [4]byte{0, 0, 0, 255}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.c.Bytes(); got != tc.want {
				t.Errorf("Bytes() = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestColorScaled(t *testing.T) {
	c := Color{R: 1, G: 0.5, B: 0.25}
	got := c.Scaled(0.8)
	want := Color{R: 0.8, G: 0.4, B: 0.2}
	if got != want {
		t.Errorf("Scaled(0.8) = %v, want %v", got, want)
	}
}
