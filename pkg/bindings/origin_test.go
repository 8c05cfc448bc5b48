package bindings

import (
	"testing"

	"gioui.org/f32"
	"github.com/stretchr/testify/assert"

	"github.com/go-drift/bindingx/pkg/graphics"
)

func TestParseTransformOrigin(t *testing.T) {
	size := graphics.Size{Width: 200, Height: 100}

	tests := []struct {
		origin string
		want   f32.Point
		ok     bool
	}{
		{"50% 50%", f32.Pt(100, 50), true},
		{"0% 100%", f32.Pt(0, 100), true},
		{"left top", f32.Pt(0, 0), true},
		{"top left", f32.Pt(0, 0), true},
		{"right bottom", f32.Pt(200, 100), true},
		{"bottom right", f32.Pt(200, 100), true},
		{"center", f32.Pt(100, 50), true},
		{"left", f32.Pt(0, 50), true},
		{"top", f32.Pt(100, 0), true},
		{"25%", f32.Pt(50, 50), true},
		{"center bottom", f32.Pt(100, 100), true},
		{"top center", f32.Pt(100, 0), true},
		{"10px 20px", f32.Pt(10, 20), true},
		{"10 20", f32.Pt(10, 20), true},
		{"  LEFT   Bottom ", f32.Pt(0, 100), true},
		{"top 25%", f32.Pt(50, 0), true},
		{"", f32.Point{}, false},
		{"left right", f32.Point{}, false},
		{"top bottom", f32.Point{}, false},
		{"1 2 3", f32.Point{}, false},
		{"middle", f32.Point{}, false},
		{"abc%", f32.Point{}, false},
		{"10em 5", f32.Point{}, false},
		{"NaN% 10", f32.Point{}, false},
		{"10 NaN", f32.Point{}, false},
		{"Inf 0", f32.Point{}, false},
		{"-Infinity%", f32.Point{}, false},
		{"1e400px 0", f32.Point{}, false},
		{"1e300 0", f32.Point{}, false},
		{"1e300% 0", f32.Point{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.origin, func(t *testing.T) {
			got, ok := ParseTransformOrigin(tt.origin, size)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTransformOriginZeroSize(t *testing.T) {
	_, ok := ParseTransformOrigin("50% 50%", graphics.Size{Width: 10})
	assert.False(t, ok)
}

func TestParseTransformOriginIdempotent(t *testing.T) {
	size := graphics.Size{Width: 64, Height: 48}
	a, okA := ParseTransformOrigin("30% bottom", size)
	b, okB := ParseTransformOrigin("30% bottom", size)
	assert.True(t, okA)
	assert.Equal(t, okA, okB)
	assert.Equal(t, a, b)
}
