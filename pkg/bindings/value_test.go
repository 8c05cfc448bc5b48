package bindings

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/go-drift/bindingx/pkg/graphics"
)

func TestCoerce(t *testing.T) {
	tests := []struct {
		name string
		raw  any
		want TickValue
	}{
		{"float64", 0.5, Scalar(0.5)},
		{"float32", float32(2), Scalar(2)},
		{"negative float", -3.25, Scalar(-3.25)},
		{"int", 0x10, IntColor(0x10)},
		{"int32", int32(-65536), IntColor(-65536)},
		{"uint32 opaque", uint32(0xFFFF0000), IntColor(-65536)},
		{"int64 unsigned range", int64(0xFF00FF00), IntColor(int32(-16711936))},
		{"int64 too large", int64(math.MaxUint32) + 1, Rejected},
		{"int64 too small", int64(math.MinInt32) - 1, Rejected},
		{"uint64 too large", uint64(math.MaxUint64), Rejected},
		{"graphics color", graphics.ColorRed, IntColor(-65536)},
		{"any pair", []any{10.0, 20.0}, Pair(10, 20)},
		{"any pair with ints", []any{1, int64(2)}, Pair(1, 2)},
		{"extra elements ignored", []any{1.0, 2.0, "x"}, Pair(1, 2)},
		{"float64 slice", []float64{3, 4, 5}, Pair(3, 4)},
		{"float32 slice", []float32{3, 4}, Pair(3, 4)},
		{"array", [2]float64{7, 8}, Pair(7, 8)},
		{"int slice", []int{1, 2}, Pair(1, 2)},
		{"short any", []any{1.0}, Rejected},
		{"short float64", []float64{1}, Rejected},
		{"short float32", []float32{}, Rejected},
		{"short int", []int{1}, Rejected},
		{"non numeric pair", []any{"1", 2.0}, Rejected},
		{"nil element", []any{1.0, nil}, Rejected},
		{"string", "0.5", Rejected},
		{"nil", nil, Rejected},
		{"bool", true, Rejected},
		{"map", map[string]any{"x": 1.0}, Rejected},
		{"already coerced", Pair(1, 2), Pair(1, 2)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Coerce(tt.raw))
		})
	}
}

func TestTickValueAccessors(t *testing.T) {
	v := Scalar(1.5)
	f, ok := v.Scalar()
	assert.True(t, ok)
	assert.Equal(t, 1.5, f)
	_, _, ok = v.Pair()
	assert.False(t, ok)
	_, ok = v.Color()
	assert.False(t, ok)

	x, y, ok := Pair(1, 2).Pair()
	assert.True(t, ok)
	assert.Equal(t, []float64{1, 2}, []float64{x, y})

	c, ok := IntColor(-16776961).Color()
	assert.True(t, ok)
	assert.Equal(t, graphics.ColorBlue, c)

	assert.Equal(t, KindRejected, Rejected.Kind())
	_, ok = Rejected.Scalar()
	assert.False(t, ok)
}

func TestTickValueString(t *testing.T) {
	assert.Equal(t, "scalar(0.5)", Scalar(0.5).String())
	assert.Equal(t, "pair(1, 2)", Pair(1, 2).String())
	assert.Equal(t, "color(#FFFF0000)", IntColor(-65536).String())
	assert.Equal(t, "rejected", Rejected.String())
	assert.Equal(t, "pair", KindPair.String())
}

func TestConfig(t *testing.T) {
	tests := []struct {
		name        string
		cfg         Config
		perspective int
		origin      string
		hasOrigin   bool
	}{
		{"nil", nil, 0, "", false},
		{"empty", Config{}, 0, "", false},
		{"int", Config{"perspective": 100}, 100, "", false},
		{"json float", Config{"perspective": 250.9}, 250, "", false},
		{"numeric string", Config{"perspective": " 80 "}, 80, "", false},
		{"bad string", Config{"perspective": "far"}, 0, "", false},
		{"origin", Config{"transformOrigin": "50% 50%"}, 0, "50% 50%", true},
		{"blank origin", Config{"transformOrigin": "  "}, 0, "", false},
		{"nil origin", Config{"transformOrigin": nil}, 0, "", false},
		{"non string origin", Config{"transformOrigin": 5}, 0, "", false},
		{"unknown keys", Config{"duration": 300, "perspective": 1}, 1, "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.perspective, tt.cfg.Perspective())
			origin, ok := tt.cfg.TransformOrigin()
			assert.Equal(t, tt.hasOrigin, ok)
			assert.Equal(t, tt.origin, origin)
		})
	}
}

func TestRegistryCoversDeclaredProperties(t *testing.T) {
	assert.Len(t, updaters, len(declared))
	for _, p := range Properties() {
		assert.True(t, Known(string(p)), p)
	}
	assert.False(t, Known("Opacity"), "paths are case sensitive")
	assert.False(t, Known("transform.skew"))
}

func TestPropertiesSorted(t *testing.T) {
	props := Properties()
	assert.IsIncreasing(t, props)
	props[0] = "mutated"
	assert.NotEqual(t, Property("mutated"), Properties()[0])
}
