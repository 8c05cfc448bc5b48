package bindings

import (
	"fmt"
	"math"

	"github.com/go-drift/bindingx/pkg/graphics"
)

// Kind tags the shape held by a TickValue.
type Kind uint8

const (
	// KindRejected marks a value that could not be decoded.
	KindRejected Kind = iota
	// KindScalar holds a single float64.
	KindScalar
	// KindPair holds an ordered (x, y) pair.
	KindPair
	// KindColor holds a packed ARGB integer color.
	KindColor
)

func (k Kind) String() string {
	switch k {
	case KindScalar:
		return "scalar"
	case KindPair:
		return "pair"
	case KindColor:
		return "color"
	default:
		return "rejected"
	}
}

// TickValue is one evaluated binding output, decoded into one of the shapes
// the property updaters understand. The zero value is rejected.
type TickValue struct {
	kind  Kind
	x, y  float64
	color int32
}

// Rejected is the value produced for undecodable input.
var Rejected TickValue

// Scalar returns a scalar TickValue.
func Scalar(v float64) TickValue {
	return TickValue{kind: KindScalar, x: v}
}

// Pair returns an ordered pair TickValue.
func Pair(x, y float64) TickValue {
	return TickValue{kind: KindPair, x: x, y: y}
}

// IntColor returns a packed ARGB color TickValue.
func IntColor(c int32) TickValue {
	return TickValue{kind: KindColor, color: c}
}

// Kind returns the shape of v.
func (v TickValue) Kind() Kind {
	return v.kind
}

// Scalar returns the scalar payload.
func (v TickValue) Scalar() (float64, bool) {
	return v.x, v.kind == KindScalar
}

// Pair returns the pair payload.
func (v TickValue) Pair() (x, y float64, ok bool) {
	return v.x, v.y, v.kind == KindPair
}

// Color returns the color payload.
func (v TickValue) Color() (graphics.Color, bool) {
	return graphics.ColorFromInt32(v.color), v.kind == KindColor
}

func (v TickValue) String() string {
	switch v.kind {
	case KindScalar:
		return fmt.Sprintf("scalar(%g)", v.x)
	case KindPair:
		return fmt.Sprintf("pair(%g, %g)", v.x, v.y)
	case KindColor:
		return "color(" + graphics.ColorFromInt32(v.color).String() + ")"
	default:
		return "rejected"
	}
}

// Coerce decodes a raw engine value.
//
// Floating point numbers become scalars. Integers become colors when they
// fit in 32 bits, signed or unsigned. Sequences whose first two elements
// are numeric become pairs; further elements are ignored. A TickValue is
// returned unchanged. Everything else is Rejected.
func Coerce(raw any) TickValue {
	switch v := raw.(type) {
	case TickValue:
		return v
	case float64:
		return Scalar(v)
	case float32:
		return Scalar(float64(v))
	case graphics.Color:
		return IntColor(int32(v))
	case []any:
		if len(v) < 2 {
			return Rejected
		}
		x, okX := toFloat64(v[0])
		y, okY := toFloat64(v[1])
		if !okX || !okY {
			return Rejected
		}
		return Pair(x, y)
	case []float64:
		if len(v) < 2 {
			return Rejected
		}
		return Pair(v[0], v[1])
	case []float32:
		if len(v) < 2 {
			return Rejected
		}
		return Pair(float64(v[0]), float64(v[1]))
	case [2]float64:
		return Pair(v[0], v[1])
	case []int:
		if len(v) < 2 {
			return Rejected
		}
		return Pair(float64(v[0]), float64(v[1]))
	}
	if n, ok := toInt64(raw); ok {
		if c, ok := packedColor(n); ok {
			return IntColor(c)
		}
	}
	return Rejected
}

// packedColor keeps the low 32 bits of n when n fits in either an int32 or
// a uint32.
func packedColor(n int64) (int32, bool) {
	if n < math.MinInt32 || n > math.MaxUint32 {
		return 0, false
	}
	return int32(uint32(n)), true
}
