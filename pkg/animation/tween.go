package animation

import (
	"math"

	"github.com/go-drift/bindingx/pkg/graphics"
)

// Tween interpolates between Begin and End.
type Tween[T any] struct {
	Begin T
	End   T
	// Lerp receives the begin value, end value and progress t.
	Lerp func(a, b T, t float64) T
}

// Evaluate returns the value at progress t. Without a Lerp it returns End.
func (tw *Tween[T]) Evaluate(t float64) T {
	if tw.Lerp == nil {
		return tw.End
	}
	return tw.Lerp(tw.Begin, tw.End, t)
}

// Transform evaluates the tween at the controller's current value.
func (tw *Tween[T]) Transform(c *Controller) T {
	return tw.Evaluate(c.Value)
}

// Pair is a two-component tick value such as a translation or scroll offset.
type Pair [2]float64

// LerpFloat64 linearly interpolates between two float64 values.
func LerpFloat64(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpPair interpolates each component independently.
func LerpPair(a, b Pair, t float64) Pair {
	return Pair{LerpFloat64(a[0], b[0], t), LerpFloat64(a[1], b[1], t)}
}

// LerpColor interpolates each ARGB channel, rounding to the nearest value.
func LerpColor(a, b graphics.Color, t float64) graphics.Color {
	ar, ag, ab, aa := a.RGBA8()
	br, bg, bb, ba := b.RGBA8()
	lerp8 := func(x, y uint8) uint8 {
		v := math.Round(LerpFloat64(float64(x), float64(y), t))
		return uint8(max(0, min(v, 255)))
	}
	return graphics.RGBA8(lerp8(ar, br), lerp8(ag, bg), lerp8(ab, bb), lerp8(aa, ba))
}

// TweenFloat64 creates a tween for float64 values.
func TweenFloat64(begin, end float64) *Tween[float64] {
	return &Tween[float64]{Begin: begin, End: end, Lerp: LerpFloat64}
}

// TweenPair creates a tween for Pair values.
func TweenPair(begin, end Pair) *Tween[Pair] {
	return &Tween[Pair]{Begin: begin, End: end, Lerp: LerpPair}
}

// TweenColor creates a tween for Color values.
func TweenColor(begin, end graphics.Color) *Tween[graphics.Color] {
	return &Tween[graphics.Color]{Begin: begin, End: end, Lerp: LerpColor}
}
