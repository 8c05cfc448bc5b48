package bindings

import (
	"math"
	"strconv"
	"strings"

	"gioui.org/f32"

	"github.com/go-drift/bindingx/pkg/graphics"
)

// OriginParser turns a transform-origin string into a pivot in the
// element's local space. It reports false when the pivot must be left
// untouched.
type OriginParser func(origin string, size graphics.Size) (f32.Point, bool)

type axis uint8

const (
	axisAny axis = iota
	axisX
	axisY
)

type originToken struct {
	axis axis
	// fraction of the element extent, or an absolute offset when absolute is set.
	value    float64
	absolute bool
}

// ParseTransformOrigin parses CSS-style transform origins such as
// "50% 50%", "left top", "center" or "10px 20".
//
// Each of the one or two tokens is a keyword (left, center, right, top,
// bottom), a percentage of the element size, or an absolute offset in
// native pixels with an optional px suffix. A single token leaves the
// other axis centered. Keywords may name the vertical axis first. A zero
// sized element or any malformed token yields no pivot.
func ParseTransformOrigin(origin string, size graphics.Size) (f32.Point, bool) {
	if size.IsEmpty() {
		return f32.Point{}, false
	}
	fields := strings.Fields(origin)
	if len(fields) == 0 || len(fields) > 2 {
		return f32.Point{}, false
	}

	tokens := make([]originToken, len(fields))
	for i, field := range fields {
		tok, ok := parseOriginToken(field)
		if !ok {
			return f32.Point{}, false
		}
		tokens[i] = tok
	}

	center := originToken{axis: axisAny, value: 0.5}
	var x, y originToken
	if len(tokens) == 1 {
		if tokens[0].axis == axisY {
			x, y = center, tokens[0]
		} else {
			x, y = tokens[0], center
		}
	} else {
		x, y = tokens[0], tokens[1]
		if x.axis == axisY || y.axis == axisX {
			x, y = y, x
		}
	}
	if x.axis == axisY || y.axis == axisX {
		// "top bottom", "left right" and friends.
		return f32.Point{}, false
	}

	px, py := float32(x.resolve(size.Width)), float32(y.resolve(size.Height))
	if !finite32(px) || !finite32(py) {
		return f32.Point{}, false
	}
	return f32.Point{X: px, Y: py}, true
}

func (t originToken) resolve(extent float64) float64 {
	if t.absolute {
		return t.value
	}
	return t.value * extent
}

func parseOriginToken(s string) (originToken, bool) {
	switch strings.ToLower(s) {
	case "left":
		return originToken{axis: axisX, value: 0}, true
	case "right":
		return originToken{axis: axisX, value: 1}, true
	case "top":
		return originToken{axis: axisY, value: 0}, true
	case "bottom":
		return originToken{axis: axisY, value: 1}, true
	case "center":
		return originToken{axis: axisAny, value: 0.5}, true
	}
	if pct, ok := strings.CutSuffix(s, "%"); ok {
		f, ok := parseOriginNumber(pct)
		if !ok {
			return originToken{}, false
		}
		return originToken{value: f / 100}, true
	}
	f, ok := parseOriginNumber(strings.TrimSuffix(s, "px"))
	if !ok {
		return originToken{}, false
	}
	return originToken{value: f, absolute: true}, true
}

// parseOriginNumber accepts finite numbers only. ParseFloat alone lets
// "NaN" and "Inf" through.
func parseOriginNumber(s string) (float64, bool) {
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func finite32(v float32) bool {
	f := float64(v)
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
