package bindings

import (
	"gioui.org/f32"

	"github.com/go-drift/bindingx/pkg/graphics"
	"github.com/go-drift/bindingx/pkg/units"
)

// Element is the mutable visual element a binding drives. The dispatcher
// never owns it; it only reads geometry and writes state through these
// methods. Sizes and offsets are in native pixels, angles in degrees.
type Element interface {
	// Size returns the element's current laid-out size.
	Size() graphics.Size
	// DisplayMetrics describes the display the element is shown on.
	DisplayMetrics() units.DisplayMetrics

	SetAlpha(alpha float32)
	SetTranslationX(x float32)
	SetTranslationY(y float32)
	SetScaleX(x float32)
	SetScaleY(y float32)
	SetRotation(degrees float32)
	SetRotationX(degrees float32)
	SetRotationY(degrees float32)
	SetPivot(p f32.Point)
	SetCameraDistance(distance float32)
	SetBackgroundColor(c graphics.Color)
}

// TextStyler is implemented by elements that may render text.
type TextStyler interface {
	// SupportsTextColor reports whether SetTextColor has any effect.
	SupportsTextColor() bool
	SetTextColor(c graphics.Color)
}

// Scroller is implemented by elements that may scroll their content.
type Scroller interface {
	// SupportsScrolling reports whether the element currently scrolls.
	SupportsScrolling() bool
	SetScrollX(x int)
	SetScrollY(y int)
}

// LayoutSizer is implemented by elements whose layout box can be resized
// directly.
type LayoutSizer interface {
	SetLayoutWidth(width int)
	SetLayoutHeight(height int)
	// RequestLayout asks the host to re-apply layout after a size change.
	RequestLayout()
}

// UIManager is the host UI manager notified after every update.
type UIManager interface {
	// NotifyNoDeltaUpdate tells the host that the element's properties may
	// have changed, without requesting a diff or layout pass.
	NotifyNoDeltaUpdate(tag int)
}

// UIManagerFunc adapts a function to a UIManager.
type UIManagerFunc func(tag int)

// NotifyNoDeltaUpdate calls f(tag).
func (f UIManagerFunc) NotifyNoDeltaUpdate(tag int) {
	f(tag)
}

func textStyler(el Element) (TextStyler, bool) {
	ts, ok := el.(TextStyler)
	if !ok || !ts.SupportsTextColor() {
		return nil, false
	}
	return ts, true
}

func scroller(el Element) (Scroller, bool) {
	s, ok := el.(Scroller)
	if !ok || !s.SupportsScrolling() {
		return nil, false
	}
	return s, true
}
