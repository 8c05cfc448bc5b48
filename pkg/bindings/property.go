package bindings

import "sort"

// Property identifies an animatable element attribute by its dotted path.
type Property string

// Animatable properties.
const (
	Opacity Property = "opacity"

	Translate  Property = "transform.translate"
	TranslateX Property = "transform.translateX"
	TranslateY Property = "transform.translateY"

	Scale  Property = "transform.scale"
	ScaleX Property = "transform.scaleX"
	ScaleY Property = "transform.scaleY"

	Rotate  Property = "transform.rotate"
	RotateZ Property = "transform.rotateZ"
	RotateX Property = "transform.rotateX"
	RotateY Property = "transform.rotateY"

	BackgroundColor Property = "background-color"
	TextColor       Property = "color"

	ContentOffset  Property = "scroll.contentOffset"
	ContentOffsetX Property = "scroll.contentOffsetX"
	ContentOffsetY Property = "scroll.contentOffsetY"

	// Width and Height resize the element's layout box directly, behind the
	// host layout system's back. Prefer transforms where possible.
	Width  Property = "width"
	Height Property = "height"
)

// declared lists every Property constant. init checks it against the
// updater table so a constant can never be left without a strategy.
var declared = [...]Property{
	Opacity,
	Translate, TranslateX, TranslateY,
	Scale, ScaleX, ScaleY,
	Rotate, RotateZ, RotateX, RotateY,
	BackgroundColor, TextColor,
	ContentOffset, ContentOffsetX, ContentOffsetY,
	Width, Height,
}

// Properties returns every known property path in sorted order.
func Properties() []Property {
	out := make([]Property, len(declared))
	copy(out, declared[:])
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Known reports whether path names a registered property.
func Known(path string) bool {
	_, ok := updaters[Property(path)]
	return ok
}
