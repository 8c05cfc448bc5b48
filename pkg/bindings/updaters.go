package bindings

import (
	"fmt"
	"math"

	"gioui.org/f32"

	"github.com/go-drift/bindingx/pkg/units"
)

// Update carries everything an Updater needs for one property write. It
// lives for a single Apply call.
type Update struct {
	Tag        int
	Element    Element
	Value      TickValue
	Translator units.Translator
	Config     Config
	UI         UIManager

	normalize   units.PerspectiveNormalizer
	parseOrigin OriginParser
}

// Native converts a logical size to native units with u.Translator.
func (u Update) Native(size float64) float64 {
	return units.Translate(u.Translator, size)
}

// NativePixels converts a logical size to whole native pixels, truncating
// toward zero and saturating at the int32 range. It reports false for NaN.
func (u Update) NativePixels(size float64) (int, bool) {
	v := u.Native(size)
	switch {
	case math.IsNaN(v):
		return 0, false
	case v >= math.MaxInt32:
		return math.MaxInt32, true
	case v <= math.MinInt32:
		return math.MinInt32, true
	}
	return int(v), true
}

// Perspective returns the normalized camera distance requested by the
// config, or 0 when the camera distance must be left alone.
func (u Update) Perspective() float32 {
	raw := u.Config.Perspective()
	if raw == 0 {
		return 0
	}
	normalize := u.normalize
	if normalize == nil {
		normalize = units.NormalizePerspective
	}
	return normalize(u.Element.DisplayMetrics(), raw)
}

// Pivot returns the pivot requested by the config. It reports false when
// the element's pivot must be left alone.
func (u Update) Pivot() (f32.Point, bool) {
	origin, ok := u.Config.TransformOrigin()
	if !ok {
		return f32.Point{}, false
	}
	parse := u.parseOrigin
	if parse == nil {
		parse = ParseTransformOrigin
	}
	return parse(origin, u.Element.Size())
}

// applyCamera writes camera distance and pivot ahead of a rotation or
// scale. Native views read both when the transform is committed.
func (u Update) applyCamera(perspective bool) {
	if perspective {
		if d := u.Perspective(); d != 0 {
			u.Element.SetCameraDistance(d)
		}
	}
	if p, ok := u.Pivot(); ok {
		u.Element.SetPivot(p)
	}
}

// Outcome describes what an Updater did with a value.
type Outcome uint8

const (
	// OutcomeApplied means the element was mutated.
	OutcomeApplied Outcome = iota
	// OutcomeRejected means the value had the wrong shape for the property.
	OutcomeRejected
	// OutcomeUnsupported means the element lacks the capability the property needs.
	OutcomeUnsupported
	// OutcomeUnknownProperty means no updater is registered for the path.
	OutcomeUnknownProperty
	// OutcomePanicked means the element panicked while being updated.
	OutcomePanicked
)

func (o Outcome) String() string {
	switch o {
	case OutcomeApplied:
		return "applied"
	case OutcomeRejected:
		return "rejected"
	case OutcomeUnsupported:
		return "unsupported"
	case OutcomeUnknownProperty:
		return "unknown_property"
	case OutcomePanicked:
		return "panicked"
	default:
		return fmt.Sprintf("Outcome(%d)", uint8(o))
	}
}

// Updater writes one property onto an element. Implementations are
// stateless.
type Updater interface {
	Update(u Update) Outcome
}

// UpdaterFunc adapts a function to an Updater.
type UpdaterFunc func(u Update) Outcome

// Update calls f(u).
func (f UpdaterFunc) Update(u Update) Outcome {
	return f(u)
}

// nopUpdater backs unknown property paths.
var nopUpdater Updater = UpdaterFunc(func(Update) Outcome { return OutcomeUnknownProperty })

// updaters is read-only after package initialization.
var updaters = map[Property]Updater{
	Opacity: UpdaterFunc(updateOpacity),

	Translate:  UpdaterFunc(updateTranslate),
	TranslateX: UpdaterFunc(updateTranslateX),
	TranslateY: UpdaterFunc(updateTranslateY),

	Scale:  UpdaterFunc(updateScale),
	ScaleX: UpdaterFunc(updateScaleX),
	ScaleY: UpdaterFunc(updateScaleY),

	Rotate:  UpdaterFunc(updateRotate),
	RotateZ: UpdaterFunc(updateRotate),
	RotateX: UpdaterFunc(updateRotateX),
	RotateY: UpdaterFunc(updateRotateY),

	BackgroundColor: UpdaterFunc(updateBackgroundColor),
	TextColor:       UpdaterFunc(updateTextColor),

	ContentOffset:  UpdaterFunc(updateContentOffset),
	ContentOffsetX: UpdaterFunc(updateContentOffsetX),
	ContentOffsetY: UpdaterFunc(updateContentOffsetY),

	Width:  UpdaterFunc(updateWidth),
	Height: UpdaterFunc(updateHeight),
}

func init() {
	if len(updaters) != len(declared) {
		panic(fmt.Sprintf("bindings: %d updaters for %d properties", len(updaters), len(declared)))
	}
	for _, p := range declared {
		if updaters[p] == nil {
			panic("bindings: no updater for " + string(p))
		}
	}
}

func updateOpacity(u Update) Outcome {
	v, ok := u.Value.Scalar()
	if !ok {
		return OutcomeRejected
	}
	u.Element.SetAlpha(float32(v))
	return OutcomeApplied
}

func updateTranslate(u Update) Outcome {
	x, y, ok := u.Value.Pair()
	if !ok {
		return OutcomeRejected
	}
	u.Element.SetTranslationX(float32(u.Native(x)))
	u.Element.SetTranslationY(float32(u.Native(y)))
	return OutcomeApplied
}

func updateTranslateX(u Update) Outcome {
	v, ok := u.Value.Scalar()
	if !ok {
		return OutcomeRejected
	}
	u.Element.SetTranslationX(float32(u.Native(v)))
	return OutcomeApplied
}

func updateTranslateY(u Update) Outcome {
	v, ok := u.Value.Scalar()
	if !ok {
		return OutcomeRejected
	}
	u.Element.SetTranslationY(float32(u.Native(v)))
	return OutcomeApplied
}

// updateScale moves camera and pivot only once the value is known to fit.
func updateScale(u Update) Outcome {
	var x, y float64
	switch u.Value.Kind() {
	case KindScalar:
		x, _ = u.Value.Scalar()
		y = x
	case KindPair:
		x, y, _ = u.Value.Pair()
	default:
		return OutcomeRejected
	}
	u.applyCamera(true)
	u.Element.SetScaleX(float32(x))
	u.Element.SetScaleY(float32(y))
	return OutcomeApplied
}

func updateScaleX(u Update) Outcome {
	v, ok := u.Value.Scalar()
	if !ok {
		return OutcomeRejected
	}
	u.applyCamera(false)
	u.Element.SetScaleX(float32(v))
	return OutcomeApplied
}

func updateScaleY(u Update) Outcome {
	v, ok := u.Value.Scalar()
	if !ok {
		return OutcomeRejected
	}
	u.applyCamera(false)
	u.Element.SetScaleY(float32(v))
	return OutcomeApplied
}

func updateRotate(u Update) Outcome {
	v, ok := u.Value.Scalar()
	if !ok {
		return OutcomeRejected
	}
	u.applyCamera(true)
	u.Element.SetRotation(float32(v))
	return OutcomeApplied
}

func updateRotateX(u Update) Outcome {
	v, ok := u.Value.Scalar()
	if !ok {
		return OutcomeRejected
	}
	u.applyCamera(true)
	u.Element.SetRotationX(float32(v))
	return OutcomeApplied
}

func updateRotateY(u Update) Outcome {
	v, ok := u.Value.Scalar()
	if !ok {
		return OutcomeRejected
	}
	u.applyCamera(true)
	u.Element.SetRotationY(float32(v))
	return OutcomeApplied
}

func updateBackgroundColor(u Update) Outcome {
	c, ok := u.Value.Color()
	if !ok {
		return OutcomeRejected
	}
	u.Element.SetBackgroundColor(c)
	return OutcomeApplied
}

func updateTextColor(u Update) Outcome {
	c, ok := u.Value.Color()
	if !ok {
		return OutcomeRejected
	}
	ts, ok := textStyler(u.Element)
	if !ok {
		return OutcomeUnsupported
	}
	ts.SetTextColor(c)
	return OutcomeApplied
}

func updateContentOffset(u Update) Outcome {
	s, ok := scroller(u.Element)
	if !ok {
		return OutcomeUnsupported
	}
	var x, y int
	var okX, okY bool
	switch u.Value.Kind() {
	case KindScalar:
		v, _ := u.Value.Scalar()
		x, okX = u.NativePixels(v)
		y, okY = x, okX
	case KindPair:
		vx, vy, _ := u.Value.Pair()
		x, okX = u.NativePixels(vx)
		y, okY = u.NativePixels(vy)
	}
	if !okX || !okY {
		return OutcomeRejected
	}
	s.SetScrollX(x)
	s.SetScrollY(y)
	return OutcomeApplied
}

func updateContentOffsetX(u Update) Outcome {
	s, ok := scroller(u.Element)
	if !ok {
		return OutcomeUnsupported
	}
	v, ok := u.Value.Scalar()
	if !ok {
		return OutcomeRejected
	}
	x, ok := u.NativePixels(v)
	if !ok {
		return OutcomeRejected
	}
	s.SetScrollX(x)
	return OutcomeApplied
}

func updateContentOffsetY(u Update) Outcome {
	s, ok := scroller(u.Element)
	if !ok {
		return OutcomeUnsupported
	}
	v, ok := u.Value.Scalar()
	if !ok {
		return OutcomeRejected
	}
	y, ok := u.NativePixels(v)
	if !ok {
		return OutcomeRejected
	}
	s.SetScrollY(y)
	return OutcomeApplied
}

func updateWidth(u Update) Outcome {
	v, ok := u.Value.Scalar()
	if !ok {
		return OutcomeRejected
	}
	n, ok := u.NativePixels(v)
	if !ok {
		return OutcomeRejected
	}
	ls, ok := u.Element.(LayoutSizer)
	if !ok {
		return OutcomeUnsupported
	}
	ls.SetLayoutWidth(n)
	ls.RequestLayout()
	return OutcomeApplied
}

func updateHeight(u Update) Outcome {
	v, ok := u.Value.Scalar()
	if !ok {
		return OutcomeRejected
	}
	n, ok := u.NativePixels(v)
	if !ok {
		return OutcomeRejected
	}
	ls, ok := u.Element.(LayoutSizer)
	if !ok {
		return OutcomeUnsupported
	}
	ls.SetLayoutHeight(n)
	ls.RequestLayout()
	return OutcomeApplied
}
