// Package units converts logical (web) sizes into native pixel sizes.
//
// The conversion itself belongs to the host: a [Translator] is handed to
// every property update and the updaters only forward sizes through it.
package units

import "math"

// Translator converts a logical size into native units.
type Translator interface {
	WebToNative(size float64) float64
}

// TranslatorFunc adapts a plain function to a Translator.
type TranslatorFunc func(size float64) float64

// WebToNative calls f(size).
func (f TranslatorFunc) WebToNative(size float64) float64 {
	return f(size)
}

// Identity leaves sizes unchanged.
var Identity Translator = TranslatorFunc(func(size float64) float64 { return size })

// Density returns a Translator that scales logical pixels by the device
// scale factor. Non-positive scales are treated as 1.
func Density(scale float64) Translator {
	if scale <= 0 {
		scale = 1
	}
	return TranslatorFunc(func(size float64) float64 { return size * scale })
}

// Translate forwards size through tr. A nil tr behaves as Identity.
func Translate(tr Translator, size float64) float64 {
	if tr == nil {
		return size
	}
	return tr.WebToNative(size)
}

// DisplayMetrics describes the display an element is attached to.
type DisplayMetrics struct {
	// Density is the number of device pixels per logical pixel.
	Density float32
}

// PerspectiveNormalizer converts a raw perspective distance into the
// camera distance native views expect.
type PerspectiveNormalizer func(metrics DisplayMetrics, raw int) float32

// cameraDistanceMultiplier matches the normalization React Native applies
// to CSS perspective before handing it to View.setCameraDistance.
var cameraDistanceMultiplier = float32(math.Sqrt(5))

// NormalizePerspective is the default PerspectiveNormalizer. It scales
// raw by density squared and the camera distance multiplier. Zero stays zero.
func NormalizePerspective(metrics DisplayMetrics, raw int) float32 {
	if raw == 0 {
		return 0
	}
	d := metrics.Density
	if d <= 0 {
		d = 1
	}
	return float32(raw) * d * d * cameraDistanceMultiplier
}
