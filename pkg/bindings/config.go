package bindings

import "strings"

// Config option keys.
const (
	OptionPerspective     = "perspective"
	OptionTransformOrigin = "transformOrigin"
)

// Config carries the per-binding options sent with each update. Unknown
// keys are ignored.
type Config map[string]any

// Perspective returns the raw perspective distance, or 0 when absent or
// not a number. Fractions are truncated.
func (c Config) Perspective() int {
	n, ok := toInt(c[OptionPerspective])
	if !ok {
		return 0
	}
	return n
}

// TransformOrigin returns the transform origin string. It reports false
// when the option is absent, not a string or blank.
func (c Config) TransformOrigin() (string, bool) {
	s, ok := c[OptionTransformOrigin].(string)
	if !ok || strings.TrimSpace(s) == "" {
		return "", false
	}
	return s, true
}
