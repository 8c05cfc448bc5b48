// Package scenario loads keyframed binding scenarios and samples them.
//
// A scenario declares in-memory views and property tracks:
//
//	version: v1
//	duration: 500ms
//	views:
//	  - tag: 1
//	    width: 200
//	    height: 100
//	tracks:
//	  - tag: 1
//	    property: transform.translate
//	    curve: ease-in-out
//	    keyframes:
//	      - {at: 0, value: [0, 0]}
//	      - {at: 500ms, value: [100, 20]}
//
// Keyframe values are numbers (scalar tracks), two-element lists (pair
// tracks) or color strings (color tracks). Colors are CSS names or
// #RRGGBB / #AARRGGBB. Times are Go durations or plain milliseconds.
package scenario

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"time"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/bindingx/pkg/animation"
	"github.com/go-drift/bindingx/pkg/bindings"
	"github.com/go-drift/bindingx/pkg/graphics"
)

// SupportedVersion is the major scenario format version this package reads.
const SupportedVersion = "v1"

// Scenario is a parsed scenario file.
type Scenario struct {
	Version  string   `yaml:"version"`
	Duration Duration `yaml:"duration"`
	Views    []View   `yaml:"views"`
	Tracks   []*Track `yaml:"tracks"`
}

// View declares an in-memory view.
type View struct {
	Tag        int     `yaml:"tag"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Density    float64 `yaml:"density,omitempty"`
	Scrollable bool    `yaml:"scrollable,omitempty"`
	Text       bool    `yaml:"text,omitempty"`
}

// Size returns the view size.
func (v View) Size() graphics.Size {
	return graphics.Size{Width: v.Width, Height: v.Height}
}

// Kind is the value shape of a track.
type Kind int

const (
	KindScalar Kind = iota
	KindPair
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
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Track animates one property of one view.
type Track struct {
	Tag       int             `yaml:"tag"`
	Property  string          `yaml:"property"`
	CurveName string          `yaml:"curve,omitempty"`
	Config    bindings.Config `yaml:"config,omitempty"`
	Keyframes []Keyframe      `yaml:"keyframes"`

	kind  Kind
	curve animation.Curve
}

// Keyframe is a value at a point in time.
type Keyframe struct {
	At    Duration `yaml:"at"`
	Value any      `yaml:"value"`

	scalar float64
	pair   animation.Pair
	color  graphics.Color
}

// Duration decodes Go duration strings and plain millisecond numbers.
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("line %d: duration must be a scalar", node.Line)
	}
	if ms, err := strconv.ParseFloat(node.Value, 64); err == nil {
		*d = Duration(time.Duration(ms * float64(time.Millisecond)))
		return nil
	}
	v, err := time.ParseDuration(node.Value)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*d = Duration(v)
	return nil
}

// Std returns d as a time.Duration.
func (d Duration) Std() time.Duration {
	return time.Duration(d)
}

// Load reads and parses a scenario file.
func Load(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a scenario.
func Parse(data []byte) (*Scenario, error) {
	var s Scenario
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("failed to parse scenario: %w", err)
	}
	if err := s.validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func (s *Scenario) validate() error {
	if s.Version == "" {
		s.Version = SupportedVersion
	}
	if !semver.IsValid(s.Version) {
		return fmt.Errorf("invalid scenario version %q", s.Version)
	}
	if semver.Major(s.Version) != SupportedVersion {
		return fmt.Errorf("unsupported scenario version %s (want %s.x)", s.Version, SupportedVersion)
	}
	if s.Duration < 0 {
		return fmt.Errorf("duration must not be negative")
	}

	seen := make(map[int]bool, len(s.Views))
	for _, v := range s.Views {
		if seen[v.Tag] {
			return fmt.Errorf("duplicate view tag %d", v.Tag)
		}
		seen[v.Tag] = true
	}

	for i, t := range s.Tracks {
		if err := t.prepare(); err != nil {
			return fmt.Errorf("track %d (%s): %w", i, t.Property, err)
		}
		if last := t.Keyframes[len(t.Keyframes)-1].At; last > s.Duration {
			s.Duration = last
		}
	}
	return nil
}

// Kind returns the track's value shape.
func (t *Track) Kind() Kind {
	return t.kind
}

func (t *Track) prepare() error {
	if t.Property == "" {
		return fmt.Errorf("property is required")
	}
	if len(t.Keyframes) == 0 {
		return fmt.Errorf("at least one keyframe is required")
	}
	curve, err := animation.ParseCurve(t.CurveName)
	if err != nil {
		return err
	}
	t.curve = curve

	if !slices.IsSortedFunc(t.Keyframes, func(a, b Keyframe) int { return int(a.At - b.At) }) {
		return fmt.Errorf("keyframes must be in time order")
	}

	t.kind, err = kindOf(t.Keyframes[0].Value)
	if err != nil {
		return fmt.Errorf("keyframe 0: %w", err)
	}
	for i := range t.Keyframes {
		if err := t.Keyframes[i].decode(t.kind); err != nil {
			return fmt.Errorf("keyframe %d: %w", i, err)
		}
	}
	return nil
}

func kindOf(v any) (Kind, error) {
	switch v.(type) {
	case int, float64:
		return KindScalar, nil
	case []any:
		return KindPair, nil
	case string:
		return KindColor, nil
	default:
		return 0, fmt.Errorf("unsupported value %v (%T)", v, v)
	}
}

func (k *Keyframe) decode(kind Kind) error {
	switch kind {
	case KindScalar:
		f, ok := number(k.Value)
		if !ok {
			return fmt.Errorf("want a number, got %v", k.Value)
		}
		k.scalar = f
	case KindPair:
		list, ok := k.Value.([]any)
		if !ok || len(list) != 2 {
			return fmt.Errorf("want a two-element list, got %v", k.Value)
		}
		x, okX := number(list[0])
		y, okY := number(list[1])
		if !okX || !okY {
			return fmt.Errorf("want numbers, got %v", k.Value)
		}
		k.pair = animation.Pair{x, y}
	case KindColor:
		s, ok := k.Value.(string)
		if !ok {
			return fmt.Errorf("want a color string, got %v", k.Value)
		}
		c, err := ParseColor(s)
		if err != nil {
			return err
		}
		k.color = c
	}
	return nil
}

func number(v any) (float64, bool) {
	switch n := v.(type) {
	case int:
		return float64(n), true
	case float64:
		return n, true
	default:
		return 0, false
	}
}

// Sample returns the track's value at elapsed, in the form the binding
// dispatcher expects: float64 for scalars, []any{x, y} for pairs and a
// packed int32 for colors. Before the first keyframe the first value holds;
// after the last keyframe the last value holds.
func (t *Track) Sample(elapsed time.Duration) any {
	frames := t.Keyframes
	i, found := slices.BinarySearchFunc(frames, Duration(elapsed), func(k Keyframe, at Duration) int {
		return int(k.At - at)
	})
	switch {
	case found:
		// Several keyframes may share a time; the last one wins.
		for i+1 < len(frames) && frames[i+1].At == frames[i].At {
			i++
		}
		return t.value(frames[i], frames[i], 0)
	case i == 0:
		return t.value(frames[0], frames[0], 0)
	case i == len(frames):
		last := frames[len(frames)-1]
		return t.value(last, last, 0)
	}

	a, b := frames[i-1], frames[i]
	progress := float64(elapsed-a.At.Std()) / float64(b.At-a.At)
	return t.value(a, b, t.curve(progress))
}

func (t *Track) value(a, b Keyframe, p float64) any {
	switch t.kind {
	case KindPair:
		v := animation.LerpPair(a.pair, b.pair, p)
		return []any{v[0], v[1]}
	case KindColor:
		return animation.LerpColor(a.color, b.color, p).Int32()
	default:
		return animation.LerpFloat64(a.scalar, b.scalar, p)
	}
}
