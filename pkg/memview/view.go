// Package memview provides in-memory elements and UI managers.
//
// A View stores every property the dispatcher can write and logs each
// write, which makes it suitable both for tests and for offline replay of
// binding scenarios.
package memview

import (
	"fmt"
	"math"
	"sync"

	"gioui.org/f32"

	"github.com/go-drift/bindingx/pkg/graphics"
	"github.com/go-drift/bindingx/pkg/units"
)

// State is a snapshot of a View's properties.
type State struct {
	Alpha          float32
	TranslationX   float32
	TranslationY   float32
	ScaleX         float32
	ScaleY         float32
	Rotation       float32
	RotationX      float32
	RotationY      float32
	Pivot          f32.Point
	PivotSet       bool
	CameraDistance float32
	Background     graphics.Color
	TextColor      graphics.Color
	ScrollX        int
	ScrollY        int
	LayoutWidth    int
	LayoutHeight   int
	LayoutRequests int
}

// Write is one recorded setter call.
type Write struct {
	Op    string
	Value any
}

func (w Write) String() string {
	return fmt.Sprintf("%s(%v)", w.Op, w.Value)
}

// Options configure a View.
type Options struct {
	Size       graphics.Size
	Density    float32
	Scrollable bool
	Text       bool
}

// View is an in-memory element. It is safe for concurrent use.
type View struct {
	mu     sync.Mutex
	opts   Options
	state  State
	writes []Write
}

// New returns a View with identity transform and full opacity.
func New(opts Options) *View {
	return &View{
		opts: opts,
		state: State{
			Alpha:        1,
			ScaleX:       1,
			ScaleY:       1,
			LayoutWidth:  int(opts.Size.Width),
			LayoutHeight: int(opts.Size.Height),
		},
	}
}

// State returns a snapshot of the current properties.
func (v *View) State() State {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state
}

// Writes returns the setter calls made so far.
func (v *View) Writes() []Write {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]Write, len(v.writes))
	copy(out, v.writes)
	return out
}

// ResetWrites clears the write log, keeping the state.
func (v *View) ResetWrites() {
	v.mu.Lock()
	v.writes = nil
	v.mu.Unlock()
}

func (v *View) set(op string, value any, apply func(s *State)) {
	v.mu.Lock()
	apply(&v.state)
	v.writes = append(v.writes, Write{Op: op, Value: value})
	v.mu.Unlock()
}

// Size returns the configured size.
func (v *View) Size() graphics.Size {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.opts.Size
}

// DisplayMetrics returns the configured density.
func (v *View) DisplayMetrics() units.DisplayMetrics {
	v.mu.Lock()
	defer v.mu.Unlock()
	return units.DisplayMetrics{Density: v.opts.Density}
}

func (v *View) SetAlpha(a float32) {
	v.set("SetAlpha", a, func(s *State) { s.Alpha = a })
}

func (v *View) SetTranslationX(x float32) {
	v.set("SetTranslationX", x, func(s *State) { s.TranslationX = x })
}

func (v *View) SetTranslationY(y float32) {
	v.set("SetTranslationY", y, func(s *State) { s.TranslationY = y })
}

func (v *View) SetScaleX(x float32) {
	v.set("SetScaleX", x, func(s *State) { s.ScaleX = x })
}

func (v *View) SetScaleY(y float32) {
	v.set("SetScaleY", y, func(s *State) { s.ScaleY = y })
}

func (v *View) SetRotation(deg float32) {
	v.set("SetRotation", deg, func(s *State) { s.Rotation = deg })
}

func (v *View) SetRotationX(deg float32) {
	v.set("SetRotationX", deg, func(s *State) { s.RotationX = deg })
}

func (v *View) SetRotationY(deg float32) {
	v.set("SetRotationY", deg, func(s *State) { s.RotationY = deg })
}

func (v *View) SetPivot(p f32.Point) {
	v.set("SetPivot", p, func(s *State) {
		s.Pivot = p
		s.PivotSet = true
	})
}

func (v *View) SetCameraDistance(d float32) {
	v.set("SetCameraDistance", d, func(s *State) { s.CameraDistance = d })
}

func (v *View) SetBackgroundColor(c graphics.Color) {
	v.set("SetBackgroundColor", c, func(s *State) { s.Background = c })
}

// SupportsTextColor reports Options.Text.
func (v *View) SupportsTextColor() bool {
	return v.opts.Text
}

func (v *View) SetTextColor(c graphics.Color) {
	v.set("SetTextColor", c, func(s *State) { s.TextColor = c })
}

// SupportsScrolling reports Options.Scrollable.
func (v *View) SupportsScrolling() bool {
	return v.opts.Scrollable
}

func (v *View) SetScrollX(x int) {
	v.set("SetScrollX", x, func(s *State) { s.ScrollX = x })
}

func (v *View) SetScrollY(y int) {
	v.set("SetScrollY", y, func(s *State) { s.ScrollY = y })
}

func (v *View) SetLayoutWidth(w int) {
	v.set("SetLayoutWidth", w, func(s *State) { s.LayoutWidth = w })
}

func (v *View) SetLayoutHeight(h int) {
	v.set("SetLayoutHeight", h, func(s *State) { s.LayoutHeight = h })
}

func (v *View) RequestLayout() {
	v.set("RequestLayout", nil, func(s *State) { s.LayoutRequests++ })
}

// Transform returns the view's 2-D transform: scale and in-plane rotation
// about the pivot, then translation. Without an explicit pivot the view
// center is used, as native views do.
func (v *View) Transform() f32.Affine2D {
	v.mu.Lock()
	s, size := v.state, v.opts.Size
	v.mu.Unlock()

	pivot := s.Pivot
	if !s.PivotSet {
		pivot = f32.Pt(float32(size.Width/2), float32(size.Height/2))
	}
	rad := float32(float64(s.Rotation) * math.Pi / 180)
	return f32.Affine2D{}.
		Scale(pivot, f32.Pt(s.ScaleX, s.ScaleY)).
		Rotate(pivot, rad).
		Offset(f32.Pt(s.TranslationX, s.TranslationY))
}
