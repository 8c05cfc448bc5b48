package platform

import (
	"fmt"
	"sync"

	"gioui.org/f32"

	"github.com/go-drift/bindingx/pkg/errors"
	"github.com/go-drift/bindingx/pkg/graphics"
	"github.com/go-drift/bindingx/pkg/units"
)

// ViewsChannelName is the method channel used to push view mutations to native.
const ViewsChannelName = "drift/bindingx/views"

// Mutation is one queued property write on a native view.
type Mutation struct {
	Op    string `json:"op"`
	Value any    `json:"value"`
}

// ViewOptions describes the capabilities of a native view.
type ViewOptions struct {
	Size       graphics.Size
	Density    float32
	Scrollable bool
	Text       bool
}

// NativeView is a Go-side handle to a native view. Property writes are
// queued and sent to native in one "commit" call when the view's tag is
// committed through its NativeViewRegistry.
type NativeView struct {
	tag  int
	mu   sync.Mutex
	opts ViewOptions
	// pending is drained by NativeViewRegistry.NotifyNoDeltaUpdate.
	pending []Mutation
}

// Tag returns the view's tag.
func (v *NativeView) Tag() int {
	return v.tag
}

func (v *NativeView) queue(op string, value any) {
	v.mu.Lock()
	v.pending = append(v.pending, Mutation{Op: op, Value: value})
	v.mu.Unlock()
}

func (v *NativeView) drain() []Mutation {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := v.pending
	v.pending = nil
	return out
}

// Pending returns a copy of the queued mutations.
func (v *NativeView) Pending() []Mutation {
	v.mu.Lock()
	defer v.mu.Unlock()
	out := make([]Mutation, len(v.pending))
	copy(out, v.pending)
	return out
}

// SetGeometry records the view's laid-out size and display density.
func (v *NativeView) SetGeometry(size graphics.Size, density float32) {
	v.mu.Lock()
	v.opts.Size = size
	v.opts.Density = density
	v.mu.Unlock()
}

// Size returns the last known size in native pixels.
func (v *NativeView) Size() graphics.Size {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.opts.Size
}

// DisplayMetrics returns the last known display density.
func (v *NativeView) DisplayMetrics() units.DisplayMetrics {
	v.mu.Lock()
	defer v.mu.Unlock()
	return units.DisplayMetrics{Density: v.opts.Density}
}

func (v *NativeView) SetAlpha(alpha float32)       { v.queue("setAlpha", alpha) }
func (v *NativeView) SetTranslationX(x float32)    { v.queue("setTranslationX", x) }
func (v *NativeView) SetTranslationY(y float32)    { v.queue("setTranslationY", y) }
func (v *NativeView) SetScaleX(x float32)          { v.queue("setScaleX", x) }
func (v *NativeView) SetScaleY(y float32)          { v.queue("setScaleY", y) }
func (v *NativeView) SetRotation(degrees float32)  { v.queue("setRotation", degrees) }
func (v *NativeView) SetRotationX(degrees float32) { v.queue("setRotationX", degrees) }
func (v *NativeView) SetRotationY(degrees float32) { v.queue("setRotationY", degrees) }
func (v *NativeView) SetCameraDistance(d float32)  { v.queue("setCameraDistance", d) }
func (v *NativeView) SetPivot(p f32.Point)         { v.queue("setPivot", [2]float32{p.X, p.Y}) }
func (v *NativeView) SetBackgroundColor(c graphics.Color) {
	v.queue("setBackgroundColor", c.Int32())
}

// SupportsTextColor reports whether the view was registered as a text view.
func (v *NativeView) SupportsTextColor() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.opts.Text
}

func (v *NativeView) SetTextColor(c graphics.Color) { v.queue("setTextColor", c.Int32()) }

// SupportsScrolling reports whether the view was registered as scrollable.
func (v *NativeView) SupportsScrolling() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.opts.Scrollable
}

func (v *NativeView) SetScrollX(x int)           { v.queue("setScrollX", x) }
func (v *NativeView) SetScrollY(y int)           { v.queue("setScrollY", y) }
func (v *NativeView) SetLayoutWidth(width int)   { v.queue("setLayoutWidth", width) }
func (v *NativeView) SetLayoutHeight(height int) { v.queue("setLayoutHeight", height) }
func (v *NativeView) RequestLayout()             { v.queue("requestLayout", nil) }

// NativeViewRegistry tracks native views by tag and acts as the UI manager
// that commits their queued mutations.
type NativeViewRegistry struct {
	mu      sync.RWMutex
	views   map[int]*NativeView
	channel *MethodChannel
}

// NewNativeViewRegistry creates a registry bound to ViewsChannelName.
// Native reports layout changes with "setGeometry".
func NewNativeViewRegistry() *NativeViewRegistry {
	r := &NativeViewRegistry{
		views:   make(map[int]*NativeView),
		channel: NewMethodChannel(ViewsChannelName),
	}
	r.channel.SetHandler(r.handleMethodCall)
	return r
}

// Register creates or replaces the view for tag.
func (r *NativeViewRegistry) Register(tag int, opts ViewOptions) *NativeView {
	v := &NativeView{tag: tag, opts: opts}
	r.mu.Lock()
	r.views[tag] = v
	r.mu.Unlock()
	return v
}

// Unregister forgets the view for tag. Queued mutations are dropped.
func (r *NativeViewRegistry) Unregister(tag int) {
	r.mu.Lock()
	delete(r.views, tag)
	r.mu.Unlock()
}

// View returns the view for tag, or nil.
func (r *NativeViewRegistry) View(tag int) *NativeView {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.views[tag]
}

// NotifyNoDeltaUpdate sends the view's queued mutations to native in a
// single "commit" call. The call is made even when nothing was queued so
// native can keep its bookkeeping in step. Failures are reported, not
// returned.
func (r *NativeViewRegistry) NotifyNoDeltaUpdate(tag int) {
	mutations := []Mutation{}
	if v := r.View(tag); v != nil {
		if pending := v.drain(); pending != nil {
			mutations = pending
		}
	}
	_, err := r.channel.Invoke("commit", map[string]any{
		"tag":       tag,
		"mutations": mutations,
	})
	if err != nil {
		errors.Report(&errors.BindingError{
			Op:      "platform.NativeViewRegistry.NotifyNoDeltaUpdate",
			Kind:    errors.KindPlatform,
			Channel: ViewsChannelName,
			Tag:     tag,
			Err:     err,
		})
	}
}

// handleMethodCall processes incoming method calls from native code.
func (r *NativeViewRegistry) handleMethodCall(method string, args any) (any, error) {
	switch method {
	case "setGeometry":
		m, ok := args.(map[string]any)
		if !ok {
			return nil, ErrInvalidArguments
		}
		tag, ok := m["tag"].(float64)
		if !ok {
			return nil, fmt.Errorf("%w: missing tag", ErrInvalidArguments)
		}
		v := r.View(int(tag))
		if v == nil {
			return nil, fmt.Errorf("%w: unknown tag %d", ErrInvalidArguments, int(tag))
		}
		width, _ := m["width"].(float64)
		height, _ := m["height"].(float64)
		density, _ := m["density"].(float64)
		v.SetGeometry(graphics.Size{Width: width, Height: height}, float32(density))
		return nil, nil
	default:
		return nil, ErrMethodNotFound
	}
}
